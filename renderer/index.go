package renderer

import (
	"bytes"
	"strconv"

	"github.com/amello/b3folio"
	md "github.com/nao1215/markdown"
)

// IndexMarkdown renders the market-index history as a markdown table, one
// row per trading session.
func IndexMarkdown(h b3folio.IndexHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Index History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Opening", "Closing", "Variation", "Minimum", "Maximum", "Volume"},
		Rows:   [][]string{},
	}
	for _, day := range h.Days() {
		idd := h[day]
		table.Rows = append(table.Rows, []string{
			day.Format("2006-01-02"),
			strconv.FormatInt(idd.Opening, 10),
			strconv.FormatInt(idd.Closing, 10),
			strconv.FormatFloat(idd.Variation, 'f', 2, 64) + "%",
			strconv.FormatInt(idd.Minimum, 10),
			strconv.FormatInt(idd.Maximum, 10),
			strconv.FormatInt(idd.Volume, 10),
		})
	}
	doc.Table(table)

	return doc.String()
}
