// Package renderer turns reports into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/amello/b3folio"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders the daily portfolio value series as a markdown
// table, one row per trading day.
func SeriesMarkdown(r *b3folio.ValueReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Value")
	if len(r.Days) > 0 {
		first, last := r.Days[0], r.Days[len(r.Days)-1]
		doc.PlainText(fmt.Sprintf("From %s to %s.", first.Format("2006-01-02"), last.Format("2006-01-02")))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for _, day := range r.Days {
		table.Rows = append(table.Rows, []string{
			day.Format("2006-01-02"),
			r.Values[day].String(),
		})
	}
	doc.Table(table)

	if len(r.Missing) > 0 {
		doc.PlainText(fmt.Sprintf("%d price lookups failed; the assets concerned counted as zero on those days.", len(r.Missing)))
	}

	return doc.String()
}

// SimulationMarkdown renders the what-if series next to the actual one.
func SimulationMarkdown(r *b3folio.SimulationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("What-If Simulation")
	doc.PlainText(fmt.Sprintf("Buying %s instead of %s on %s.",
		r.Replacement, r.Source, r.On.Format("2006-01-02")))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Actual", "What-If"},
		Rows:   [][]string{},
	}
	for _, day := range r.Days {
		table.Rows = append(table.Rows, []string{
			day.Format("2006-01-02"),
			r.Actual[day].String(),
			r.Simulated[day].String(),
		})
	}
	doc.Table(table)

	if len(r.Days) > 0 {
		last := r.Days[len(r.Days)-1]
		doc.PlainText(fmt.Sprintf("Final difference: %s.", r.Simulated[last].Sub(r.Actual[last])))
	}

	return doc.String()
}
