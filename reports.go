package b3folio

// ValueReport holds the daily portfolio value series over an analysis window,
// ready to be rendered.
type ValueReport struct {
	Days    []Day
	Values  ValueSeries
	Missing []MissingPrice
}

// NewValueReport reconstructs the holdings and values them over the window.
func NewValueReport(days []Day, assets []string, transactions TransactionSet, prices *PriceTable) *ValueReport {
	ranges := Holdings(days, assets, transactions)
	series, missing := Value(days, assets, ranges, prices)
	return &ValueReport{Days: days, Values: series, Missing: missing}
}

// SimulationReport holds the actual value series next to a what-if series in
// which one day's purchase was redirected to another ticker.
type SimulationReport struct {
	On          Day    // day whose transactions were rewritten
	Source      string // ticker bought in the actual history
	Replacement string // ticker bought instead in the what-if history
	Days        []Day
	Actual      ValueSeries
	Simulated   ValueSeries
	Missing     []MissingPrice
}

// NewSimulationReport runs the what-if swap and pairs it with the actual
// series for comparison.
func NewSimulationReport(days []Day, assets []string, prices *PriceTable, transactions TransactionSet, on Day, source, replacement string) (*SimulationReport, error) {
	simulated, simMissing, err := SimulateSwap(days, assets, prices, transactions, on, source, replacement)
	if err != nil {
		return nil, err
	}
	ranges := Holdings(days, assets, transactions)
	actual, missing := Value(days, assets, ranges, prices)
	return &SimulationReport{
		On:          on,
		Source:      source,
		Replacement: replacement,
		Days:        days,
		Actual:      actual,
		Simulated:   simulated,
		Missing:     append(missing, simMissing...),
	}, nil
}
