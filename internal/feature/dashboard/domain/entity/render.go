package entity

import "time"

// NoDataNotice is the single message rendered when the exchange returns no
// candles for the selected parameters.
const NoDataNotice = "No data available. Please check your connection or try a different symbol."

// RenderTree is the complete output of one render cycle: everything the
// rendering host needs to draw the dashboard. When Notice is set no tabs
// are present.
type RenderTree struct {
	Symbol      string    `json:"symbol"`
	Interval    string    `json:"interval"`
	GeneratedAt time.Time `json:"generated_at"`

	// Metrics is the summary strip at the top of the page.
	Metrics []Metric `json:"metrics"`

	// Warnings lists non-fatal fetch failures of this cycle.
	Warnings []string `json:"warnings,omitempty"`

	// Notice, when non-empty, replaces the chart tabs entirely.
	Notice string `json:"notice,omitempty"`

	Tabs []Tab `json:"tabs,omitempty"`
}

// Tab groups sections under one selectable panel.
type Tab struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one block inside a tab: a chart, a table, metric cards, or a
// combination.
type Section struct {
	Title   string     `json:"title,omitempty"`
	Chart   *ChartSpec `json:"chart,omitempty"`
	Table   *Table     `json:"table,omitempty"`
	Metrics []Metric   `json:"metrics,omitempty"`
}

// Metric is one scalar card: label, formatted value and an optional signed
// delta the host may colorize.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// Table is pre-formatted tabular data for display.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
