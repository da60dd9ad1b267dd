// Package dto defines data transfer objects for the symbols HTTP API.
package dto

// SymbolItem represents a selectable market in the API response.
type SymbolItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IntervalItem represents a selectable interval in the API response.
type IntervalItem struct {
	Code    string `json:"code"`
	Default bool   `json:"default"`
}

// CatalogResponse is the full control catalog the rendering host uses to
// build its symbol/interval selectors.
type CatalogResponse struct {
	Symbols   []SymbolItem   `json:"symbols"`
	Intervals []IntervalItem `json:"intervals"`
}
