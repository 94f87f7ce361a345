package apis

import (
	"github.com/ordkit/raresat/catalog"
	"github.com/ordkit/raresat/sat"
)

type ClassifyResponse struct {
	Error  *string         `json:"error"`
	Result *sat.Classified `json:"result"`
}

type CatalogResponse struct {
	Error  *string         `json:"error"`
	Result []catalog.Entry `json:"result"`
}

// ReconcileRequest carries the caller's held satoshis as decimal strings.
type ReconcileRequest struct {
	Held []string `json:"held"`
}

// QueryRequest reconciles the catalog against the held satoshis and then
// filters it. Empty filters are no-ops.
type QueryRequest struct {
	Held          []string `json:"held"`
	Search        string   `json:"search"`
	Tier          string   `json:"tier"`
	AvailableOnly bool     `json:"availableOnly"`
}
