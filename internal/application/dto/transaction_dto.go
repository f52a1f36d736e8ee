package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse evento del ledger para listados y detalle.
// Las líneas solo se incluyen en el detalle (GET por ID).
type TransactionResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Date           string          `json:"date"` // YYYY-MM-DD
	LocationID     string          `json:"location_id,omitempty"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	SKUID          string          `json:"sku_id,omitempty"`
	BOMVersionID   string          `json:"bom_version_id,omitempty"`
	UnitsBuilt     int64           `json:"units_built,omitempty"`
	UnitBomCost    decimal.Decimal `json:"unit_bom_cost,omitempty"`
	TotalBomCost   decimal.Decimal `json:"total_bom_cost,omitempty"`
	SalesChannel   string          `json:"sales_channel,omitempty"`
	Supplier       string          `json:"supplier,omitempty"`
	Reason         string          `json:"reason,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`

	Lines []TransactionLineResponse `json:"lines,omitempty"`
}

// TransactionListResponse página del ledger.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         PageResponse          `json:"page"`
}
