package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

// ItemResponse is one inventory line in API responses.
type ItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinStock     decimal.Decimal `json:"min_stock"`
	RackLocation string          `json:"rack_location,omitempty"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// FromItem maps the entity to its response shape.
func FromItem(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		Unit:         i.Unit,
		Quantity:     i.Quantity,
		MinStock:     i.MinStock,
		RackLocation: i.RackLocation,
		ExpiryDate:   i.ExpiryDate,
		UpdatedAt:    i.UpdatedAt,
	}
}

// TransactionResponse is one ledger row in API responses.
type TransactionResponse struct {
	ID         string          `json:"id"`
	TrxType    string          `json:"trx_type"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Requester  string          `json:"requester,omitempty"`
	Supplier   string          `json:"supplier,omitempty"`
	Note       string          `json:"note,omitempty"`
	BundleCode string          `json:"bundle_code"`
	TrxCode    string          `json:"trx_code"`
	CreatedAt  time.Time       `json:"created_at"`
}

// FromTransaction maps the entity to its response shape.
func FromTransaction(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		TrxType:    t.TrxType,
		Name:       t.Name,
		Quantity:   t.Quantity,
		Unit:       t.Unit,
		Requester:  t.Requester,
		Supplier:   t.Supplier,
		Note:       t.Note,
		BundleCode: t.BundleCode,
		TrxCode:    t.TrxCode,
		CreatedAt:  t.CreatedAt,
	}
}
