package dto

import (
	"github.com/shopspring/decimal"
)

// InboundRequest body for POST /api/ledger/inbound.
// expiry_date uses YYYY-MM-DD; empty means no expiry.
type InboundRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinStock     decimal.Decimal `json:"min_stock,omitempty"`
	RackLocation string          `json:"rack_location,omitempty"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	Supplier     string          `json:"supplier,omitempty"`
	Note         string          `json:"note,omitempty"`
}

// InboundBatchRequest body for POST /api/ledger/inbound/batch.
type InboundBatchRequest struct {
	Supplier string             `json:"supplier,omitempty"`
	Note     string             `json:"note,omitempty"`
	Lines    []InboundLineInput `json:"lines"`
}

// InboundLineInput is one line of an inbound batch.
type InboundLineInput struct {
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	Category     string          `json:"category,omitempty"`
	MinStock     decimal.Decimal `json:"min_stock,omitempty"`
	RackLocation string          `json:"rack_location,omitempty"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
}

// OutboundRequest body for POST /api/ledger/outbound.
type OutboundRequest struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Requester string          `json:"requester"`
	Note      string          `json:"note,omitempty"`
}

// OutboundBatchRequest body for POST /api/ledger/outbound/batch.
type OutboundBatchRequest struct {
	Requester string              `json:"requester"`
	Note      string              `json:"note,omitempty"`
	Lines     []OutboundLineInput `json:"lines"`
}

// OutboundLineInput is one line of an outbound batch.
type OutboundLineInput struct {
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
	Note     string          `json:"note,omitempty"`
}

// TrxCodeResponse returns the code of a recorded movement or batch.
type TrxCodeResponse struct {
	TrxCode string `json:"trx_code"`
}
