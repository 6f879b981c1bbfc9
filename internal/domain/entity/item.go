package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one inventory line. Identity for callers is the (name, unit) pair:
// the same name with a different unit is a distinct line. The id is internal.
// Quantity never goes below zero; it is mutated only by the ledger use cases.
type Item struct {
	ID           string
	Name         string
	Category     string
	Unit         string
	Quantity     decimal.Decimal
	MinStock     decimal.Decimal
	RackLocation string
	ExpiryDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowMinStock reports whether the line is at or under its reorder threshold.
func (i *Item) BelowMinStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinStock)
}
