package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types.
const (
	TrxTypeIn  = "in"  // inbound, quantity added
	TrxTypeOut = "out" // outbound, quantity removed
)

// Transaction is one append-only ledger row. Name, unit and expiry date are
// denormalized snapshots taken at movement time, so the history stays
// readable even if the item row is later reset. Rows from one batch share
// BundleCode and TrxCode.
type Transaction struct {
	ID         string
	TrxType    string
	ItemID     string
	Name       string
	Quantity   decimal.Decimal // always positive; direction comes from TrxType
	Unit       string
	Requester  string // outbound only
	Supplier   string // inbound only, optional
	Note       string
	BundleCode string
	TrxCode    string
	ExpiryDate *time.Time
	CreatedAt  time.Time
}
