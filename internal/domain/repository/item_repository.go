package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

// ItemRepository is the persistence port for inventory lines. Lookups match
// by the normalized (name, unit) key, exactly ledger.KeyOf: implementations
// must apply that normalization themselves so every store shares one
// identity rule. GetByKey* return nil (no error) on miss.
type ItemRepository interface {
	GetByKey(ctx context.Context, name, unit string) (*entity.Item, error)
	// GetByKeyForUpdate locks the row until the surrounding transaction ends
	// (SELECT FOR UPDATE). Only meaningful inside a TxRunner callback.
	GetByKeyForUpdate(ctx context.Context, name, unit string) (*entity.Item, error)
	Insert(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	// DecrementStock subtracts qty only while quantity >= qty, reporting
	// whether a row was changed. The condition keeps quantity non-negative
	// even if a concurrent writer slipped past an earlier read.
	DecrementStock(ctx context.Context, id string, qty decimal.Decimal, now time.Time) (bool, error)
	List(ctx context.Context) ([]*entity.Item, error)
	ListLowStock(ctx context.Context) ([]*entity.Item, error)
	DeleteAll(ctx context.Context) error
}
