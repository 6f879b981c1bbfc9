package repository

import (
	"context"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

// TransactionRepository is the persistence port for the append-only movement
// log. Rows are never updated; DeleteAll exists solely for the bulk reset.
type TransactionRepository interface {
	Create(ctx context.Context, trx *entity.Transaction) error
	// ListAsc returns the full history ordered by creation time ascending.
	ListAsc(ctx context.Context) ([]*entity.Transaction, error)
	// ListRecent returns the newest rows first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.Transaction, error)
	DeleteAll(ctx context.Context) error
}
