package ledger

import (
	"context"

	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, passing
// repositories bound to that transaction. Every quantity mutation of the
// ledger runs through it, so a failure anywhere in a batch rolls back the
// whole batch.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		trxs repository.TransactionRepository,
	) error) error
}
