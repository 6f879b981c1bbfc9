package admin

import (
	"context"

	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
	"github.com/gudangapp/gudang-api/pkg/logger"
)

// AdminUseCase holds destructive maintenance operations.
type AdminUseCase struct {
	tx  ledger.TxRunner
	log *logger.Logger
}

func NewAdminUseCase(tx ledger.TxRunner, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{tx: tx, log: log}
}

// ResetAll wipes every transaction and every item in one database
// transaction. User accounts are kept. There is no undo.
func (uc *AdminUseCase) ResetAll(ctx context.Context) error {
	err := uc.tx.Run(ctx, func(items repository.ItemRepository, trxs repository.TransactionRepository) error {
		if err := trxs.DeleteAll(ctx); err != nil {
			return err
		}
		return items.DeleteAll(ctx)
	})
	if err != nil {
		return err
	}
	uc.log.Warn().Msg("inventory reset: all items and transactions deleted")
	return nil
}
