package transfer

import (
	"context"
	"io"

	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
	"github.com/gudangapp/gudang-api/pkg/logger"
)

// TransferUseCase moves inventory in and out of the system as files.
// Imports go through the ledger use case so stock keeps a single write
// path; exports read straight from the repositories.
type TransferUseCase struct {
	codec  Codec
	ledger *ledger.LedgerUseCase
	items  repository.ItemRepository
	trxs   repository.TransactionRepository
	log    *logger.Logger
}

func NewTransferUseCase(codec Codec, lg *ledger.LedgerUseCase, items repository.ItemRepository, trxs repository.TransactionRepository, log *logger.Logger) *TransferUseCase {
	return &TransferUseCase{codec: codec, ledger: lg, items: items, trxs: trxs, log: log}
}

// Import parses the uploaded file and upserts every row as catalog data.
// No transaction rows are written; imported quantities are opening
// balances, not movements. Returns the number of rows applied.
func (uc *TransferUseCase) Import(ctx context.Context, r io.Reader, filename string) (int, error) {
	rows, err := uc.codec.ReadInventory(r, filename)
	if err != nil {
		return 0, err
	}
	n, err := uc.ledger.ImportItems(ctx, rows)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Int("rows", n).Str("file", filename).Msg("inventory import applied")
	return n, nil
}

// Export writes the full inventory snapshot and transaction history to w.
func (uc *TransferUseCase) Export(ctx context.Context, w io.Writer) error {
	items, err := uc.items.List(ctx)
	if err != nil {
		return err
	}
	trxs, err := uc.trxs.ListAsc(ctx)
	if err != nil {
		return err
	}
	return uc.codec.WriteSnapshot(w, items, trxs)
}
