package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gudangapp/gudang-api/internal/domain"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
	dledger "github.com/gudangapp/gudang-api/internal/domain/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// RecordInboundBatch validates every line first and, only when all pass,
// applies each line's upsert plus its transaction row inside one database
// transaction. All resulting rows share one bundle/transaction code, which is
// returned only after everything is durably committed.
func (uc *LedgerUseCase) RecordInboundBatch(ctx context.Context, in InboundBatchInput) (string, error) {
	if len(in.Lines) == 0 {
		return "", fmt.Errorf("%w: batch has no lines", domain.ErrInvalidInput)
	}
	var bad []LineError
	for i, line := range in.Lines {
		if err := validateInboundLine(line); err != nil {
			bad = append(bad, LineError{Line: i + 1, Name: line.Name, Reason: trimSentinel(err)})
		}
	}
	if len(bad) > 0 {
		return "", newBatchError(domain.ErrInvalidInput, bad)
	}

	now := time.Now()
	code := dledger.NewTrxCode(entity.TrxTypeIn, now)

	err := uc.tx.Run(ctx, func(items repository.ItemRepository, trxs repository.TransactionRepository) error {
		for _, line := range in.Lines {
			itemID, err := upsertItem(ctx, items, line, now)
			if err != nil {
				return err
			}
			if err := trxs.Create(ctx, inboundRow(itemID, line, in.Supplier, in.Note, code, now)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// RecordOutboundBatch validates field completeness for every line, then runs
// a pre-flight stock pass over all lines before mutating anything. Any
// missing item or shortfall rejects the whole batch with per-line reasons;
// otherwise every decrement and transaction row commits atomically under one
// shared bundle/transaction code.
func (uc *LedgerUseCase) RecordOutboundBatch(ctx context.Context, in OutboundBatchInput) (string, error) {
	if len(in.Lines) == 0 {
		return "", fmt.Errorf("%w: batch has no lines", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Requester) == "" {
		return "", fmt.Errorf("%w: requester is required", domain.ErrInvalidInput)
	}
	var bad []LineError
	for i, line := range in.Lines {
		if err := validateOutboundLine(line); err != nil {
			bad = append(bad, LineError{Line: i + 1, Name: line.Name, Reason: trimSentinel(err)})
		}
	}
	if len(bad) > 0 {
		return "", newBatchError(domain.ErrInvalidInput, bad)
	}

	now := time.Now()
	code := dledger.NewTrxCode(entity.TrxTypeOut, now)

	err := uc.tx.Run(ctx, func(items repository.ItemRepository, trxs repository.TransactionRepository) error {
		type resolved struct {
			item *entity.Item
			line OutboundLine
		}

		// Pre-flight: lock and check every line before touching a single row.
		// Demand per item is cumulative, so two lines draining the same line
		// cannot both pass against the starting quantity.
		var (
			shortfalls []LineError
			plan       []resolved
			remaining  = map[string]decimal.Decimal{}
		)
		for i, line := range in.Lines {
			item, err := items.GetByKeyForUpdate(ctx, line.Name, line.Unit)
			if err != nil {
				return err
			}
			if item == nil {
				shortfalls = append(shortfalls, LineError{Line: i + 1, Name: line.Name, Reason: "item not found"})
				continue
			}
			avail, seen := remaining[item.ID]
			if !seen {
				avail = item.Quantity
			}
			if avail.LessThan(line.Quantity) {
				shortfalls = append(shortfalls, LineError{
					Line: i + 1, Name: line.Name,
					Reason: fmt.Sprintf("available %s, requested %s", avail, line.Quantity),
				})
				continue
			}
			remaining[item.ID] = avail.Sub(line.Quantity)
			plan = append(plan, resolved{item: item, line: line})
		}
		if len(shortfalls) > 0 {
			return newBatchError(domain.ErrInsufficientStock, shortfalls)
		}

		for _, r := range plan {
			ok, err := items.DecrementStock(ctx, r.item.ID, r.line.Quantity, now)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: item %q (%s)", domain.ErrInsufficientStock, r.line.Name, r.line.Unit)
			}
			note := r.line.Note
			if note == "" {
				note = in.Note
			}
			if err := trxs.Create(ctx, outboundRow(r.item, r.line, in.Requester, note, code, now)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// trimSentinel strips the sentinel prefix ("invalid input: ") so batch line
// reasons read naturally.
func trimSentinel(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
