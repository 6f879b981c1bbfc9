// Package ledger implements the stock ledger core: every quantity mutation
// goes through here, paired with its append-only transaction row, inside one
// database transaction with the item row locked.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gudangapp/gudang-api/internal/domain"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
	dledger "github.com/gudangapp/gudang-api/internal/domain/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// LedgerUseCase records inbound and outbound stock movements, single or
// batched, keeping item quantity and the transaction log consistent.
type LedgerUseCase struct {
	tx TxRunner
}

// NewLedgerUseCase builds the use case.
func NewLedgerUseCase(tx TxRunner) *LedgerUseCase {
	return &LedgerUseCase{tx: tx}
}

// InboundLine is one inbound movement: the item key, the quantity to add and
// the metadata that will overwrite the stored line (last write wins).
type InboundLine struct {
	Name         string
	Unit         string
	Quantity     decimal.Decimal
	Category     string
	MinStock     decimal.Decimal
	RackLocation string
	ExpiryDate   *time.Time
}

// InboundInput is the single-item inbound form.
type InboundInput struct {
	InboundLine
	Supplier string
	Note     string
}

// InboundBatchInput is a caller-owned batch of inbound lines. The presentation
// layer builds it up; the core only ever sees the finished value.
type InboundBatchInput struct {
	Supplier string
	Note     string
	Lines    []InboundLine
}

// OutboundLine is one outbound movement against an existing item.
type OutboundLine struct {
	Name     string
	Unit     string
	Quantity decimal.Decimal
	Note     string
}

// OutboundInput is the single-item outbound form.
type OutboundInput struct {
	OutboundLine
	Requester string
}

// OutboundBatchInput is a caller-owned batch of outbound lines sharing one
// requester.
type OutboundBatchInput struct {
	Requester string
	Note      string
	Lines     []OutboundLine
}

// RecordInbound adds quantity to the item matching (name, unit), creating the
// line when absent, and appends one inbound transaction. Metadata on an
// existing line is overwritten with the supplied values. Returns the
// transaction code.
func (uc *LedgerUseCase) RecordInbound(ctx context.Context, in InboundInput) (string, error) {
	if err := validateInboundLine(in.InboundLine); err != nil {
		return "", err
	}
	now := time.Now()
	code := dledger.NewTrxCode(entity.TrxTypeIn, now)

	err := uc.tx.Run(ctx, func(items repository.ItemRepository, trxs repository.TransactionRepository) error {
		itemID, err := upsertItem(ctx, items, in.InboundLine, now)
		if err != nil {
			return err
		}
		return trxs.Create(ctx, inboundRow(itemID, in.InboundLine, in.Supplier, in.Note, code, now))
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// RecordOutbound removes quantity from the item matching (name, unit) and
// appends one outbound transaction. Fails with domain.ErrNotFound when the
// item is absent and domain.ErrInsufficientStock when available < requested;
// stock is never clamped, a short stock blocks the whole movement.
func (uc *LedgerUseCase) RecordOutbound(ctx context.Context, in OutboundInput) (string, error) {
	if err := validateOutboundLine(in.OutboundLine); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.Requester) == "" {
		return "", fmt.Errorf("%w: requester is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	code := dledger.NewTrxCode(entity.TrxTypeOut, now)

	err := uc.tx.Run(ctx, func(items repository.ItemRepository, trxs repository.TransactionRepository) error {
		item, err := items.GetByKeyForUpdate(ctx, in.Name, in.Unit)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: item %q (%s)", domain.ErrNotFound, in.Name, in.Unit)
		}
		if item.Quantity.LessThan(in.Quantity) {
			return fmt.Errorf("%w: available %s, requested %s",
				domain.ErrInsufficientStock, item.Quantity, in.Quantity)
		}
		ok, err := items.DecrementStock(ctx, item.ID, in.Quantity, now)
		if err != nil {
			return err
		}
		if !ok {
			// Row changed under us; the conditional update refused to go negative.
			return fmt.Errorf("%w: item %q (%s)", domain.ErrInsufficientStock, in.Name, in.Unit)
		}
		return trxs.Create(ctx, outboundRow(item, in.OutboundLine, in.Requester, in.Note, code, now))
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// ImportItems applies spreadsheet rows as plain (name, unit) upserts without
// writing ledger rows, matching the bulk-load screen. Row validation failures
// reject the whole import before any mutation.
func (uc *LedgerUseCase) ImportItems(ctx context.Context, rows []InboundLine) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	var bad []LineError
	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" || strings.TrimSpace(row.Unit) == "" {
			bad = append(bad, LineError{Line: i + 1, Name: row.Name, Reason: "name and unit are required"})
			continue
		}
		if row.Quantity.IsNegative() {
			bad = append(bad, LineError{Line: i + 1, Name: row.Name, Reason: "quantity must not be negative"})
		}
	}
	if len(bad) > 0 {
		return 0, newBatchError(domain.ErrImportFormat, bad)
	}
	now := time.Now()
	err := uc.tx.Run(ctx, func(items repository.ItemRepository, _ repository.TransactionRepository) error {
		for _, row := range rows {
			if _, err := upsertItem(ctx, items, row, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// upsertItem resolves the (name, unit) line under lock, adds the quantity and
// overwrites the metadata, or inserts a fresh line. Returns the item id.
func upsertItem(ctx context.Context, items repository.ItemRepository, line InboundLine, now time.Time) (string, error) {
	item, err := items.GetByKeyForUpdate(ctx, line.Name, line.Unit)
	if err != nil {
		return "", err
	}
	if item != nil {
		item.Quantity = item.Quantity.Add(line.Quantity)
		item.Category = line.Category
		item.MinStock = line.MinStock
		item.RackLocation = line.RackLocation
		item.ExpiryDate = line.ExpiryDate
		item.UpdatedAt = now
		if err := items.Update(ctx, item); err != nil {
			return "", err
		}
		return item.ID, nil
	}
	item = &entity.Item{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(line.Name),
		Category:     line.Category,
		Unit:         strings.TrimSpace(line.Unit),
		Quantity:     line.Quantity,
		MinStock:     line.MinStock,
		RackLocation: line.RackLocation,
		ExpiryDate:   line.ExpiryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := items.Insert(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func inboundRow(itemID string, line InboundLine, supplier, note, code string, now time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New().String(),
		TrxType:    entity.TrxTypeIn,
		ItemID:     itemID,
		Name:       strings.TrimSpace(line.Name),
		Quantity:   line.Quantity,
		Unit:       strings.TrimSpace(line.Unit),
		Supplier:   supplier,
		Note:       note,
		BundleCode: code,
		TrxCode:    code,
		ExpiryDate: line.ExpiryDate,
		CreatedAt:  now,
	}
}

func outboundRow(item *entity.Item, line OutboundLine, requester, note, code string, now time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New().String(),
		TrxType:    entity.TrxTypeOut,
		ItemID:     item.ID,
		Name:       item.Name,
		Quantity:   line.Quantity,
		Unit:       item.Unit,
		Requester:  requester,
		Note:       note,
		BundleCode: code,
		TrxCode:    code,
		CreatedAt:  now,
	}
}

func validateInboundLine(line InboundLine) error {
	if strings.TrimSpace(line.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(line.Unit) == "" {
		return fmt.Errorf("%w: unit is required", domain.ErrInvalidInput)
	}
	if !line.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", domain.ErrInvalidInput)
	}
	if line.MinStock.IsNegative() {
		return fmt.Errorf("%w: min stock must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func validateOutboundLine(line OutboundLine) error {
	if strings.TrimSpace(line.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(line.Unit) == "" {
		return fmt.Errorf("%w: unit is required", domain.ErrInvalidInput)
	}
	if !line.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than zero", domain.ErrInvalidInput)
	}
	return nil
}
