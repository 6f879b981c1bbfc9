package ledger_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangapp/gudang-api/internal/application/ledger"
	"github.com/gudangapp/gudang-api/internal/domain"
	"github.com/gudangapp/gudang-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedItem(t *testing.T, store *memStore, name, unit string, qty, minStock string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, store.Insert(context.Background(), &entity.Item{
		ID:        name + "/" + unit,
		Name:      name,
		Unit:      unit,
		Quantity:  dec(qty),
		MinStock:  dec(minStock),
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func TestRecordInbound_CreatesItemAndTransaction(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)

	code, err := uc.RecordInbound(context.Background(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{
			Name: "Gloves", Unit: "box", Quantity: dec("10"),
			Category: "PPE", MinStock: dec("5"), RackLocation: "A-01",
		},
		Supplier: "Acme",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TRX-IN-\d{8}-\d{6}-\d{3}$`), code)

	item, err := store.GetByKey(context.Background(), "Gloves", "box")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.True(t, item.Quantity.Equal(dec("10")))
	assert.Equal(t, "PPE", item.Category)

	trxs, _ := store.ListAsc(context.Background())
	require.Len(t, trxs, 1)
	assert.Equal(t, entity.TrxTypeIn, trxs[0].TrxType)
	assert.True(t, trxs[0].Quantity.Equal(dec("10")))
	assert.Equal(t, code, trxs[0].TrxCode)
	assert.Equal(t, code, trxs[0].BundleCode)
	assert.Equal(t, "Acme", trxs[0].Supplier)
}

func TestRecordInbound_AccumulatesAndOverwritesMetadata(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)
	seedItem(t, store, "Gloves", "box", "10", "5")

	_, err := uc.RecordInbound(context.Background(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{
			Name: "Gloves", Unit: "box", Quantity: dec("4"),
			Category: "Safety", MinStock: dec("8"), RackLocation: "B-02",
		},
	})
	require.NoError(t, err)

	item, _ := store.GetByKey(context.Background(), "Gloves", "box")
	assert.True(t, item.Quantity.Equal(dec("14")), "new_quantity = old + requested")
	// Last write wins on metadata.
	assert.Equal(t, "Safety", item.Category)
	assert.True(t, item.MinStock.Equal(dec("8")))
	assert.Equal(t, "B-02", item.RackLocation)
}

func TestRecordInbound_KeyIsCaseAndSpaceInsensitive(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)

	_, err := uc.RecordInbound(context.Background(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{Name: "Gloves", Unit: "box", Quantity: dec("10")},
	})
	require.NoError(t, err)
	_, err = uc.RecordInbound(context.Background(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{Name: "  gloves ", Unit: "BOX", Quantity: dec("2")},
	})
	require.NoError(t, err)

	item, _ := store.GetByKey(context.Background(), "GLOVES", " box")
	require.NotNil(t, item)
	assert.True(t, item.Quantity.Equal(dec("12")), "one line accumulates, no duplicate")
	items, _ := store.List(context.Background())
	assert.Len(t, items, 1)
}

func TestRecordInbound_KeyIsCaseFolded(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)

	// "Straße" folds to "strasse", which plain lowercasing never produces.
	_, err := uc.RecordInbound(context.Background(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{Name: "Straße", Unit: "m", Quantity: dec("5")},
	})
	require.NoError(t, err)
	_, err = uc.RecordInbound(context.Background(), ledger.InboundInput{
		InboundLine: ledger.InboundLine{Name: "STRASSE", Unit: "M", Quantity: dec("3")},
	})
	require.NoError(t, err)

	items, _ := store.List(context.Background())
	require.Len(t, items, 1, "folded spellings resolve to one line")
	assert.True(t, items[0].Quantity.Equal(dec("8")))

	_, err = uc.RecordOutbound(context.Background(), ledger.OutboundInput{
		OutboundLine: ledger.OutboundLine{Name: "strasse", Unit: "m", Quantity: dec("8")},
		Requester:    "Alice",
	})
	require.NoError(t, err)
}

func TestRecordInbound_Validation(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)

	cases := []ledger.InboundLine{
		{Name: "", Unit: "box", Quantity: dec("1")},
		{Name: "Gloves", Unit: "", Quantity: dec("1")},
		{Name: "Gloves", Unit: "box", Quantity: dec("0")},
		{Name: "Gloves", Unit: "box", Quantity: dec("-2")},
	}
	for _, line := range cases {
		_, err := uc.RecordInbound(context.Background(), ledger.InboundInput{InboundLine: line})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	trxs, _ := store.ListAsc(context.Background())
	assert.Empty(t, trxs, "rejected inputs must not touch the ledger")
}

func TestRecordOutbound_GlovesScenario(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)
	seedItem(t, store, "Gloves", "box", "10", "5")

	code, err := uc.RecordOutbound(context.Background(), ledger.OutboundInput{
		OutboundLine: ledger.OutboundLine{Name: "Gloves", Unit: "box", Quantity: dec("4")},
		Requester:    "Alice",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^TRX-OUT-\d{8}-\d{6}-\d{3}$`), code)

	item, _ := store.GetByKey(context.Background(), "Gloves", "box")
	assert.True(t, item.Quantity.Equal(dec("6")))

	trxs, _ := store.ListAsc(context.Background())
	require.Len(t, trxs, 1)
	assert.Equal(t, entity.TrxTypeOut, trxs[0].TrxType)
	assert.True(t, trxs[0].Quantity.Equal(dec("4")))
	assert.Equal(t, "Alice", trxs[0].Requester)

	// A short stock blocks the entire movement; nothing is clamped.
	_, err = uc.RecordOutbound(context.Background(), ledger.OutboundInput{
		OutboundLine: ledger.OutboundLine{Name: "Gloves", Unit: "box", Quantity: dec("10")},
		Requester:    "Bob",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ = store.GetByKey(context.Background(), "Gloves", "box")
	assert.True(t, item.Quantity.Equal(dec("6")), "failed outbound is a no-op")
	trxs, _ = store.ListAsc(context.Background())
	assert.Len(t, trxs, 1)
}

func TestRecordOutbound_UnknownItem(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)

	_, err := uc.RecordOutbound(context.Background(), ledger.OutboundInput{
		OutboundLine: ledger.OutboundLine{Name: "Ghost", Unit: "pcs", Quantity: dec("1")},
		Requester:    "Alice",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordOutbound_RequesterRequired(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)
	seedItem(t, store, "Gloves", "box", "10", "5")

	_, err := uc.RecordOutbound(context.Background(), ledger.OutboundInput{
		OutboundLine: ledger.OutboundLine{Name: "Gloves", Unit: "box", Quantity: dec("1")},
		Requester:    "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	item, _ := store.GetByKey(context.Background(), "Gloves", "box")
	assert.True(t, item.Quantity.Equal(dec("10")))
}

func TestImportItems_UpsertsWithoutLedgerRows(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)
	seedItem(t, store, "Mask", "box", "3", "0")

	n, err := uc.ImportItems(context.Background(), []ledger.InboundLine{
		{Name: "Mask", Unit: "box", Quantity: dec("5")},
		{Name: "Sanitizer", Unit: "btl", Quantity: dec("0")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mask, _ := store.GetByKey(context.Background(), "Mask", "box")
	assert.True(t, mask.Quantity.Equal(dec("8")), "import accumulates rather than overwrites")
	san, _ := store.GetByKey(context.Background(), "Sanitizer", "btl")
	require.NotNil(t, san)
	assert.True(t, san.Quantity.IsZero())

	trxs, _ := store.ListAsc(context.Background())
	assert.Empty(t, trxs, "bulk import does not fabricate movements")
}

func TestImportItems_RejectsBadRowsWholesale(t *testing.T) {
	store := newMemStore()
	uc := ledger.NewLedgerUseCase(store)

	_, err := uc.ImportItems(context.Background(), []ledger.InboundLine{
		{Name: "Mask", Unit: "box", Quantity: dec("5")},
		{Name: "Mask", Unit: "box", Quantity: dec("-1")},
	})
	require.ErrorIs(t, err, domain.ErrImportFormat)

	var batchErr *ledger.BatchError
	require.True(t, errors.As(err, &batchErr))
	require.Len(t, batchErr.Lines, 1)
	assert.Equal(t, 2, batchErr.Lines[0].Line)

	item, _ := store.GetByKey(context.Background(), "Mask", "box")
	assert.Nil(t, item, "no row of a rejected import is applied")
}
