package ledger_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
	dledger "github.com/gudangapp/gudang-api/internal/domain/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

// memStore is an in-memory stand-in for the postgres repositories. It
// implements both ports plus the TxRunner, restoring a snapshot when the
// callback fails so rollback semantics hold in tests.
type memStore struct {
	items map[string]*entity.Item // by id
	keys  map[dledger.ItemKey]string
	trxs  []*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		items: map[string]*entity.Item{},
		keys:  map[dledger.ItemKey]string{},
	}
}

func (m *memStore) Run(_ context.Context, fn func(repository.ItemRepository, repository.TransactionRepository) error) error {
	items, keys, trxs := m.snapshot()
	if err := fn(m, m); err != nil {
		m.items, m.keys, m.trxs = items, keys, trxs
		return err
	}
	return nil
}

func (m *memStore) snapshot() (map[string]*entity.Item, map[dledger.ItemKey]string, []*entity.Transaction) {
	items := make(map[string]*entity.Item, len(m.items))
	for id, it := range m.items {
		cp := *it
		items[id] = &cp
	}
	keys := make(map[dledger.ItemKey]string, len(m.keys))
	for k, id := range m.keys {
		keys[k] = id
	}
	trxs := make([]*entity.Transaction, len(m.trxs))
	copy(trxs, m.trxs)
	return items, keys, trxs
}

func (m *memStore) GetByKey(_ context.Context, name, unit string) (*entity.Item, error) {
	id, ok := m.keys[dledger.KeyOf(name, unit)]
	if !ok {
		return nil, nil
	}
	cp := *m.items[id]
	return &cp, nil
}

func (m *memStore) GetByKeyForUpdate(ctx context.Context, name, unit string) (*entity.Item, error) {
	return m.GetByKey(ctx, name, unit)
}

func (m *memStore) Insert(_ context.Context, item *entity.Item) error {
	cp := *item
	m.items[item.ID] = &cp
	m.keys[dledger.KeyOf(item.Name, item.Unit)] = item.ID
	return nil
}

func (m *memStore) Update(_ context.Context, item *entity.Item) error {
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *memStore) DecrementStock(_ context.Context, id string, qty decimal.Decimal, now time.Time) (bool, error) {
	item, ok := m.items[id]
	if !ok || item.Quantity.LessThan(qty) {
		return false, nil
	}
	item.Quantity = item.Quantity.Sub(qty)
	item.UpdatedAt = now
	return true, nil
}

func (m *memStore) List(_ context.Context) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(m.items))
	for _, it := range m.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) ListLowStock(ctx context.Context) ([]*entity.Item, error) {
	all, _ := m.List(ctx)
	var out []*entity.Item
	for _, it := range all {
		if it.BelowMinStock() {
			out = append(out, it)
		}
	}
	return out, nil
}

// DeleteAll satisfies both ports on the shared fake; the reset use case
// clears both collections anyway.
func (m *memStore) DeleteAll(_ context.Context) error {
	m.items = map[string]*entity.Item{}
	m.keys = map[dledger.ItemKey]string{}
	m.trxs = nil
	return nil
}

func (m *memStore) Create(_ context.Context, trx *entity.Transaction) error {
	cp := *trx
	m.trxs = append(m.trxs, &cp)
	return nil
}

func (m *memStore) ListAsc(_ context.Context) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, len(m.trxs))
	copy(out, m.trxs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ListRecent(_ context.Context, limit int) ([]*entity.Transaction, error) {
	out, _ := m.ListAsc(context.Background())
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
