package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
	dledger "github.com/gudangapp/gudang-api/internal/domain/ledger"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo is the ItemRepository implementation over PostgreSQL.
// Works with a pool or a tx (Querier).
type ItemRepo struct {
	q Querier
}

func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, name, category, unit, quantity, min_stock, rack_location, expiry_date, created_at, updated_at`

// Lookups match the name_key/unit_key columns, which hold ledger.KeyOf
// output computed here at write time. SQL lower() and Go case folding
// disagree on some inputs (ß, dotted İ, the ﬁ ligature), so identity is
// decided once, in Go, and never re-derived in SQL.
const itemKeyWhere = `name_key = $1 AND unit_key = $2`

// GetByKey finds an item by (name, unit). Returns nil on miss.
func (r *ItemRepo) GetByKey(ctx context.Context, name, unit string) (*entity.Item, error) {
	k := dledger.KeyOf(name, unit)
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + itemKeyWhere
	item, err := scanItem(r.q.QueryRow(ctx, query, k.Name, k.Unit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by key: %w", err)
	}
	return item, nil
}

// GetByKeyForUpdate does the same lookup but locks the row (SELECT FOR
// UPDATE) until the surrounding transaction ends.
func (r *ItemRepo) GetByKeyForUpdate(ctx context.Context, name, unit string) (*entity.Item, error) {
	k := dledger.KeyOf(name, unit)
	query := `SELECT ` + itemColumns + ` FROM items WHERE ` + itemKeyWhere + ` FOR UPDATE`
	item, err := scanItem(r.q.QueryRow(ctx, query, k.Name, k.Unit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return item, nil
}

func (r *ItemRepo) Insert(ctx context.Context, item *entity.Item) error {
	k := dledger.KeyOf(item.Name, item.Unit)
	query := `
		INSERT INTO items (id, name, name_key, category, unit, unit_key, quantity, min_stock, rack_location, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, k.Name, item.Category, item.Unit, k.Unit, item.Quantity,
		item.MinStock, item.RackLocation, item.ExpiryDate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	k := dledger.KeyOf(item.Name, item.Unit)
	query := `
		UPDATE items
		SET name = $2, name_key = $3, category = $4, unit = $5, unit_key = $6,
		    quantity = $7, min_stock = $8, rack_location = $9, expiry_date = $10,
		    updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, k.Name, item.Category, item.Unit, k.Unit, item.Quantity,
		item.MinStock, item.RackLocation, item.ExpiryDate, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update item: no row with id %s", item.ID)
	}
	return nil
}

// DecrementStock subtracts qty only while enough stock remains. The
// WHERE guard is the last line of defense for quantity >= 0.
func (r *ItemRepo) DecrementStock(ctx context.Context, id string, qty decimal.Decimal, now time.Time) (bool, error) {
	query := `
		UPDATE items
		SET quantity = quantity - $2, updated_at = $3
		WHERE id = $1 AND quantity >= $2`
	tag, err := r.q.Exec(ctx, query, id, qty, now)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name, unit`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

// ListLowStock returns items at or below their minimum stock level.
func (r *ItemRepo) ListLowStock(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity <= min_stock ORDER BY name, unit`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.Name, &it.Category, &it.Unit, &it.Quantity,
		&it.MinStock, &it.RackLocation, &it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func collectItems(rows pgx.Rows) ([]*entity.Item, error) {
	var items []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
