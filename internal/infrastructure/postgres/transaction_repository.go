package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gudangapp/gudang-api/internal/domain/entity"
	"github.com/gudangapp/gudang-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo is the TransactionRepository implementation over
// PostgreSQL. Works with a pool or a tx (Querier).
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const trxColumns = `id, trx_type, item_id, name, quantity, unit, requester, supplier, note, bundle_code, trx_code, expiry_date, created_at`

func (r *TransactionRepo) Create(ctx context.Context, trx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, trx_type, item_id, name, quantity, unit, requester, supplier, note, bundle_code, trx_code, expiry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		trx.ID, trx.TrxType, trx.ItemID, trx.Name, trx.Quantity, trx.Unit,
		trx.Requester, trx.Supplier, trx.Note, trx.BundleCode, trx.TrxCode,
		trx.ExpiryDate, trx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) ListAsc(ctx context.Context) ([]*entity.Transaction, error) {
	query := `SELECT ` + trxColumns + ` FROM transactions ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	query := `SELECT ` + trxColumns + ` FROM transactions ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *TransactionRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("delete all transactions: %w", err)
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	var trxs []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		err := rows.Scan(
			&t.ID, &t.TrxType, &t.ItemID, &t.Name, &t.Quantity, &t.Unit,
			&t.Requester, &t.Supplier, &t.Note, &t.BundleCode, &t.TrxCode,
			&t.ExpiryDate, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		trxs = append(trxs, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return trxs, nil
}
