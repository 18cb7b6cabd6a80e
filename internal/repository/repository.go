package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"financeguard/internal/db"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Migrate creates every table the stores read and write.
func Migrate(storage Storage) error {
	err := storage.MigrateTable(&Transaction{}, &Bucket{}, &Ciphertext{}, &Grant{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// LedgerStore is the PostgreSQL implementation of ledger.Store.
type LedgerStore struct {
	db Storage
}

func NewLedgerStore(db Storage) *LedgerStore {
	return &LedgerStore{
		db: db,
	}
}

func (r *LedgerStore) LastTransactionID(ctx context.Context) (uint64, error) {
	id, err := r.db.MaxOf(ctx, &Transaction{}, "id")
	if err != nil {
		return 0, fmt.Errorf("get last transaction id: %w", err)
	}
	return uint64(id), nil
}

func (r *LedgerStore) TransactionCount(ctx context.Context, owner common.Address) (uint64, error) {
	count, err := r.db.CountBy(ctx, &Transaction{}, map[string]any{"owner": owner.Hex()})
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return uint64(count), nil
}

func (r *LedgerStore) Transactions(ctx context.Context, owner common.Address) ([]ledger.Transaction, error) {
	rows := []Transaction{}
	err := r.db.FindBy(ctx, map[string]any{"owner": owner.Hex()}, "id", &rows)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}

	txs := make([]ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := row.toLedger()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r *LedgerStore) TransactionAt(ctx context.Context, owner common.Address, index uint64) (ledger.Transaction, bool, error) {
	// gorm drops a negative OFFSET, which would select the first row
	if index > math.MaxInt {
		return ledger.Transaction{}, false, nil
	}

	var row Transaction
	err := r.db.NthBy(ctx, map[string]any{"owner": owner.Hex()}, "id", int(index), &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ledger.Transaction{}, false, nil
		}
		return ledger.Transaction{}, false, fmt.Errorf("get transaction %d: %w", index, err)
	}

	tx, err := row.toLedger()
	if err != nil {
		return ledger.Transaction{}, false, err
	}
	return tx, true, nil
}

func (r *LedgerStore) Bucket(ctx context.Context, owner common.Address, yearMonth uint32) (ledger.Bucket, bool, error) {
	var row Bucket
	conds := map[string]any{"owner": owner.Hex(), "year_month": yearMonth}
	err := r.db.NthBy(ctx, conds, "year_month", 0, &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ledger.Bucket{}, false, nil
		}
		return ledger.Bucket{}, false, fmt.Errorf("get bucket %d: %w", yearMonth, err)
	}

	bucket, err := row.toLedger()
	if err != nil {
		return ledger.Bucket{}, false, err
	}
	return bucket, true, nil
}

// Commit writes the transaction row and its bucket in one database transaction.
func (r *LedgerStore) Commit(ctx context.Context, tx ledger.Transaction, bucket ledger.Bucket) error {
	txRow := newTransaction(tx)
	bucketRow := newBucket(bucket)

	err := r.db.Commit(ctx,
		db.Insert(&txRow),
		db.Upsert(&bucketRow, []string{"owner", "year_month"}, []string{"income_total", "expense_total"}),
	)
	if err != nil {
		return fmt.Errorf("commit transaction %d: %w", tx.ID, err)
	}
	return nil
}
