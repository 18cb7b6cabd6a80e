package repository

import (
	"context"
	"errors"
	"fmt"

	"financeguard/internal/db"
	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

// CiphertextStore is the PostgreSQL implementation of fhe.Store.
type CiphertextStore struct {
	db Storage
}

func NewCiphertextStore(db Storage) *CiphertextStore {
	return &CiphertextStore{
		db: db,
	}
}

func (r *CiphertextStore) PutCiphertext(ctx context.Context, handle fhe.Handle, record fhe.Record) error {
	row := Ciphertext{
		Handle: handle.Hex(),
		Data:   record.Ciphertext,
		Public: record.Public,
	}
	if err := r.db.SaveToTable(ctx, &row); err != nil {
		return fmt.Errorf("save ciphertext: %w", err)
	}
	return nil
}

func (r *CiphertextStore) Ciphertext(ctx context.Context, handle fhe.Handle) (fhe.Record, error) {
	var row Ciphertext
	err := r.db.GetOneBy(ctx, "handle", handle.Hex(), &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fhe.Record{}, fhe.ErrUnknownHandle
		}
		return fhe.Record{}, fmt.Errorf("get ciphertext: %w", err)
	}
	return fhe.Record{Ciphertext: row.Data, Public: row.Public}, nil
}

func (r *CiphertextStore) Allow(ctx context.Context, handle fhe.Handle, account common.Address) error {
	grant := Grant{Handle: handle.Hex(), Account: account.Hex()}
	if err := r.db.SaveToTable(ctx, &grant); err != nil {
		return fmt.Errorf("save grant: %w", err)
	}
	return nil
}

func (r *CiphertextStore) IsAllowed(ctx context.Context, handle fhe.Handle, account common.Address) (bool, error) {
	count, err := r.db.CountBy(ctx, &Grant{}, map[string]any{
		"handle":  handle.Hex(),
		"account": account.Hex(),
	})
	if err != nil {
		return false, fmt.Errorf("count grants: %w", err)
	}
	return count > 0, nil
}
