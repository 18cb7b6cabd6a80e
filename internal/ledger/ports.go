package ledger

import (
	"context"

	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store persists transactions and buckets. Commit must apply both atomically.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	LastTransactionID(ctx context.Context) (uint64, error)
	TransactionCount(ctx context.Context, owner common.Address) (uint64, error)
	Transactions(ctx context.Context, owner common.Address) ([]Transaction, error)
	TransactionAt(ctx context.Context, owner common.Address, index uint64) (Transaction, bool, error)
	Bucket(ctx context.Context, owner common.Address, yearMonth uint32) (Bucket, bool, error)
	Commit(ctx context.Context, tx Transaction, bucket Bucket) error
}

// Capability is the slice of the coprocessor the ledger computes with.
type Capability interface {
	VerifyInput(ctx context.Context, handle fhe.Handle, proof []byte, contract, user common.Address) error
	Add(ctx context.Context, a, b fhe.Handle) (fhe.Handle, error)
	TrivialEncrypt(ctx context.Context, v uint32) (fhe.Handle, error)
	Allow(ctx context.Context, handle fhe.Handle, account common.Address) error
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Notify(ctx context.Context, event TransactionAdded)
}
