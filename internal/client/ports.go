package client

import (
	"context"

	"financeguard/internal/authz"
	"financeguard/internal/fhe"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LedgerAPI . LedgerAPI
type LedgerAPI interface {
	AddTransaction(ctx context.Context, in ledger.Input) (uint64, error)
	TransactionCount(ctx context.Context, owner common.Address) (uint64, error)
	Transactions(ctx context.Context, owner common.Address) ([]ledger.Transaction, error)
	Transaction(ctx context.Context, owner common.Address, index uint64) (ledger.Transaction, error)
	MonthlyTotals(ctx context.Context, owner common.Address, yearMonth uint32) (fhe.Handle, fhe.Handle, error)
}

// Gateway reaches the decryption service. Implementations keep privateKey local.
//
//counterfeiter:generate -o fake -fake-name Gateway . Gateway
type Gateway interface {
	UserDecrypt(ctx context.Context, req authz.Request, privateKey *[32]byte) (map[fhe.Handle]uint32, error)
}

//counterfeiter:generate -o fake -fake-name Encryptor . Encryptor
type Encryptor interface {
	Encrypt(ctx context.Context, contract, user common.Address, value uint32) (fhe.Input, error)
}
