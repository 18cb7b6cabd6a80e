package handler

import (
	"context"
	"net/http"

	"financeguard/internal/authz"
	"financeguard/internal/core"
	"financeguard/internal/fhe"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name LedgerService . LedgerService
type LedgerService interface {
	Authenticate(ctx context.Context, msg core.LoginMessage) (string, error)
	AddTransaction(ctx context.Context, token string, in ledger.Input) (ledger.Transaction, error)
	UserTransactions(ctx context.Context, owner common.Address) ([]ledger.Transaction, error)
	TransactionCount(ctx context.Context, owner common.Address) (uint64, error)
	Transaction(ctx context.Context, owner common.Address, index uint64) (ledger.Transaction, error)
	MonthlyTotals(ctx context.Context, owner common.Address, yearMonth uint32) (core.MonthlyTotals, error)
	YearMonth(timestamp int64) uint32
}

//counterfeiter:generate -o fake -fake-name DecryptionService . DecryptionService
type DecryptionService interface {
	UserDecrypt(ctx context.Context, req authz.Request) (map[fhe.Handle][]byte, error)
	Domain() authz.Domain
}

//counterfeiter:generate -o fake -fake-name InputRegistrar . InputRegistrar
type InputRegistrar interface {
	RegisterInput(ctx context.Context, ciphertext []byte, contract, user common.Address) (fhe.Handle, []byte, error)
	PublicKey() *fhe.PublicKey
	VerifierAddress() common.Address
}
