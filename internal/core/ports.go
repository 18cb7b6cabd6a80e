package core

import (
	"context"

	"financeguard/internal/fhe"
	"financeguard/internal/ledger"
	tokenIssuer "financeguard/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	AddTransaction(ctx context.Context, owner common.Address, in ledger.Input) (ledger.Transaction, error)
	TransactionCount(ctx context.Context, owner common.Address) (uint64, error)
	Transactions(ctx context.Context, owner common.Address) ([]ledger.Transaction, error)
	Transaction(ctx context.Context, owner common.Address, index uint64) (ledger.Transaction, error)
	MonthlyIncome(ctx context.Context, owner common.Address, yearMonth uint32) (fhe.Handle, error)
	MonthlyExpense(ctx context.Context, owner common.Address, yearMonth uint32) (fhe.Handle, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (*tokenIssuer.SessionClaims, error)
}
