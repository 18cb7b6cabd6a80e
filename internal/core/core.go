package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"financeguard/internal/authz"
	"financeguard/internal/ledger"
	tokenIssuer "financeguard/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var TimeNow = time.Now

var (
	ErrInvalidLogin    error = errors.New("invalid login signature")
	ErrLoginExpired    error = errors.New("login message expired")
	ErrUnauthenticated error = errors.New("unauthenticated")
)

const (
	loginMaxAge = 5 * time.Minute
	sessionTTL  = 24 * time.Hour
)

// FinanceGuard exposes the ledger to wallet authenticated users.
type FinanceGuard struct {
	logs      *zap.SugaredLogger
	ledger    Ledger
	jwtIssuer JWTIssuer
}

func NewFinanceGuard(logger *zap.SugaredLogger, ledger Ledger, jwt JWTIssuer) *FinanceGuard {
	return &FinanceGuard{
		logs:      logger,
		ledger:    ledger,
		jwtIssuer: jwt,
	}
}

// Authenticate verifies a signed login message and issues a token whose
// subject is the signing address.
func (f *FinanceGuard) Authenticate(ctx context.Context, msg LoginMessage) (string, error) {
	signedAt, err := authz.ParseLoginText(msg.Message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLogin, err)
	}

	age := TimeNow().Sub(signedAt)
	if age < -loginMaxAge || age > loginMaxAge {
		return "", ErrLoginExpired
	}

	signer, err := authz.RecoverTextSigner(msg.Message, msg.Signature)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLogin, err)
	}
	if signer != msg.Address {
		return "", ErrInvalidLogin
	}

	token := f.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject: signer.Hex(),
		TTL:     sessionTTL,
	})
	signed, err := f.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	f.logs.Infow("user authenticated", "address", signer.Hex())

	return signed, nil
}

// Owner resolves the address a session token was issued to.
func (f *FinanceGuard) Owner(token string) (common.Address, error) {
	if token == "" {
		return common.Address{}, ErrUnauthenticated
	}

	claims, err := f.jwtIssuer.Validate(token)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	if !common.IsHexAddress(claims.Subject) {
		return common.Address{}, fmt.Errorf("%w: token subject is not an address", ErrUnauthenticated)
	}

	return common.HexToAddress(claims.Subject), nil
}

func (f *FinanceGuard) AddTransaction(ctx context.Context, token string, in ledger.Input) (ledger.Transaction, error) {
	owner, err := f.Owner(token)
	if err != nil {
		return ledger.Transaction{}, err
	}

	tx, err := f.ledger.AddTransaction(ctx, owner, in)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	return tx, nil
}

func (f *FinanceGuard) UserTransactions(ctx context.Context, owner common.Address) ([]ledger.Transaction, error) {
	txs, err := f.ledger.Transactions(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}
	return txs, nil
}

func (f *FinanceGuard) TransactionCount(ctx context.Context, owner common.Address) (uint64, error) {
	count, err := f.ledger.TransactionCount(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("get transaction count: %w", err)
	}
	return count, nil
}

func (f *FinanceGuard) Transaction(ctx context.Context, owner common.Address, index uint64) (ledger.Transaction, error) {
	tx, err := f.ledger.Transaction(ctx, owner, index)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

func (f *FinanceGuard) MonthlyTotals(ctx context.Context, owner common.Address, yearMonth uint32) (MonthlyTotals, error) {
	income, err := f.ledger.MonthlyIncome(ctx, owner, yearMonth)
	if err != nil {
		return MonthlyTotals{}, fmt.Errorf("get monthly income: %w", err)
	}
	expense, err := f.ledger.MonthlyExpense(ctx, owner, yearMonth)
	if err != nil {
		return MonthlyTotals{}, fmt.Errorf("get monthly expense: %w", err)
	}

	return MonthlyTotals{
		YearMonth:        yearMonth,
		EncryptedIncome:  income,
		EncryptedExpense: expense,
	}, nil
}

func (f *FinanceGuard) YearMonth(timestamp int64) uint32 {
	return ledger.YearMonthOf(timestamp)
}
