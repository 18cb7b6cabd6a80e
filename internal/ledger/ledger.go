package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	ErrInvalidArgument   error = errors.New("invalid argument")
	ErrEmptyDescription  error = fmt.Errorf("%w: description cannot be empty", ErrInvalidArgument)
	ErrEmptyCategory     error = fmt.Errorf("%w: category cannot be empty", ErrInvalidArgument)
	ErrUnknownKind       error = fmt.Errorf("%w: unknown transaction type", ErrInvalidArgument)
	ErrInvalidCiphertext error = errors.New("invalid ciphertext")
	ErrIndexOutOfRange   error = errors.New("transaction index out of bounds")
)

type Option func(*Ledger)

// WithClock replaces the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Ledger is the single writer of the encrypted transaction history.
type Ledger struct {
	logs     *zap.SugaredLogger
	store    Store
	fhe      Capability
	notifier Notifier
	contract common.Address
	now      func() time.Time

	mu     sync.Mutex
	nextID uint64
	zero   fhe.Handle
}

func New(ctx context.Context, logger *zap.SugaredLogger, store Store, capability Capability, notifier Notifier, contract common.Address, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		logs:     logger,
		store:    store,
		fhe:      capability,
		notifier: notifier,
		contract: contract,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	lastID, err := store.LastTransactionID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load last transaction id: %w", err)
	}
	l.nextID = lastID + 1

	l.zero, err = capability.TrivialEncrypt(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("encrypt zero total: %w", err)
	}

	return l, nil
}

// AddTransaction appends an entry for owner and folds its amount into the
// owner's bucket for the current month.
func (l *Ledger) AddTransaction(ctx context.Context, owner common.Address, in Input) (Transaction, error) {
	if err := validateInput(in); err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.fhe.VerifyInput(ctx, in.AmountHandle, in.AmountProof, l.contract, owner)
	if err != nil {
		if errors.Is(err, fhe.ErrInvalidProof) || errors.Is(err, fhe.ErrUnknownHandle) || errors.Is(err, fhe.ErrInvalidCiphertext) {
			return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
		}
		return Transaction{}, fmt.Errorf("verify amount: %w", err)
	}

	createdAt := l.now().UTC().Truncate(time.Second)
	yearMonth := YearMonth(createdAt)

	bucket, found, err := l.store.Bucket(ctx, owner, yearMonth)
	if err != nil {
		return Transaction{}, fmt.Errorf("load bucket: %w", err)
	}
	if !found {
		bucket = Bucket{
			Owner:        owner,
			YearMonth:    yearMonth,
			IncomeTotal:  l.zero,
			ExpenseTotal: l.zero,
		}
	}

	var total fhe.Handle
	switch in.Kind {
	case Income:
		total, err = l.fhe.Add(ctx, bucket.IncomeTotal, in.AmountHandle)
		bucket.IncomeTotal = total
	case Expense:
		total, err = l.fhe.Add(ctx, bucket.ExpenseTotal, in.AmountHandle)
		bucket.ExpenseTotal = total
	}
	if err != nil {
		return Transaction{}, fmt.Errorf("accumulate %s total: %w", in.Kind, err)
	}

	for _, handle := range []fhe.Handle{in.AmountHandle, total} {
		for _, account := range []common.Address{l.contract, owner} {
			if err := l.fhe.Allow(ctx, handle, account); err != nil {
				return Transaction{}, fmt.Errorf("grant access on %s: %w", handle, err)
			}
		}
	}

	tx := Transaction{
		ID:           l.nextID,
		Owner:        owner,
		Kind:         in.Kind,
		Description:  in.Description,
		Category:     in.Category,
		AmountHandle: in.AmountHandle,
		CreatedAt:    createdAt,
		IsEncrypted:  true,
	}

	if err := l.store.Commit(ctx, tx, bucket); err != nil {
		return Transaction{}, fmt.Errorf("commit transaction: %w", err)
	}
	l.nextID++

	l.logs.Infow("transaction added",
		"owner", owner.Hex(),
		"transaction_id", tx.ID,
		"kind", tx.Kind.String(),
		"year_month", yearMonth,
	)

	if l.notifier != nil {
		l.notifier.Notify(ctx, TransactionAdded{
			Owner:         owner,
			TransactionID: tx.ID,
			Kind:          tx.Kind,
			Description:   tx.Description,
			Category:      tx.Category,
			CreatedAt:     tx.CreatedAt,
			IsEncrypted:   tx.IsEncrypted,
		})
	}

	return tx, nil
}

func (l *Ledger) TransactionCount(ctx context.Context, owner common.Address) (uint64, error) {
	count, err := l.store.TransactionCount(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

// Transactions returns the owner's entries in insertion order.
func (l *Ledger) Transactions(ctx context.Context, owner common.Address) ([]Transaction, error) {
	txs, err := l.store.Transactions(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []Transaction{}
	}
	return txs, nil
}

func (l *Ledger) Transaction(ctx context.Context, owner common.Address, index uint64) (Transaction, error) {
	tx, found, err := l.store.TransactionAt(ctx, owner, index)
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	if !found {
		return Transaction{}, ErrIndexOutOfRange
	}
	return tx, nil
}

// MonthlyIncome returns the income total handle, or the public zero handle
// when the owner has no bucket for yearMonth.
func (l *Ledger) MonthlyIncome(ctx context.Context, owner common.Address, yearMonth uint32) (fhe.Handle, error) {
	bucket, err := l.bucket(ctx, owner, yearMonth)
	if err != nil {
		return fhe.Handle{}, err
	}
	return bucket.IncomeTotal, nil
}

func (l *Ledger) MonthlyExpense(ctx context.Context, owner common.Address, yearMonth uint32) (fhe.Handle, error) {
	bucket, err := l.bucket(ctx, owner, yearMonth)
	if err != nil {
		return fhe.Handle{}, err
	}
	return bucket.ExpenseTotal, nil
}

func (l *Ledger) bucket(ctx context.Context, owner common.Address, yearMonth uint32) (Bucket, error) {
	bucket, found, err := l.store.Bucket(ctx, owner, yearMonth)
	if err != nil {
		return Bucket{}, fmt.Errorf("load bucket: %w", err)
	}
	if !found {
		return Bucket{
			Owner:        owner,
			YearMonth:    yearMonth,
			IncomeTotal:  l.zero,
			ExpenseTotal: l.zero,
		}, nil
	}
	return bucket, nil
}

func validateInput(in Input) error {
	if in.Description == "" {
		return ErrEmptyDescription
	}
	if in.Category == "" {
		return ErrEmptyCategory
	}
	if !in.Kind.Valid() {
		return ErrUnknownKind
	}
	if in.AmountHandle.IsZero() {
		return fmt.Errorf("%w: missing amount handle", ErrInvalidCiphertext)
	}
	return nil
}
