package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"financeguard/internal/ledger"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Draft is a transaction as the user types it.
type Draft struct {
	Kind        ledger.Kind
	Description string
	Category    string
	Amount      string
}

type Submitter struct {
	logs       *zap.SugaredLogger
	wallet     Wallet
	encryptor  Encryptor
	ledger     LedgerAPI
	contract   common.Address
	newBackOff func() backoff.BackOff
}

func NewSubmitter(logger *zap.SugaredLogger, wallet Wallet, encryptor Encryptor, ledger LedgerAPI, contract common.Address) *Submitter {
	return &Submitter{
		logs:       logger,
		wallet:     wallet,
		encryptor:  encryptor,
		ledger:     ledger,
		contract:   contract,
		newBackOff: defaultBackOff,
	}
}

// WithBackOff replaces the polling schedule used while awaiting inclusion.
func (s *Submitter) WithBackOff(newBackOff func() backoff.BackOff) *Submitter {
	s.newBackOff = newBackOff
	return s
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return b
}

// Submit encrypts the amount, appends the transaction and waits until it is
// visible in the owner's ledger.
func (s *Submitter) Submit(ctx context.Context, d Draft) (ledger.Transaction, error) {
	if s.encryptor == nil {
		return ledger.Transaction{}, ErrCapabilityNotReady
	}
	if s.contract == (common.Address{}) {
		return ledger.Transaction{}, ErrContractUnresolved
	}
	if s.wallet == nil || s.wallet.Address() == (common.Address{}) {
		return ledger.Transaction{}, ErrNotConnected
	}

	cents, err := validateDraft(d)
	if err != nil {
		return ledger.Transaction{}, err
	}

	owner := s.wallet.Address()
	input, err := s.encryptor.Encrypt(ctx, s.contract, owner, cents)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("encrypt amount: %w", err)
	}

	id, err := s.ledger.AddTransaction(ctx, ledger.Input{
		Kind:           d.Kind,
		Description:    d.Description,
		Category:       d.Category,
		AmountHandle:   input.Handle,
		AmountProof:    input.Proof,
		EncryptOnChain: true,
	})
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	s.logs.Infow("transaction submitted", "owner", owner.Hex(), "transaction_id", id)

	tx, err := s.awaitInclusion(ctx, owner, id)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("await transaction %d: %w", id, err)
	}
	return tx, nil
}

func (s *Submitter) awaitInclusion(ctx context.Context, owner common.Address, id uint64) (ledger.Transaction, error) {
	op := func() (ledger.Transaction, error) {
		txs, err := s.ledger.Transactions(ctx, owner)
		if errors.Is(err, ErrServiceUnavailable) {
			return ledger.Transaction{}, err
		}
		if err != nil {
			return ledger.Transaction{}, backoff.Permanent(err)
		}
		for i := len(txs) - 1; i >= 0; i-- {
			if txs[i].ID == id {
				return txs[i], nil
			}
		}
		return ledger.Transaction{}, ErrNotIncluded
	}

	return backoff.RetryWithData(op, backoff.WithContext(s.newBackOff(), ctx))
}

func validateDraft(d Draft) (uint32, error) {
	if d.Description == "" {
		return 0, ledger.ErrEmptyDescription
	}
	if d.Category == "" {
		return 0, ledger.ErrEmptyCategory
	}
	if !d.Kind.Valid() {
		return 0, ledger.ErrUnknownKind
	}
	return DollarsToCents(d.Amount)
}
