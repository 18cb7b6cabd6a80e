package client

import (
	"context"
	"fmt"

	"financeguard/internal/authz"
	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MonthlySummary struct {
	YearMonth uint32
	Income    uint32
	Expense   uint32
	Net       int64
}

// Decrypter runs the user decryption protocol. Each call builds its own
// authorization with a fresh key pair.
type Decrypter struct {
	logs     *zap.SugaredLogger
	wallet   Wallet
	gateway  Gateway
	ledger   LedgerAPI
	domain   authz.Domain
	contract common.Address
	session  *Session
	duration uint32
}

func NewDecrypter(logger *zap.SugaredLogger, wallet Wallet, gateway Gateway, ledger LedgerAPI, domain authz.Domain, contract common.Address, session *Session) *Decrypter {
	return &Decrypter{
		logs:     logger,
		wallet:   wallet,
		gateway:  gateway,
		ledger:   ledger,
		domain:   domain,
		contract: contract,
		session:  session,
		duration: authz.DefaultDurationDays,
	}
}

// Decrypt reveals the amount of the transaction at index and remembers it
// in the session.
func (d *Decrypter) Decrypt(ctx context.Context, index uint64, handle fhe.Handle) (uint32, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	v, err := d.decryptOne(ctx, handle)
	if err != nil {
		return 0, err
	}
	d.session.Store(index, v)

	d.logs.Debugw("transaction decrypted", "index", index)
	return v, nil
}

// DecryptTransaction looks the handle up on the ledger before decrypting it.
func (d *Decrypter) DecryptTransaction(ctx context.Context, index uint64) (uint32, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}

	tx, err := d.ledger.Transaction(ctx, d.wallet.Address(), index)
	if err != nil {
		return 0, fmt.Errorf("get transaction: %w", err)
	}
	return d.Decrypt(ctx, index, tx.AmountHandle)
}

// DecryptMonthly reveals both monthly totals, each under its own authorization.
func (d *Decrypter) DecryptMonthly(ctx context.Context, yearMonth uint32) (MonthlySummary, error) {
	if err := d.ready(); err != nil {
		return MonthlySummary{}, err
	}

	income, expense, err := d.ledger.MonthlyTotals(ctx, d.wallet.Address(), yearMonth)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("get monthly totals: %w", err)
	}

	summary := MonthlySummary{YearMonth: yearMonth}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := d.decryptOne(gctx, income)
		if err != nil {
			return fmt.Errorf("decrypt income: %w", err)
		}
		summary.Income = v
		return nil
	})
	g.Go(func() error {
		v, err := d.decryptOne(gctx, expense)
		if err != nil {
			return fmt.Errorf("decrypt expense: %w", err)
		}
		summary.Expense = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return MonthlySummary{}, err
	}

	summary.Net = int64(summary.Income) - int64(summary.Expense)
	return summary, nil
}

func (d *Decrypter) ready() error {
	if d.gateway == nil {
		return ErrCapabilityNotReady
	}
	if d.contract == (common.Address{}) {
		return ErrContractUnresolved
	}
	if d.wallet == nil || d.wallet.Address() == (common.Address{}) {
		return ErrNotConnected
	}
	return nil
}

func (d *Decrypter) decryptOne(ctx context.Context, handle fhe.Handle) (uint32, error) {
	auth, err := authz.NewBuilder(d.domain, d.wallet.Address()).
		Add(handle, d.contract).
		WithDuration(d.duration).
		Build()
	if err != nil {
		return 0, fmt.Errorf("build authorization: %w", err)
	}
	defer auth.Discard()

	window := auth.Window()
	d.logs.Debugw("decryption authorized",
		"handle", handle.Hex(),
		"start", window.Start,
		"duration_days", window.DurationDays,
	)

	result, err := d.wallet.SignTypedData(ctx, auth.TypedData())
	if err != nil {
		return 0, fmt.Errorf("sign authorization: %w", err)
	}
	if err := result.Err(); err != nil {
		return 0, err
	}

	var plaintexts map[fhe.Handle]uint32
	err = auth.Use(result.Signature, func(req authz.Request, privateKey *[32]byte) error {
		var err error
		plaintexts, err = d.gateway.UserDecrypt(ctx, req, privateKey)
		return err
	})
	if err != nil {
		return 0, err
	}

	v, ok := plaintexts[handle]
	if !ok {
		return 0, fmt.Errorf("%w: no plaintext for %s", ErrServiceUnavailable, handle)
	}
	return v, nil
}
