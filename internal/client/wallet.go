package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"financeguard/internal/authz"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

type SignStatus int

const (
	SignApproved SignStatus = iota
	SignRejected
	SignTimedOut
)

func (s SignStatus) String() string {
	switch s {
	case SignApproved:
		return "approved"
	case SignRejected:
		return "rejected"
	case SignTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// SignResult is the outcome of asking the user for a signature. Rejection is
// an ordinary result, not an error.
type SignResult struct {
	Status    SignStatus
	Signature []byte
}

// Err maps a non approved result to its sentinel.
func (r SignResult) Err() error {
	switch r.Status {
	case SignApproved:
		return nil
	case SignRejected:
		return ErrSignatureRejected
	case SignTimedOut:
		return ErrSignatureTimedOut
	default:
		return fmt.Errorf("unexpected sign status %d", r.Status)
	}
}

type Wallet interface {
	Address() common.Address
	SignTypedData(ctx context.Context, data apitypes.TypedData) (SignResult, error)
	SignText(ctx context.Context, text []byte) (SignResult, error)
}

// Approver asks the user to confirm a signature. It should honour ctx.
type Approver func(ctx context.Context, prompt string) (bool, error)

func AutoApprove(context.Context, string) (bool, error) {
	return true, nil
}

// KeyWallet signs with a local secp256k1 key after the approver agrees.
type KeyWallet struct {
	key     *ecdsa.PrivateKey
	approve Approver
}

func NewKeyWallet(key *ecdsa.PrivateKey, approve Approver) *KeyWallet {
	if approve == nil {
		approve = AutoApprove
	}
	return &KeyWallet{
		key:     key,
		approve: approve,
	}
}

func (w *KeyWallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.key.PublicKey)
}

func (w *KeyWallet) SignTypedData(ctx context.Context, data apitypes.TypedData) (SignResult, error) {
	hash, err := authz.HashTypedData(data)
	if err != nil {
		return SignResult{}, err
	}
	prompt := fmt.Sprintf("Sign %s for %s (chain %v)", data.PrimaryType, data.Domain.Name, data.Domain.ChainId)
	return w.sign(ctx, prompt, hash)
}

func (w *KeyWallet) SignText(ctx context.Context, text []byte) (SignResult, error) {
	return w.sign(ctx, fmt.Sprintf("Sign message %q", text), accounts.TextHash(text))
}

type approval struct {
	ok  bool
	err error
}

func (w *KeyWallet) sign(ctx context.Context, prompt string, hash []byte) (SignResult, error) {
	decided := make(chan approval, 1)
	go func() {
		ok, err := w.approve(ctx, prompt)
		decided <- approval{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return SignResult{Status: SignTimedOut}, nil
		}
		return SignResult{Status: SignRejected}, nil
	case a := <-decided:
		if a.err != nil {
			return SignResult{}, fmt.Errorf("approve signature: %w", a.err)
		}
		if !a.ok {
			return SignResult{Status: SignRejected}, nil
		}
	}

	sig, err := crypto.Sign(hash, w.key)
	if err != nil {
		return SignResult{}, fmt.Errorf("sign: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return SignResult{Status: SignApproved, Signature: sig}, nil
}
