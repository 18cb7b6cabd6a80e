package authz

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"golang.org/x/crypto/nacl/box"
)

var (
	ErrAuthorizationConsumed error = errors.New("authorization already used")
	ErrNoHandles             error = errors.New("no ciphertext handles to authorize")
	ErrInvalidDuration       error = errors.New("invalid authorization duration")
)

type HandleContractPair struct {
	Handle   fhe.Handle
	Contract common.Address
}

// Request is what the decryption service receives. It never carries the
// ephemeral private key.
type Request struct {
	Pairs             []HandleContractPair
	PublicKey         [32]byte
	Signature         []byte
	ContractAddresses []common.Address
	UserAddress       common.Address
	StartTimestamp    int64
	DurationDays      uint32
}

func (r Request) Claim() Claim {
	return Claim{
		PublicKey:         r.PublicKey,
		ContractAddresses: r.ContractAddresses,
		StartTimestamp:    r.StartTimestamp,
		DurationDays:      r.DurationDays,
	}
}

// Builder collects the handles of one decrypt request.
type Builder struct {
	domain   Domain
	user     common.Address
	pairs    []HandleContractPair
	duration uint32
	now      func() time.Time
	random   io.Reader
}

func NewBuilder(domain Domain, user common.Address) *Builder {
	return &Builder{
		domain:   domain,
		user:     user,
		duration: DefaultDurationDays,
		now:      time.Now,
		random:   rand.Reader,
	}
}

func (b *Builder) Add(handle fhe.Handle, contract common.Address) *Builder {
	b.pairs = append(b.pairs, HandleContractPair{Handle: handle, Contract: contract})
	return b
}

func (b *Builder) WithDuration(days uint32) *Builder {
	b.duration = days
	return b
}

func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build generates a fresh key pair and returns an authorization that can be
// used exactly once.
func (b *Builder) Build() (*Authorization, error) {
	if len(b.pairs) == 0 {
		return nil, ErrNoHandles
	}
	if b.duration == 0 || b.duration > MaxDurationDays {
		return nil, fmt.Errorf("%w: %d days", ErrInvalidDuration, b.duration)
	}

	pub, priv, err := box.GenerateKey(b.random)
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key pair: %w", err)
	}

	pairs := make([]HandleContractPair, len(b.pairs))
	copy(pairs, b.pairs)

	request := Request{
		Pairs:             pairs,
		PublicKey:         *pub,
		ContractAddresses: uniqueContracts(pairs),
		UserAddress:       b.user,
		StartTimestamp:    b.now().Unix(),
		DurationDays:      b.duration,
	}

	return &Authorization{
		request:    request,
		typedData:  TypedData(b.domain, request.Claim()),
		privateKey: priv,
	}, nil
}

// Authorization holds the ephemeral key material of one decrypt request.
type Authorization struct {
	mu         sync.Mutex
	used       bool
	request    Request
	typedData  apitypes.TypedData
	privateKey *[32]byte
}

// TypedData is the message the wallet is asked to sign.
func (a *Authorization) TypedData() apitypes.TypedData {
	return a.typedData
}

func (a *Authorization) Window() Window {
	return a.request.Claim().Window()
}

// Use hands the signed request and the private key to fn. The key is wiped
// when fn returns, whatever the outcome.
func (a *Authorization) Use(signature []byte, fn func(req Request, privateKey *[32]byte) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.used {
		return ErrAuthorizationConsumed
	}
	a.used = true
	defer a.wipe()

	req := a.request
	req.Signature = signature
	return fn(req, a.privateKey)
}

// Discard wipes the key without using it. Safe to call more than once.
func (a *Authorization) Discard() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.used = true
	a.wipe()
}

func (a *Authorization) wipe() {
	if a.privateKey == nil {
		return
	}
	for i := range a.privateKey {
		a.privateKey[i] = 0
	}
	a.privateKey = nil
}

func uniqueContracts(pairs []HandleContractPair) []common.Address {
	seen := make(map[common.Address]struct{}, len(pairs))
	contracts := make([]common.Address, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Contract]; ok {
			continue
		}
		seen[p.Contract] = struct{}{}
		contracts = append(contracts, p.Contract)
	}
	return contracts
}
