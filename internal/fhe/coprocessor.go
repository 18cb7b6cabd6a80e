package fhe

import (
	"context"
	"crypto/ecdsa"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var (
	ErrUnknownHandle error = errors.New("unknown ciphertext handle")
	ErrInvalidProof  error = errors.New("invalid input proof")
)

const proofLength = 65

// Coprocessor evaluates additions over ciphertexts and keeps the access list
// that decides who may request decryption of a handle.
type Coprocessor struct {
	logs   *zap.SugaredLogger
	pub    *PublicKey
	signer *ecdsa.PrivateKey
	store  Store
}

func NewCoprocessor(logger *zap.SugaredLogger, pub *PublicKey, signer *ecdsa.PrivateKey, store Store) *Coprocessor {
	return &Coprocessor{
		logs:   logger,
		pub:    pub,
		signer: signer,
		store:  store,
	}
}

func (c *Coprocessor) PublicKey() *PublicKey {
	return c.pub
}

// VerifierAddress is the account whose signature backs every input proof.
func (c *Coprocessor) VerifierAddress() common.Address {
	return crypto.PubkeyToAddress(c.signer.PublicKey)
}

// RegisterInput stores a client produced ciphertext and returns its handle
// together with a proof binding it to the given contract and user.
func (c *Coprocessor) RegisterInput(ctx context.Context, ciphertext []byte, contract, user common.Address) (Handle, []byte, error) {
	if _, err := c.pub.Decode(ciphertext); err != nil {
		return Handle{}, nil, fmt.Errorf("decode input: %w", err)
	}

	handle := deriveHandle([]byte("input"), ciphertext, contract.Bytes(), user.Bytes())
	if err := c.store.PutCiphertext(ctx, handle, Record{Ciphertext: ciphertext}); err != nil {
		return Handle{}, nil, fmt.Errorf("store input: %w", err)
	}

	proof, err := crypto.Sign(proofDigest(handle, contract, user), c.signer)
	if err != nil {
		return Handle{}, nil, fmt.Errorf("sign input proof: %w", err)
	}
	proof[64] += 27

	c.logs.Debugw("input registered",
		"handle", handle.Hex(),
		"contract", contract.Hex(),
		"user", user.Hex(),
	)

	return handle, proof, nil
}

// VerifyInput checks that proof was issued for handle under contract and user.
func (c *Coprocessor) VerifyInput(ctx context.Context, handle Handle, proof []byte, contract, user common.Address) error {
	if len(proof) != proofLength {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidProof, proofLength, len(proof))
	}

	sig := make([]byte, proofLength)
	copy(sig, proof)
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pub, err := crypto.SigToPub(proofDigest(handle, contract, user), sig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	if crypto.PubkeyToAddress(*pub) != c.VerifierAddress() {
		return fmt.Errorf("%w: signer mismatch", ErrInvalidProof)
	}

	if _, err := c.store.Ciphertext(ctx, handle); err != nil {
		return fmt.Errorf("lookup input: %w", err)
	}

	return nil
}

// Add stores the homomorphic sum of a and b under a fresh handle.
func (c *Coprocessor) Add(ctx context.Context, a, b Handle) (Handle, error) {
	ca, err := c.Ciphertext(ctx, a)
	if err != nil {
		return Handle{}, fmt.Errorf("load lhs: %w", err)
	}
	cb, err := c.Ciphertext(ctx, b)
	if err != nil {
		return Handle{}, fmt.Errorf("load rhs: %w", err)
	}

	handle := deriveHandle([]byte("add"), a[:], b[:])
	sum := c.pub.Encode(c.pub.Add(ca, cb))
	if err := c.store.PutCiphertext(ctx, handle, Record{Ciphertext: sum}); err != nil {
		return Handle{}, fmt.Errorf("store sum: %w", err)
	}

	return handle, nil
}

// TrivialEncrypt returns a public handle for the plaintext v.
func (c *Coprocessor) TrivialEncrypt(ctx context.Context, v uint32) (Handle, error) {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], v)

	handle := deriveHandle([]byte("trivial"), raw[:])
	record := Record{
		Ciphertext: c.pub.Encode(c.pub.Trivial(v)),
		Public:     true,
	}
	if err := c.store.PutCiphertext(ctx, handle, record); err != nil {
		return Handle{}, fmt.Errorf("store trivial ciphertext: %w", err)
	}

	return handle, nil
}

func (c *Coprocessor) Allow(ctx context.Context, handle Handle, account common.Address) error {
	if _, err := c.store.Ciphertext(ctx, handle); err != nil {
		return fmt.Errorf("lookup handle: %w", err)
	}
	if err := c.store.Allow(ctx, handle, account); err != nil {
		return fmt.Errorf("grant access: %w", err)
	}
	return nil
}

func (c *Coprocessor) IsAllowed(ctx context.Context, handle Handle, account common.Address) (bool, error) {
	record, err := c.store.Ciphertext(ctx, handle)
	if err != nil {
		return false, fmt.Errorf("lookup handle: %w", err)
	}
	if record.Public {
		return true, nil
	}

	allowed, err := c.store.IsAllowed(ctx, handle, account)
	if err != nil {
		return false, fmt.Errorf("check access: %w", err)
	}
	return allowed, nil
}

func (c *Coprocessor) Ciphertext(ctx context.Context, handle Handle) (*big.Int, error) {
	record, err := c.store.Ciphertext(ctx, handle)
	if err != nil {
		return nil, err
	}
	return c.pub.Decode(record.Ciphertext)
}

func proofDigest(handle Handle, contract, user common.Address) []byte {
	return crypto.Keccak256([]byte("FinanceGuard input"), handle[:], contract.Bytes(), user.Bytes())
}
