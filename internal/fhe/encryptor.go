package fhe

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
)

// Input is an encrypted amount ready to be submitted to the ledger.
type Input struct {
	Handle Handle
	Proof  []byte
}

// Encryptor encrypts values on the client and registers them with the coprocessor.
type Encryptor struct {
	pub       *PublicKey
	registrar InputRegistrar
	random    io.Reader
}

func NewEncryptor(pub *PublicKey, registrar InputRegistrar) *Encryptor {
	return &Encryptor{
		pub:       pub,
		registrar: registrar,
		random:    rand.Reader,
	}
}

func (e *Encryptor) Encrypt(ctx context.Context, contract, user common.Address, value uint32) (Input, error) {
	c, err := e.pub.Encrypt(e.random, value)
	if err != nil {
		return Input{}, fmt.Errorf("encrypt value: %w", err)
	}

	handle, proof, err := e.registrar.RegisterInput(ctx, e.pub.Encode(c), contract, user)
	if err != nil {
		return Input{}, fmt.Errorf("register input: %w", err)
	}

	return Input{Handle: handle, Proof: proof}, nil
}
