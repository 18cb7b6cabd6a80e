package fhe

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Record is a stored ciphertext. Public records can be read by anyone.
type Record struct {
	Ciphertext []byte
	Public     bool
}

type Store interface {
	PutCiphertext(ctx context.Context, handle Handle, record Record) error
	Ciphertext(ctx context.Context, handle Handle) (Record, error)
	Allow(ctx context.Context, handle Handle, account common.Address) error
	IsAllowed(ctx context.Context, handle Handle, account common.Address) (bool, error)
}

//counterfeiter:generate -o fake -fake-name InputRegistrar . InputRegistrar
type InputRegistrar interface {
	RegisterInput(ctx context.Context, ciphertext []byte, contract, user common.Address) (Handle, []byte, error)
}
