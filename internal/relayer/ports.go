package relayer

import (
	"context"
	"math/big"

	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

// Coprocessor is the read side of the ciphertext store and access list.
type Coprocessor interface {
	Ciphertext(ctx context.Context, handle fhe.Handle) (*big.Int, error)
	IsAllowed(ctx context.Context, handle fhe.Handle, account common.Address) (bool, error)
}

// KeyHolder decrypts ciphertexts. *fhe.PrivateKey satisfies it.
type KeyHolder interface {
	Decrypt(c *big.Int) (uint32, error)
}
