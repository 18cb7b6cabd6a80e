package fhe

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrMalformedHandle error = errors.New("malformed ciphertext handle")

// Handle is an opaque 32 byte reference to a ciphertext held by the coprocessor.
type Handle [32]byte

func (h Handle) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Handle) String() string {
	return h.Hex()
}

func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Handle) UnmarshalText(text []byte) error {
	parsed, err := HexToHandle(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func HexToHandle(s string) (Handle, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %w", ErrMalformedHandle, err)
	}
	if len(raw) != len(Handle{}) {
		return Handle{}, fmt.Errorf("%w: expected 32 bytes, got %d", ErrMalformedHandle, len(raw))
	}

	var h Handle
	copy(h[:], raw)
	return h, nil
}

func deriveHandle(parts ...[]byte) Handle {
	var h Handle
	copy(h[:], crypto.Keccak256(parts...))
	return h
}
