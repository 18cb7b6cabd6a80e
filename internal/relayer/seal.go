package relayer

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

var ErrUnsealFailed error = errors.New("cannot open sealed plaintext")

// Seal encrypts a plaintext to the ephemeral public key of a request.
func Seal(value uint32, publicKey *[32]byte) ([]byte, error) {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], value)

	sealed, err := box.SealAnonymous(nil, raw[:], publicKey, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("seal plaintext: %w", err)
	}
	return sealed, nil
}

func Open(sealed []byte, publicKey, privateKey *[32]byte) (uint32, error) {
	raw, ok := box.OpenAnonymous(nil, sealed, publicKey, privateKey)
	if !ok || len(raw) != 4 {
		return 0, ErrUnsealFailed
	}
	return binary.BigEndian.Uint32(raw), nil
}
