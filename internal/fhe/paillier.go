package fhe

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	ErrInvalidCiphertext error = errors.New("invalid ciphertext")
	ErrInvalidKey        error = errors.New("invalid paillier key")
)

var (
	one        = big.NewInt(1)
	uint32Span = new(big.Int).Lsh(one, 32)
)

// PublicKey is a Paillier public key with generator n+1.
type PublicKey struct {
	N  *big.Int
	N2 *big.Int
}

type PrivateKey struct {
	PublicKey
	Lambda *big.Int
	Mu     *big.Int
}

func NewPublicKey(n *big.Int) (*PublicKey, error) {
	if n == nil || n.Cmp(uint32Span) <= 0 {
		return nil, fmt.Errorf("%w: modulus too small", ErrInvalidKey)
	}
	return &PublicKey{
		N:  new(big.Int).Set(n),
		N2: new(big.Int).Mul(n, n),
	}, nil
}

func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if bits < 128 {
		return nil, fmt.Errorf("%w: %d bits is too short", ErrInvalidKey, bits)
	}

	for {
		p, err := rand.Prime(random, bits/2)
		if err != nil {
			return nil, fmt.Errorf("generate prime p: %w", err)
		}
		q, err := rand.Prime(random, bits-bits/2)
		if err != nil {
			return nil, fmt.Errorf("generate prime q: %w", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}
		return NewPrivateKey(p, q)
	}
}

func NewPrivateKey(p, q *big.Int) (*PrivateKey, error) {
	if p == nil || q == nil || p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: primes must be distinct", ErrInvalidKey)
	}
	if !p.ProbablyPrime(20) || !q.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: factors must be prime", ErrInvalidKey)
	}

	n := new(big.Int).Mul(p, q)
	pub, err := NewPublicKey(n)
	if err != nil {
		return nil, err
	}

	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	lambda := new(big.Int).Mul(pm1, qm1)

	mu := new(big.Int).ModInverse(lambda, n)
	if mu == nil {
		return nil, fmt.Errorf("%w: phi(n) not invertible mod n", ErrInvalidKey)
	}

	return &PrivateKey{
		PublicKey: *pub,
		Lambda:    lambda,
		Mu:        mu,
	}, nil
}

// CiphertextSize is the fixed width of an encoded ciphertext.
func (pk *PublicKey) CiphertextSize() int {
	return (pk.N2.BitLen() + 7) / 8
}

func (pk *PublicKey) Encrypt(random io.Reader, m uint32) (*big.Int, error) {
	r, err := pk.randomUnit(random)
	if err != nil {
		return nil, err
	}

	c := pk.Trivial(m)
	rn := new(big.Int).Exp(r, pk.N, pk.N2)
	return c.Mul(c, rn).Mod(c, pk.N2), nil
}

// Trivial returns the deterministic encryption of m with randomness 1.
func (pk *PublicKey) Trivial(m uint32) *big.Int {
	c := new(big.Int).SetUint64(uint64(m))
	c.Mul(c, pk.N)
	c.Add(c, one)
	return c.Mod(c, pk.N2)
}

// Add returns a ciphertext of the sum of the plaintexts behind a and b.
func (pk *PublicKey) Add(a, b *big.Int) *big.Int {
	c := new(big.Int).Mul(a, b)
	return c.Mod(c, pk.N2)
}

// Validate checks that c lies in the ciphertext group of this key.
func (pk *PublicKey) Validate(c *big.Int) error {
	if c == nil || c.Sign() <= 0 || c.Cmp(pk.N2) >= 0 {
		return fmt.Errorf("%w: out of range", ErrInvalidCiphertext)
	}
	if new(big.Int).GCD(nil, nil, c, pk.N).Cmp(one) != 0 {
		return fmt.Errorf("%w: not a unit mod n^2", ErrInvalidCiphertext)
	}
	return nil
}

func (pk *PublicKey) Encode(c *big.Int) []byte {
	return c.FillBytes(make([]byte, pk.CiphertextSize()))
}

func (pk *PublicKey) Decode(raw []byte) (*big.Int, error) {
	if len(raw) != pk.CiphertextSize() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidCiphertext, pk.CiphertextSize(), len(raw))
	}
	c := new(big.Int).SetBytes(raw)
	if err := pk.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (pk *PublicKey) randomUnit(random io.Reader) (*big.Int, error) {
	for {
		r, err := rand.Int(random, pk.N)
		if err != nil {
			return nil, fmt.Errorf("sample randomness: %w", err)
		}
		if r.Sign() == 0 {
			continue
		}
		if new(big.Int).GCD(nil, nil, r, pk.N).Cmp(one) == 0 {
			return r, nil
		}
	}
}

// Decrypt recovers the plaintext reduced to 32 bits, so sums wrap like uint32.
func (sk *PrivateKey) Decrypt(c *big.Int) (uint32, error) {
	if err := sk.Validate(c); err != nil {
		return 0, err
	}

	u := new(big.Int).Exp(c, sk.Lambda, sk.N2)
	u.Sub(u, one)
	u.Div(u, sk.N)
	u.Mul(u, sk.Mu)
	u.Mod(u, sk.N)
	u.Mod(u, uint32Span)

	return uint32(u.Uint64()), nil
}
