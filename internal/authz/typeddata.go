package authz

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DomainName    = "Decryption"
	DomainVersion = "1"
	PrimaryType   = "UserDecryptRequestVerification"

	DefaultDurationDays uint32 = 7
	MaxDurationDays     uint32 = 365

	secondsPerDay = 24 * 60 * 60
)

var ErrInvalidSignature error = errors.New("invalid signature")

// Domain identifies the chain and verifying contract a signature is bound to.
type Domain struct {
	ChainID           int64
	VerifyingContract common.Address
}

// Claim is the message a wallet signs to authorize a user decryption.
type Claim struct {
	PublicKey         [32]byte
	ContractAddresses []common.Address
	StartTimestamp    int64
	DurationDays      uint32
}

func (c Claim) Window() Window {
	return Window{
		Start:        time.Unix(c.StartTimestamp, 0).UTC(),
		DurationDays: c.DurationDays,
	}
}

// Window is the validity period of an authorization, end exclusive.
type Window struct {
	Start        time.Time
	DurationDays uint32
}

func (w Window) End() time.Time {
	return w.Start.Add(time.Duration(w.DurationDays) * secondsPerDay * time.Second)
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End())
}

func TypedData(domain Domain, claim Claim) apitypes.TypedData {
	contracts := make([]interface{}, 0, len(claim.ContractAddresses))
	for _, addr := range claim.ContractAddresses {
		contracts = append(contracts, addr.Hex())
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			PrimaryType: {
				{Name: "publicKey", Type: "bytes"},
				{Name: "contractAddresses", Type: "address[]"},
				{Name: "startTimestamp", Type: "uint256"},
				{Name: "durationDays", Type: "uint256"},
			},
		},
		PrimaryType: PrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              DomainName,
			Version:           DomainVersion,
			ChainId:           (*math.HexOrDecimal256)(big.NewInt(domain.ChainID)),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"publicKey":         hexutil.Encode(claim.PublicKey[:]),
			"contractAddresses": contracts,
			"startTimestamp":    fmt.Sprintf("%d", claim.StartTimestamp),
			"durationDays":      fmt.Sprintf("%d", claim.DurationDays),
		},
	}
}

// Hash returns the EIP-712 digest of the claim under domain.
func Hash(domain Domain, claim Claim) ([]byte, error) {
	return HashTypedData(TypedData(domain, claim))
}

func HashTypedData(data apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(data)
	if err != nil {
		return nil, fmt.Errorf("hash typed data: %w", err)
	}
	return hash, nil
}

// RecoverSigner returns the account that produced sig over the claim.
func RecoverSigner(domain Domain, claim Claim, sig []byte) (common.Address, error) {
	hash, err := Hash(domain, claim)
	if err != nil {
		return common.Address{}, err
	}
	return recoverAddress(hash, sig)
}

func recoverAddress(hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, crypto.SignatureLength, len(sig))
	}

	normalized := make([]byte, len(sig))
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
