package payload

import (
	"fmt"
	"math/big"

	"financeguard/internal/authz"
	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

type HandleContractPair struct {
	Handle          string `json:"handle"`
	ContractAddress string `json:"contractAddress"`
}

func (p HandleContractPair) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Handle, validation.Required, validation.Match(hexHandle)),
		validation.Field(&p.ContractAddress, validation.Required, validation.By(isAddress)),
	)
}

type UserDecryptRequest struct {
	HandleContractPairs []HandleContractPair `json:"handleContractPairs"`
	PublicKey           string               `json:"publicKey"`
	Signature           string               `json:"signature"`
	ContractAddresses   []string             `json:"contractAddresses"`
	UserAddress         string               `json:"userAddress"`
	StartTimestamp      int64                `json:"startTimestamp"`
	DurationDays        uint32               `json:"durationDays"`
}

func (u UserDecryptRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.HandleContractPairs, validation.Required),
		validation.Field(&u.PublicKey, validation.Required, validation.Match(hexHandle)),
		validation.Field(&u.Signature, validation.Required, validation.Match(hexBytes)),
		validation.Field(&u.ContractAddresses, validation.Required, validation.Each(validation.By(isAddress))),
		validation.Field(&u.UserAddress, validation.Required, validation.By(isAddress)),
		validation.Field(&u.StartTimestamp, validation.Required),
		validation.Field(&u.DurationDays, validation.Required),
	)
}

func NewUserDecryptRequest(req authz.Request) UserDecryptRequest {
	pairs := make([]HandleContractPair, 0, len(req.Pairs))
	for _, p := range req.Pairs {
		pairs = append(pairs, HandleContractPair{
			Handle:          p.Handle.Hex(),
			ContractAddress: p.Contract.Hex(),
		})
	}
	contracts := make([]string, 0, len(req.ContractAddresses))
	for _, c := range req.ContractAddresses {
		contracts = append(contracts, c.Hex())
	}

	return UserDecryptRequest{
		HandleContractPairs: pairs,
		PublicKey:           hexutil.Encode(req.PublicKey[:]),
		Signature:           hexutil.Encode(req.Signature),
		ContractAddresses:   contracts,
		UserAddress:         req.UserAddress.Hex(),
		StartTimestamp:      req.StartTimestamp,
		DurationDays:        req.DurationDays,
	}
}

func (u UserDecryptRequest) ToRequest() (authz.Request, error) {
	pairs := make([]authz.HandleContractPair, 0, len(u.HandleContractPairs))
	for _, p := range u.HandleContractPairs {
		handle, err := fhe.HexToHandle(p.Handle)
		if err != nil {
			return authz.Request{}, fmt.Errorf("parse handle: %w", err)
		}
		pairs = append(pairs, authz.HandleContractPair{
			Handle:   handle,
			Contract: common.HexToAddress(p.ContractAddress),
		})
	}

	pub, err := hexutil.Decode(u.PublicKey)
	if err != nil {
		return authz.Request{}, fmt.Errorf("parse public key: %w", err)
	}
	sig, err := hexutil.Decode(u.Signature)
	if err != nil {
		return authz.Request{}, fmt.Errorf("parse signature: %w", err)
	}

	contracts := make([]common.Address, 0, len(u.ContractAddresses))
	for _, c := range u.ContractAddresses {
		contracts = append(contracts, common.HexToAddress(c))
	}

	req := authz.Request{
		Pairs:             pairs,
		Signature:         sig,
		ContractAddresses: contracts,
		UserAddress:       common.HexToAddress(u.UserAddress),
		StartTimestamp:    u.StartTimestamp,
		DurationDays:      u.DurationDays,
	}
	copy(req.PublicKey[:], pub)
	return req, nil
}

// UserDecryptResponse maps each handle to its plaintext sealed to the
// request's public key.
type UserDecryptResponse struct {
	Results map[string]string `json:"results"`
}

type InputRequest struct {
	Ciphertext      string `json:"ciphertext"`
	ContractAddress string `json:"contractAddress"`
	UserAddress     string `json:"userAddress"`
}

func (i InputRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Ciphertext, validation.Required, validation.Match(hexBytes)),
		validation.Field(&i.ContractAddress, validation.Required, validation.By(isAddress)),
		validation.Field(&i.UserAddress, validation.Required, validation.By(isAddress)),
	)
}

type InputResponse struct {
	Handle string `json:"handle"`
	Proof  string `json:"proof"`
}

// Network describes the deployment a client talks to.
type Network struct {
	PublicKey         string `json:"publicKey"`
	ChainID           int64  `json:"chainId"`
	ContractAddress   string `json:"contractAddress"`
	VerifyingContract string `json:"verifyingContract"`
	InputVerifier     string `json:"inputVerifier"`
}

func NewNetwork(pub *fhe.PublicKey, domain authz.Domain, contract, verifier common.Address) Network {
	return Network{
		PublicKey:         hexutil.Encode(pub.N.Bytes()),
		ChainID:           domain.ChainID,
		ContractAddress:   contract.Hex(),
		VerifyingContract: domain.VerifyingContract.Hex(),
		InputVerifier:     verifier.Hex(),
	}
}

// Modulus parses the Paillier modulus. hexutil.DecodeBig caps at 256 bits.
func (n Network) Modulus() (*big.Int, error) {
	raw, err := hexutil.Decode(n.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return new(big.Int).SetBytes(raw), nil
}
