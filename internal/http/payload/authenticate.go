package payload

import (
	"financeguard/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.By(isAddress)),
		validation.Field(&a.Message, validation.Required),
		validation.Field(&a.Signature, validation.Required, validation.Match(hexBytes)),
	)
}

func (a AuthRequest) ToMessage() core.LoginMessage {
	sig, _ := hexutil.Decode(a.Signature)
	return core.LoginMessage{
		Address:   common.HexToAddress(a.Address),
		Message:   a.Message,
		Signature: sig,
	}
}

type AuthResponse struct {
	Token string `json:"token"`
}
