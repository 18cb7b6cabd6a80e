package core

import (
	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

type LoginMessage struct {
	Address   common.Address
	Message   string
	Signature []byte
}

type MonthlyTotals struct {
	YearMonth        uint32
	EncryptedIncome  fhe.Handle
	EncryptedExpense fhe.Handle
}
