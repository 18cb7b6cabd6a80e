package payload

import (
	"fmt"
	"time"

	"financeguard/internal/fhe"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

// AddTransactionRequest is the body of an addTransaction call.
type AddTransactionRequest struct {
	TransactionType uint8  `json:"transactionType"`
	Description     string `json:"description"`
	EncryptedAmount string `json:"encryptedAmount"`
	InputProof      string `json:"inputProof"`
	Category        string `json:"category"`
	EncryptOnChain  bool   `json:"encryptOnChain"`
}

// Validate checks the wire format only. Empty description and category are
// left to the ledger so the caller gets its specific rejection.
func (a AddTransactionRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.TransactionType, validation.In(uint8(ledger.Income), uint8(ledger.Expense))),
		validation.Field(&a.EncryptedAmount, validation.Required, validation.Match(hexHandle)),
		validation.Field(&a.InputProof, validation.Required, validation.Match(hexBytes)),
	)
}

func (a AddTransactionRequest) ToInput() (ledger.Input, error) {
	handle, err := fhe.HexToHandle(a.EncryptedAmount)
	if err != nil {
		return ledger.Input{}, fmt.Errorf("parse amount handle: %w", err)
	}
	proof, err := hexutil.Decode(a.InputProof)
	if err != nil {
		return ledger.Input{}, fmt.Errorf("parse input proof: %w", err)
	}

	return ledger.Input{
		Kind:           ledger.Kind(a.TransactionType),
		Description:    a.Description,
		Category:       a.Category,
		AmountHandle:   handle,
		AmountProof:    proof,
		EncryptOnChain: a.EncryptOnChain,
	}, nil
}

func NewAddTransactionRequest(in ledger.Input) AddTransactionRequest {
	return AddTransactionRequest{
		TransactionType: uint8(in.Kind),
		Description:     in.Description,
		EncryptedAmount: in.AmountHandle.Hex(),
		InputProof:      hexutil.Encode(in.AmountProof),
		Category:        in.Category,
		EncryptOnChain:  in.EncryptOnChain,
	}
}

type Transaction struct {
	ID              uint64 `json:"id"`
	User            string `json:"user"`
	TransactionType uint8  `json:"transactionType"`
	Description     string `json:"description"`
	EncryptedAmount string `json:"encryptedAmount"`
	Category        string `json:"category"`
	Timestamp       int64  `json:"timestamp"`
	IsEncrypted     bool   `json:"isEncrypted"`
}

func NewTransaction(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID,
		User:            tx.Owner.Hex(),
		TransactionType: uint8(tx.Kind),
		Description:     tx.Description,
		EncryptedAmount: tx.AmountHandle.Hex(),
		Category:        tx.Category,
		Timestamp:       tx.CreatedAt.Unix(),
		IsEncrypted:     tx.IsEncrypted,
	}
}

func NewTransactions(txs []ledger.Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransaction(tx))
	}
	return out
}

func (t Transaction) ToLedger() (ledger.Transaction, error) {
	handle, err := fhe.HexToHandle(t.EncryptedAmount)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("parse amount handle: %w", err)
	}
	return ledger.Transaction{
		ID:           t.ID,
		Owner:        common.HexToAddress(t.User),
		Kind:         ledger.Kind(t.TransactionType),
		Description:  t.Description,
		Category:     t.Category,
		AmountHandle: handle,
		CreatedAt:    time.Unix(t.Timestamp, 0).UTC(),
		IsEncrypted:  t.IsEncrypted,
	}, nil
}

type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
}

type TransactionCount struct {
	Count uint64 `json:"count"`
}

type MonthlyTotals struct {
	YearMonth        uint32 `json:"yearMonth"`
	EncryptedIncome  string `json:"encryptedIncome"`
	EncryptedExpense string `json:"encryptedExpense"`
}

type YearMonth struct {
	YearMonth uint32 `json:"yearMonth"`
}
