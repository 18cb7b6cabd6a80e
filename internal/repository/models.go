package repository

import (
	"fmt"
	"time"

	"financeguard/internal/fhe"
	"financeguard/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

type Transaction struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement:false"`
	Owner        string    `gorm:"size:42;not null;index"` // checksummed address
	Kind         uint8     `gorm:"not null"`
	Description  string    `gorm:"type:text;not null"`
	Category     string    `gorm:"size:255;not null"`
	AmountHandle string    `gorm:"size:66;not null"` // 0x + 64 hex chars
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	IsEncrypted  bool      `gorm:"not null"`
}

type Bucket struct {
	Owner        string `gorm:"primaryKey;size:42"`
	YearMonth    uint32 `gorm:"primaryKey;autoIncrement:false"`
	IncomeTotal  string `gorm:"size:66;not null"`
	ExpenseTotal string `gorm:"size:66;not null"`
}

type Ciphertext struct {
	Handle string `gorm:"primaryKey;size:66"`
	Data   []byte `gorm:"not null"`
	Public bool   `gorm:"not null;default:false"`
}

type Grant struct {
	Handle  string `gorm:"primaryKey;size:66"`
	Account string `gorm:"primaryKey;size:42"`
}

func newTransaction(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID,
		Owner:        tx.Owner.Hex(),
		Kind:         uint8(tx.Kind),
		Description:  tx.Description,
		Category:     tx.Category,
		AmountHandle: tx.AmountHandle.Hex(),
		CreatedAt:    tx.CreatedAt.UTC(),
		IsEncrypted:  tx.IsEncrypted,
	}
}

func (t Transaction) toLedger() (ledger.Transaction, error) {
	handle, err := fhe.HexToHandle(t.AmountHandle)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction %d: %w", t.ID, err)
	}
	return ledger.Transaction{
		ID:           t.ID,
		Owner:        common.HexToAddress(t.Owner),
		Kind:         ledger.Kind(t.Kind),
		Description:  t.Description,
		Category:     t.Category,
		AmountHandle: handle,
		CreatedAt:    t.CreatedAt.UTC(),
		IsEncrypted:  t.IsEncrypted,
	}, nil
}

func newBucket(b ledger.Bucket) Bucket {
	return Bucket{
		Owner:        b.Owner.Hex(),
		YearMonth:    b.YearMonth,
		IncomeTotal:  b.IncomeTotal.Hex(),
		ExpenseTotal: b.ExpenseTotal.Hex(),
	}
}

func (b Bucket) toLedger() (ledger.Bucket, error) {
	income, err := fhe.HexToHandle(b.IncomeTotal)
	if err != nil {
		return ledger.Bucket{}, fmt.Errorf("bucket %d income: %w", b.YearMonth, err)
	}
	expense, err := fhe.HexToHandle(b.ExpenseTotal)
	if err != nil {
		return ledger.Bucket{}, fmt.Errorf("bucket %d expense: %w", b.YearMonth, err)
	}
	return ledger.Bucket{
		Owner:        common.HexToAddress(b.Owner),
		YearMonth:    b.YearMonth,
		IncomeTotal:  income,
		ExpenseTotal: expense,
	}, nil
}
