package ledger

import (
	"time"

	"financeguard/internal/fhe"

	"github.com/ethereum/go-ethereum/common"
)

type Kind uint8

const (
	Income Kind = iota
	Expense
)

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// Transaction is a ledger entry. The amount is only reachable through its handle.
type Transaction struct {
	ID           uint64
	Owner        common.Address
	Kind         Kind
	Description  string
	Category     string
	AmountHandle fhe.Handle
	CreatedAt    time.Time
	IsEncrypted  bool
}

// Bucket holds the encrypted running totals of one owner for one month.
type Bucket struct {
	Owner        common.Address
	YearMonth    uint32
	IncomeTotal  fhe.Handle
	ExpenseTotal fhe.Handle
}

type Input struct {
	Kind           Kind
	Description    string
	Category       string
	AmountHandle   fhe.Handle
	AmountProof    []byte
	EncryptOnChain bool
}

// TransactionAdded is published after every successful append.
type TransactionAdded struct {
	Owner         common.Address
	TransactionID uint64
	Kind          Kind
	Description   string
	Category      string
	CreatedAt     time.Time
	IsEncrypted   bool
}

// MaxTimestamp is the last second whose yearMonth still fits a uint32.
var MaxTimestamp = time.Date(42949672, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()

// ValidTimestamp reports whether unix lies in [0, MaxTimestamp].
func ValidTimestamp(unix int64) bool {
	return unix >= 0 && unix <= MaxTimestamp
}

// YearMonth buckets t by its UTC calendar month as year*100+month. Times
// outside [0, MaxTimestamp] are clamped to the nearest edge.
func YearMonth(t time.Time) uint32 {
	switch unix := t.Unix(); {
	case unix < 0:
		t = time.Unix(0, 0)
	case unix > MaxTimestamp:
		t = time.Unix(MaxTimestamp, 0)
	}
	t = t.UTC()
	return uint32(t.Year()*100 + int(t.Month()))
}

func YearMonthOf(unix int64) uint32 {
	return YearMonth(time.Unix(unix, 0))
}

func ValidYearMonth(ym uint32) bool {
	month := ym % 100
	return ym >= 100 && month >= 1 && month <= 12
}
