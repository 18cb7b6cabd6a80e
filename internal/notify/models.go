package notify

import (
	"encoding/json"
	"time"

	"financeguard/internal/ledger"

	"github.com/oklog/ulid/v2"
)

const TypeTransactionAdded = "transaction.added"

// Event is the wire form of a ledger change. Amounts are never part of it.
type Event struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Owner         string    `json:"owner"`
	TransactionID uint64    `json:"transactionId"`
	Kind          string    `json:"kind"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
	IsEncrypted   bool      `json:"isEncrypted"`
}

func NewEvent(tx ledger.TransactionAdded, now time.Time) Event {
	return Event{
		ID:            ulid.MustNewDefault(now).String(),
		Type:          TypeTransactionAdded,
		Owner:         tx.Owner.Hex(),
		TransactionID: tx.TransactionID,
		Kind:          tx.Kind.String(),
		Description:   tx.Description,
		Category:      tx.Category,
		CreatedAt:     tx.CreatedAt,
		IsEncrypted:   tx.IsEncrypted,
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
