package client

import (
	"sync"

	"financeguard/internal/ledger"
)

// Session holds decrypted amounts by transaction index. It lives in memory
// only and is dropped with the process.
type Session struct {
	mu      sync.RWMutex
	amounts map[uint64]uint32
}

func NewSession() *Session {
	return &Session{amounts: make(map[uint64]uint32)}
}

func (s *Session) Store(index uint64, amount uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amounts[index] = amount
}

func (s *Session) Amount(index uint64) (uint32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.amounts[index]
	return v, ok
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.amounts)
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.amounts)
}

// Totals are cents summed from decrypted amounts.
type Totals struct {
	Income    uint64
	Expense   uint64
	Net       int64
	Decrypted int
	Pending   int
}

// MonthlyTotals sums the decrypted amounts of txs created in yearMonth.
// txs must be the owner's full list so positions match session indexes.
func (s *Session) MonthlyTotals(txs []ledger.Transaction, yearMonth uint32) Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Totals
	for i, tx := range txs {
		if ledger.YearMonth(tx.CreatedAt) != yearMonth {
			continue
		}
		amount, ok := s.amounts[uint64(i)]
		if !ok {
			t.Pending++
			continue
		}
		t.Decrypted++
		switch tx.Kind {
		case ledger.Income:
			t.Income += uint64(amount)
		case ledger.Expense:
			t.Expense += uint64(amount)
		}
	}
	t.Net = int64(t.Income) - int64(t.Expense)
	return t
}
