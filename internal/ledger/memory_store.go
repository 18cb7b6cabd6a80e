package ledger

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

type bucketKey struct {
	owner     common.Address
	yearMonth uint32
}

// MemoryStore keeps the ledger in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	lastID  uint64
	ledgers map[common.Address][]Transaction
	buckets map[bucketKey]Bucket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ledgers: make(map[common.Address][]Transaction),
		buckets: make(map[bucketKey]Bucket),
	}
}

func (s *MemoryStore) LastTransactionID(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastID, nil
}

func (s *MemoryStore) TransactionCount(_ context.Context, owner common.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.ledgers[owner])), nil
}

func (s *MemoryStore) Transactions(_ context.Context, owner common.Address) ([]Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]Transaction, len(s.ledgers[owner]))
	copy(txs, s.ledgers[owner])
	return txs, nil
}

func (s *MemoryStore) TransactionAt(_ context.Context, owner common.Address, index uint64) (Transaction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := s.ledgers[owner]
	if index >= uint64(len(txs)) {
		return Transaction{}, false, nil
	}
	return txs[index], true, nil
}

func (s *MemoryStore) Bucket(_ context.Context, owner common.Address, yearMonth uint32) (Bucket, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket, ok := s.buckets[bucketKey{owner: owner, yearMonth: yearMonth}]
	return bucket, ok, nil
}

func (s *MemoryStore) Commit(_ context.Context, tx Transaction, bucket Bucket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgers[tx.Owner] = append(s.ledgers[tx.Owner], tx)
	s.buckets[bucketKey{owner: bucket.Owner, yearMonth: bucket.YearMonth}] = bucket
	if tx.ID > s.lastID {
		s.lastID = tx.ID
	}
	return nil
}
