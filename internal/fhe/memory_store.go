package fhe

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

type grantKey struct {
	handle  Handle
	account common.Address
}

type MemoryStore struct {
	mu          sync.RWMutex
	ciphertexts map[Handle]Record
	grants      map[grantKey]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ciphertexts: make(map[Handle]Record),
		grants:      make(map[grantKey]struct{}),
	}
}

func (s *MemoryStore) PutCiphertext(_ context.Context, handle Handle, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct := make([]byte, len(record.Ciphertext))
	copy(ct, record.Ciphertext)
	s.ciphertexts[handle] = Record{Ciphertext: ct, Public: record.Public}
	return nil
}

func (s *MemoryStore) Ciphertext(_ context.Context, handle Handle) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.ciphertexts[handle]
	if !ok {
		return Record{}, ErrUnknownHandle
	}
	return record, nil
}

func (s *MemoryStore) Allow(_ context.Context, handle Handle, account common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grants[grantKey{handle: handle, account: account}] = struct{}{}
	return nil
}

func (s *MemoryStore) IsAllowed(_ context.Context, handle Handle, account common.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.grants[grantKey{handle: handle, account: account}]
	return ok, nil
}
