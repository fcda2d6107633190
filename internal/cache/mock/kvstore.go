package mock

import (
	"sync"
)

// KVStore mocks cache.KVStore.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	deletes int
	m       sync.Mutex

	// Err, when set, is returned by every call.
	Err error
}

// NewKVStore creates new KVStore instance with given data
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// Get returns data saved for given key.
func (s *KVStore) Get(key string) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.data == nil {
		return nil, nil
	}

	return s.data[key], nil
}

// Put stores given data under given key.
func (s *KVStore) Put(key string, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.Err != nil {
		return s.Err
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[key] = data

	return nil
}

// Delete removes given key.
func (s *KVStore) Delete(key string) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.deletes++
	if s.Err != nil {
		return s.Err
	}
	delete(s.data, key)

	return nil
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}

// Deletes returns delete call count.
func (s *KVStore) Deletes() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.deletes
}
