package tripsplit

import (
	"fmt"
	"strings"
)

// Keys used in the Store. The trip document and the transcription API
// credential are the only persisted values.
const (
	TripKey   = "tripdata"
	APIKeyKey = "openai_api_key"
)

// Store is the opaque key-value persistence collaborator. Values are read
// and written whole; there is no partial update. This abstraction allows an
// in-memory store in tests without a real persistence layer.
type Store interface {
	// Get returns the stored value, reporting absence without error.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores the value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// LoadTrip reads the trip document from the store. ok is false when no trip
// has been set up yet.
func LoadTrip(s Store) (t *Trip, ok bool, err error) {
	data, ok, err := s.Get(TripKey)
	if err != nil || !ok {
		return nil, ok, err
	}
	t, err = DecodeTrip(data)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// SaveTrip writes the whole trip document back to the store.
func SaveTrip(s Store, t *Trip) error {
	data, err := EncodeTrip(t)
	if err != nil {
		return err
	}
	return s.Set(TripKey, data)
}

// ClearTrip removes the trip document. The destructive operation requires
// the confirmation phrase (see Authorize).
func ClearTrip(s Store, phrase string) error {
	if err := Authorize(phrase); err != nil {
		return err
	}
	return s.Delete(TripKey)
}

// LoadAPIKey reads the stored transcription API credential.
func LoadAPIKey(s Store) (key string, ok bool, err error) {
	data, ok, err := s.Get(APIKeyKey)
	if err != nil || !ok {
		return "", ok, err
	}
	key = strings.TrimSpace(string(data))
	return key, key != "", nil
}

// SaveAPIKey stores the transcription API credential.
func SaveAPIKey(s Store, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key is empty: %w", ErrInvalidInput)
	}
	return s.Set(APIKeyKey, []byte(key))
}

// ClearAPIKey removes the stored credential.
func ClearAPIKey(s Store) error { return s.Delete(APIKeyKey) }

// MemStore is an in-memory Store for tests.
type MemStore struct {
	m map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	s.m[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.m, key)
	return nil
}
