package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/vaultpass/passgen/internal/model"
)

// SavedPasswordsKey is the fixed key holding the saved password list.
const SavedPasswordsKey = "savedPasswords"

// ErrCorruptStore matches every DeserializationError.
var ErrCorruptStore = errors.New("stored value is not a valid saved password list")

// DeserializationError reports a stored value that could not be decoded.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

func (e *DeserializationError) Is(target error) bool { return target == ErrCorruptStore }

// SavedPasswordRepository persists the saved password list as one JSON
// array under SavedPasswordsKey.
type SavedPasswordRepository struct {
	store KeyValueStore
	// mu serialises Append within this process. Separate processes sharing
	// the store can still lose an append to a concurrent writer.
	mu sync.Mutex
}

// NewSavedPasswordRepository creates a repository over store.
func NewSavedPasswordRepository(store KeyValueStore) *SavedPasswordRepository {
	return &SavedPasswordRepository{store: store}
}

// ReadAll returns every saved entry in insertion order. A missing or blank
// value is an empty list.
func (r *SavedPasswordRepository) ReadAll(ctx context.Context) ([]model.SavedEntry, error) {
	raw, found, err := r.store.Get(ctx, SavedPasswordsKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return []model.SavedEntry{}, nil
	}

	var entries []model.SavedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, &DeserializationError{Key: SavedPasswordsKey, Err: err}
	}
	if entries == nil {
		entries = []model.SavedEntry{}
	}
	return entries, nil
}

// Append adds entry to the end of the list and writes the full list back.
// Nothing is written if the current list cannot be read.
func (r *SavedPasswordRepository) Append(ctx context.Context, entry model.SavedEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.ReadAll(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode saved passwords: %w", err)
	}
	return r.store.Set(ctx, SavedPasswordsKey, string(data))
}
