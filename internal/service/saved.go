package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vaultpass/passgen/internal/model"
)

// ErrPasswordRequired is returned when saving without a password.
var ErrPasswordRequired = errors.New("password is required")

// SavedPasswordStore is the persistence capability SavedService needs.
type SavedPasswordStore interface {
	Append(ctx context.Context, entry model.SavedEntry) error
	ReadAll(ctx context.Context) ([]model.SavedEntry, error)
}

// SavedService handles saving and listing annotated passwords.
type SavedService struct {
	store SavedPasswordStore
	now   func() time.Time
}

// NewSavedService creates a new SavedService.
func NewSavedService(store SavedPasswordStore) *SavedService {
	return &SavedService{store: store, now: time.Now}
}

// Save stamps the password and trimmed note with the current time and
// appends the entry. The stored entry is returned.
func (s *SavedService) Save(ctx context.Context, req model.SaveRequest) (model.SavedEntry, error) {
	if req.Password == "" {
		return model.SavedEntry{}, ErrPasswordRequired
	}

	entry := model.SavedEntry{
		Password:  req.Password,
		Note:      strings.TrimSpace(req.Note),
		Timestamp: model.FormatTimestamp(s.now()),
	}

	if err := s.store.Append(ctx, entry); err != nil {
		return model.SavedEntry{}, err
	}

	return entry, nil
}

// List returns every saved entry in the order it was saved.
func (s *SavedService) List(ctx context.Context) ([]model.SavedEntry, error) {
	return s.store.ReadAll(ctx)
}
