// Package draft persists in-progress wizard sessions so a reload resumes
// where the user left off. Storage is a plain key/value capability; anything
// that goes wrong reading a draft fails open to a fresh session.
package draft

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/pkg/model"
)

// ErrNotFound is returned by Storage implementations for absent keys.
var ErrNotFound = errors.New("draft: not found")

// Storage is the persisted key/value capability the store writes through.
// The store treats any error as equivalent to "key absent".
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Snapshot is the persisted slice of a wizard session: accumulated values,
// current step index, and any server-assigned entity id.
type Snapshot struct {
	Values      model.FormValues `json:"values"`
	CurrentStep int              `json:"currentStep"`
	EntityID    string           `json:"entityId,omitempty"`
}

// Option configures the store.
type Option func(*Store)

// WithLogger attaches a logger; failed reads and writes are logged, never
// propagated as user-facing errors.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store reads and writes snapshots through a Storage backend.
type Store struct {
	storage Storage
	logger  *zap.Logger
}

// NewStore wraps a storage backend. A nil backend yields a store that never
// finds drafts and drops writes, which keeps the wizard usable without
// persistence wired.
func NewStore(storage Storage, options ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Read loads the snapshot under key. Missing, corrupt, or unreadable drafts
// all report ok=false; the wizard starts fresh rather than surfacing a parse
// error to the user.
func (s *Store) Read(ctx context.Context, key string) (Snapshot, bool) {
	if s.storage == nil {
		return Snapshot{}, false
	}
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("draft read failed, starting fresh", zap.String("key", key), zap.Error(err))
		}
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.logger.Warn("draft is corrupt, starting fresh", zap.String("key", key), zap.Error(err))
		return Snapshot{}, false
	}
	if snap.CurrentStep < 0 {
		snap.CurrentStep = 0
	}
	return snap, true
}

// Write persists the snapshot under key. The error is returned for callers
// that care, but a failed write must never block a step transition.
func (s *Store) Write(ctx context.Context, key string, snap Snapshot) error {
	if s.storage == nil {
		return nil
	}
	encoded, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("draft encode failed", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := s.storage.Set(ctx, key, string(encoded)); err != nil {
		s.logger.Warn("draft write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Clear removes the snapshot under key.
func (s *Store) Clear(ctx context.Context, key string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Del(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Warn("draft clear failed", zap.String("key", key), zap.Error(err))
	}
}
