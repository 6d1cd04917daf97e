package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// SubStepState is the persisted navigation progress inside steps, kept apart
// from the Snapshot because it is UI bookkeeping, not submittable data.
type SubStepState struct {
	Active       map[string]int `json:"activeIndexByStepId"`
	MaxCompleted map[string]int `json:"maxCompletedIndexByStepId"`
}

// SubStepTracker owns sub-step navigation for one wizard session. It is an
// instance scoped to the session, not process-wide state, so two tabs editing
// different listings cannot bleed progress into each other.
type SubStepTracker struct {
	mu      sync.Mutex
	state   SubStepState
	storage Storage
	key     string
	logger  *zap.Logger
}

// NewSubStepTracker loads any persisted progress under key. A missing or
// corrupt record starts from zero, same fail-open policy as drafts.
func NewSubStepTracker(ctx context.Context, storage Storage, key string, logger *zap.Logger) *SubStepTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &SubStepTracker{
		state: SubStepState{
			Active:       make(map[string]int),
			MaxCompleted: make(map[string]int),
		},
		storage: storage,
		key:     key,
		logger:  logger,
	}
	if storage == nil {
		return t
	}

	raw, err := storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("sub-step state read failed, starting fresh", zap.String("key", key), zap.Error(err))
		}
		return t
	}
	var state SubStepState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logger.Warn("sub-step state is corrupt, starting fresh", zap.String("key", key), zap.Error(err))
		return t
	}
	if state.Active == nil {
		state.Active = make(map[string]int)
	}
	if state.MaxCompleted == nil {
		state.MaxCompleted = make(map[string]int)
	}
	t.state = state
	return t
}

// Navigable reports whether the sub-step at index is reachable for the step:
// index zero always is, otherwise only indices at or below the highest
// completed one.
func (t *SubStepTracker) Navigable(stepID string, index int) bool {
	if index == 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return index >= 0 && index <= t.state.MaxCompleted[stepID]
}

// Activate moves the active sub-step for a step. Unreachable indices are
// rejected so navigation cannot jump past incomplete sub-steps.
func (t *SubStepTracker) Activate(ctx context.Context, stepID string, index int) error {
	if !t.Navigable(stepID, index) {
		return fmt.Errorf("draft: sub-step %d of %q is not reachable yet", index, stepID)
	}
	t.mu.Lock()
	t.state.Active[stepID] = index
	t.mu.Unlock()
	t.persist(ctx)
	return nil
}

// Complete records the sub-step at index as finished, unlocking the next one.
func (t *SubStepTracker) Complete(ctx context.Context, stepID string, index int) {
	t.mu.Lock()
	if index+1 > t.state.MaxCompleted[stepID] {
		t.state.MaxCompleted[stepID] = index + 1
	}
	t.mu.Unlock()
	t.persist(ctx)
}

// Active returns the current sub-step index for a step.
func (t *SubStepTracker) Active(stepID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Active[stepID]
}

// Clear wipes persisted navigation progress without touching the data draft.
func (t *SubStepTracker) Clear(ctx context.Context) {
	t.mu.Lock()
	t.state = SubStepState{
		Active:       make(map[string]int),
		MaxCompleted: make(map[string]int),
	}
	t.mu.Unlock()

	if t.storage == nil {
		return
	}
	if err := t.storage.Del(ctx, t.key); err != nil && !errors.Is(err, ErrNotFound) {
		t.logger.Warn("sub-step state clear failed", zap.String("key", t.key), zap.Error(err))
	}
}

func (t *SubStepTracker) persist(ctx context.Context) {
	if t.storage == nil {
		return
	}
	t.mu.Lock()
	encoded, err := json.Marshal(t.state)
	t.mu.Unlock()
	if err != nil {
		t.logger.Warn("sub-step state encode failed", zap.String("key", t.key), zap.Error(err))
		return
	}
	if err := t.storage.Set(ctx, t.key, string(encoded)); err != nil {
		t.logger.Warn("sub-step state write failed", zap.String("key", t.key), zap.Error(err))
	}
}
