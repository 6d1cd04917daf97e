// Package wizard holds the finite-state controller that sequences step
// validation, remote submission, and entity-id threading for a listing
// session. The controller is the only writer of its State; form values are
// written by field renderers and read here.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/pkg/dispatch"
	"github.com/goliatone/go-wizard/pkg/draft"
	"github.com/goliatone/go-wizard/pkg/listing"
	"github.com/goliatone/go-wizard/pkg/model"
	"github.com/goliatone/go-wizard/pkg/validation"
)

// Dispatcher submits one step's accumulated values to the backend and
// reports any server-assigned entity id.
type Dispatcher interface {
	Execute(ctx context.Context, listingType model.ListingType, action string, values model.FormValues, entityID, actorID string) (dispatch.Outcome, error)
}

// SchemaSource resolves the validation schema for one step.
type SchemaSource interface {
	Schema(listingType model.ListingType, stepIndex int) (validation.Schema, error)
}

// Controller drives one wizard session for a fixed listing type.
type Controller struct {
	listingType model.ListingType
	sessionID   string
	actorID     string

	registry   *listing.Registry
	schemas    SchemaSource
	dispatcher Dispatcher
	storage    draft.Storage
	logger     *zap.Logger
	onComplete func(State)

	steps    []model.StepDescriptor
	drafts   *draft.Store
	draftKey string
	substeps *draft.SubStepTracker

	mu     sync.Mutex
	state  State
	values model.FormValues
}

// New builds a controller for the listing type, resolving missing
// dependencies with the built-in registries. Unknown listing types fail
// immediately; there is no useful session to run without a step table.
func New(listingType model.ListingType, options ...Option) (*Controller, error) {
	c := &Controller{
		listingType: listingType,
		sessionID:   uuid.NewString(),
		logger:      zap.NewNop(),
		state:       initialState(),
		values:      make(model.FormValues),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.registry == nil {
		c.registry = listing.Default()
	}
	if c.schemas == nil {
		c.schemas = validation.Default()
	}

	steps, err := c.registry.Steps(listingType)
	if err != nil {
		return nil, err
	}
	c.steps = steps

	c.draftKey = draft.Key(listingType, c.actorID)
	c.drafts = draft.NewStore(c.storage, draft.WithLogger(c.logger))
	c.substeps = draft.NewSubStepTracker(context.Background(), c.storage, draft.SubStepKey(listingType, c.actorID), c.logger)

	return c, nil
}

// SessionID identifies this wizard session; sub-step progress and logs are
// scoped by it.
func (c *Controller) SessionID() string { return c.sessionID }

// ListingType reports the session's fixed listing type.
func (c *Controller) ListingType() model.ListingType { return c.listingType }

// Steps returns the ordered step descriptors for the session.
func (c *Controller) Steps() []model.StepDescriptor { return c.steps }

// Step returns the descriptor for the current step.
func (c *Controller) Step() model.StepDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.state.CurrentStep]
}

// SubSteps exposes the session's sub-step tracker.
func (c *Controller) SubSteps() *draft.SubStepTracker { return c.substeps }

// State returns a snapshot of the wizard state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// SetValue records a field value. Renderers are the writers; the controller
// never mutates values except through Reset and ClearValue.
func (c *Controller) SetValue(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
}

// ClearValue drops a field value. The dependent options resolver uses this
// when a parent selection changes.
func (c *Controller) ClearValue(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, name)
}

// Value returns one field's current value.
func (c *Controller) Value(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.values[name]
	return value, ok
}

// Values returns a snapshot of the accumulated form values.
func (c *Controller) Values() model.FormValues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Advance validates the current step and, if it declares an action, submits
// it. Validation and remote failures land in the returned State rather than
// the error; the error is reserved for configuration defects (missing
// schema), which have no runtime recovery.
//
// A second Advance while a submission is in flight is a no-op, so a
// double-click cannot produce a duplicate create.
func (c *Controller) Advance(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.state.Status == StatusSubmitting || c.state.Status == StatusSuccess {
		state := c.state.clone()
		c.mu.Unlock()
		return state, nil
	}
	stepIndex := c.state.CurrentStep
	step := c.steps[stepIndex]
	values := c.values.Clone()
	c.mu.Unlock()

	schema, err := c.schemas.Schema(c.listingType, stepIndex)
	if err != nil {
		return c.State(), err
	}

	if result := schema.Validate(values); !result.Valid {
		c.mu.Lock()
		c.state.Status = StatusError
		c.state.Errors = result.Messages()
		c.state.FieldErrors = result.FieldMessages()
		state := c.state.clone()
		c.mu.Unlock()
		return state, nil
	}

	c.mu.Lock()
	if c.state.Status == StatusSubmitting {
		state := c.state.clone()
		c.mu.Unlock()
		return state, nil
	}
	c.state.Status = StatusSubmitting
	c.state.Errors = nil
	c.state.FieldErrors = nil
	entityID := c.state.EntityID
	c.mu.Unlock()

	var outcome dispatch.Outcome
	if step.SubmitAction != "" {
		if c.dispatcher == nil {
			return c.fail(step, fmt.Errorf("wizard: step %q declares action %q but no dispatcher is configured", step.ID, step.SubmitAction)), nil
		}
		outcome, err = c.dispatcher.Execute(ctx, c.listingType, step.SubmitAction, values, entityID, c.actorID)
		if err != nil {
			return c.fail(step, err), nil
		}
	}

	c.mu.Lock()
	// The first id the backend hands out is the listing's identity; later
	// steps reuse it and never overwrite it.
	if c.state.EntityID == "" && outcome.EntityID != "" {
		c.state.EntityID = outcome.EntityID
	}

	if stepIndex == len(c.steps)-1 {
		c.state.Status = StatusSuccess
		state := c.state.clone()
		callback := c.onComplete
		c.mu.Unlock()

		c.drafts.Clear(ctx, c.draftKey)
		c.substeps.Clear(ctx)
		c.logger.Info("wizard completed",
			zap.String("session", c.sessionID),
			zap.String("listingType", string(c.listingType)),
			zap.String("entityId", state.EntityID))
		if callback != nil {
			callback(state)
		}
		return state, nil
	}

	c.state.CurrentStep++
	c.state.Status = StatusIdle
	snapshot := draft.Snapshot{
		Values:      c.values.Clone(),
		CurrentStep: c.state.CurrentStep,
		EntityID:    c.state.EntityID,
	}
	state := c.state.clone()
	c.mu.Unlock()

	// A failed draft write must not block the transition; it only costs
	// resume-after-reload.
	_ = c.drafts.Write(ctx, c.draftKey, snapshot)
	c.logger.Debug("wizard advanced",
		zap.String("session", c.sessionID),
		zap.Int("step", state.CurrentStep))
	return state, nil
}

func (c *Controller) fail(step model.StepDescriptor, err error) State {
	message := step.Toast.Error
	if message == "" {
		message = "The step could not be submitted. Please try again."
	}
	if errors.Is(err, dispatch.ErrEntityRequired) {
		message = "This step needs the listing to be created first."
	}

	c.logger.Warn("step submission failed",
		zap.String("session", c.sessionID),
		zap.String("step", step.ID),
		zap.Error(err))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Status = StatusError
	c.state.Errors = []string{message}
	return c.state.clone()
}

// Retreat steps back one screen. Prior answers stay visible and editable;
// the entity id is untouched.
func (c *Controller) Retreat() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.CurrentStep > 0 && c.state.Status != StatusSubmitting {
		c.state.CurrentStep--
		c.state.Status = StatusIdle
		c.state.Errors = nil
		c.state.FieldErrors = nil
	}
	return c.state.clone()
}

// JumpTo moves directly to an already-visited step. Forward jumps are
// rejected regardless of status; users cannot skip unsubmitted steps.
func (c *Controller) JumpTo(index int) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index >= 0 && index <= c.state.CurrentStep && c.state.Status != StatusSubmitting {
		c.state.CurrentStep = index
		c.state.Status = StatusIdle
		c.state.Errors = nil
		c.state.FieldErrors = nil
	}
	return c.state.clone()
}

// Reset clears the form values and returns the state to its initial value.
// It does not delete the persisted draft; call DiscardDraft for that.
func (c *Controller) Reset() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = make(model.FormValues)
	c.state = initialState()
	return c.state.clone()
}

// Resume loads the persisted draft, if any, and restores values, step index,
// and entity id. It reports whether a draft was found.
func (c *Controller) Resume(ctx context.Context) bool {
	snapshot, ok := c.drafts.Read(ctx, c.draftKey)
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = snapshot.Values
	if c.values == nil {
		c.values = make(model.FormValues)
	}
	step := snapshot.CurrentStep
	if step >= len(c.steps) {
		step = len(c.steps) - 1
	}
	c.state = State{
		CurrentStep: step,
		Status:      StatusIdle,
		EntityID:    snapshot.EntityID,
	}
	c.logger.Info("wizard resumed from draft",
		zap.String("session", c.sessionID),
		zap.Int("step", step))
	return true
}

// DiscardDraft removes the persisted draft and sub-step progress.
func (c *Controller) DiscardDraft(ctx context.Context) {
	c.drafts.Clear(ctx, c.draftKey)
	c.substeps.Clear(ctx)
}
