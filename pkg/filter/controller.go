package filter

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/pkg/model"
)

// PreviewFunc runs the transient count query for the current (unapplied)
// filter values. Implementations must respect ctx cancellation.
type PreviewFunc func(ctx context.Context, values model.FormValues) (int, error)

// ControllerOption configures the filter controller.
type ControllerOption func(*Controller)

// WithPreview wires the preview count query and the callback receiving its
// result.
func WithPreview(preview PreviewFunc, onCount func(int)) ControllerOption {
	return func(c *Controller) {
		c.preview = preview
		c.onCount = onCount
	}
}

// WithControllerLogger attaches a logger for preview failures.
func WithControllerLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller drives one filter editing session: it tracks dirty values
// against the registry defaults, recomputes the active-filter count on every
// mutation, and runs a cancellable preview query while the modal is open.
type Controller struct {
	mu      sync.Mutex
	config  Config
	values  model.FormValues
	preview PreviewFunc
	onCount func(int)
	logger  *zap.Logger

	open   bool
	cancel context.CancelFunc
	gen    uint64
}

// NewController starts a session seeded from the config defaults.
func NewController(config Config, options ...ControllerOption) *Controller {
	c := &Controller{
		config: config,
		values: BuildDefaultValues(config),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Open marks the filter modal visible; preview queries only run while open.
func (c *Controller) Open() {
	c.mu.Lock()
	c.open = true
	dirty := c.dirtyLocked()
	c.mu.Unlock()
	if dirty {
		c.schedulePreview()
	}
}

// Close hides the modal and cancels any in-flight preview.
func (c *Controller) Close() {
	c.mu.Lock()
	c.open = false
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Set records one filter value. The active count changes immediately (it
// drives a visible badge, so it cannot wait for apply) and a fresh preview
// query is scheduled while the modal is open. Reverting the last changed
// field back to its default invalidates any in-flight preview the same way
// Clear does, so a late response cannot paint a count for filters the user
// no longer has.
func (c *Controller) Set(name string, value any) {
	c.mu.Lock()
	c.values[name] = value
	open := c.open
	dirty := c.dirtyLocked()
	var cancel context.CancelFunc
	if !dirty {
		cancel = c.cancel
		c.cancel = nil
		c.gen++
	}
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if open && dirty {
		c.schedulePreview()
	}
}

// Values returns a snapshot of the current filter values.
func (c *Controller) Values() model.FormValues {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// ActiveCount is the number of fields whose value differs from the registry
// default and is neither nil nor the empty string.
func (c *Controller) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, field := range c.config.Fields() {
		value := c.values[field.Name]
		if model.IsEmptyValue(value) {
			continue
		}
		if !reflect.DeepEqual(value, c.config.Defaults[field.Name]) {
			count++
		}
	}
	return count
}

// Dirty reports whether any field differs from its default.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirtyLocked()
}

func (c *Controller) dirtyLocked() bool {
	for _, field := range c.config.Fields() {
		if !reflect.DeepEqual(c.values[field.Name], c.config.Defaults[field.Name]) {
			return true
		}
	}
	return false
}

// Clear cancels any in-flight preview, then resets the values to defaults.
// The order matters: a preview resolving after the reset could otherwise
// paint a count for filters the user no longer sees.
func (c *Controller) Clear() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.gen++
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	c.mu.Lock()
	c.values = BuildDefaultValues(c.config)
	c.mu.Unlock()
}

// Apply returns the values to run the real query with and closes the modal.
func (c *Controller) Apply() model.FormValues {
	values := c.Values()
	c.Close()
	return values
}

func (c *Controller) schedulePreview() {
	if c.preview == nil {
		return
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	generation := c.gen
	values := c.values.Clone()
	c.mu.Unlock()

	go func() {
		count, err := c.preview(ctx, values)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.logger.Warn("filter preview query failed", zap.Error(err))
			}
			return
		}

		c.mu.Lock()
		stale := c.gen != generation || ctx.Err() != nil || !c.open
		callback := c.onCount
		c.mu.Unlock()

		if stale || callback == nil {
			return
		}
		callback(count)
	}()
}
