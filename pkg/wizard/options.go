package wizard

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/pkg/draft"
	"github.com/goliatone/go-wizard/pkg/listing"
)

// Option customises the controller configuration.
type Option func(*Controller)

// WithRegistry injects the listing configuration registry. Defaults to the
// built-in tables.
func WithRegistry(registry *listing.Registry) Option {
	return func(c *Controller) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithSchemas injects the validation schema source. Defaults to the built-in
// schema registry.
func WithSchemas(schemas SchemaSource) Option {
	return func(c *Controller) {
		if schemas != nil {
			c.schemas = schemas
		}
	}
}

// WithDispatcher injects the step action dispatcher.
func WithDispatcher(dispatcher Dispatcher) Option {
	return func(c *Controller) {
		c.dispatcher = dispatcher
	}
}

// WithStorage enables draft and sub-step persistence on the given backend.
// Without it the wizard runs, but nothing survives a reload.
func WithStorage(storage draft.Storage) Option {
	return func(c *Controller) {
		c.storage = storage
	}
}

// WithActor scopes draft keys and submission payloads to the acting user.
func WithActor(actorID string) Option {
	return func(c *Controller) {
		c.actorID = actorID
	}
}

// WithLogger attaches a logger for transition and persistence diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnComplete registers the callback invoked once after the final step
// submits successfully.
func WithOnComplete(fn func(State)) Option {
	return func(c *Controller) {
		c.onComplete = fn
	}
}
