// Package dispatch translates a step's declared action into a remote call:
// it narrows the accumulated form values to the payload the endpoint expects,
// resolves the named endpoint's URL template, and threads the server-assigned
// entity id back to the wizard.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/pkg/httpcap"
	"github.com/goliatone/go-wizard/pkg/listing"
	"github.com/goliatone/go-wizard/pkg/model"
)

// ErrEntityRequired signals a non-create action attempted before the listing
// exists. That ordering is a precondition, not a call-order accident.
var ErrEntityRequired = errors.New("dispatch: action requires an existing listing")

// PayloadFunc narrows the accumulated form values down to exactly the fields
// the remote endpoint expects.
type PayloadFunc func(values model.FormValues, actorID string) any

// Pick returns a PayloadFunc selecting only the named fields.
func Pick(names ...string) PayloadFunc {
	return func(values model.FormValues, _ string) any {
		return values.Pick(names...)
	}
}

// PickWithActor is Pick plus the acting user's id under actorField.
func PickWithActor(actorField string, names ...string) PayloadFunc {
	return func(values model.FormValues, actorID string) any {
		out := values.Pick(names...)
		if actorID != "" {
			out[actorField] = actorID
		}
		return out
	}
}

// Binding ties an action to a named endpoint and a payload shaper. Adding an
// action is a registration, not a new switch arm.
type Binding struct {
	Endpoint string
	Payload  PayloadFunc
}

// Outcome reports what a step submission produced.
type Outcome struct {
	// EntityID is non-empty when the backend assigned (or echoed) an
	// identifier for the listing.
	EntityID string
	// Skipped is true when the action was unknown and the call was a no-op.
	Skipped bool
}

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithLogger attaches a logger; unknown actions are logged as warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dispatcher holds the per-listing-type action bindings and issues the
// remote calls through the HTTP capability.
type Dispatcher struct {
	mu       sync.RWMutex
	registry *listing.Registry
	doer     httpcap.Doer
	logger   *zap.Logger
	bindings map[model.ListingType]map[string]Binding
}

// New builds an empty dispatcher over a listing registry and an HTTP
// capability. Use Default for the built-in bindings.
func New(registry *listing.Registry, doer httpcap.Doer, options ...Option) *Dispatcher {
	if registry == nil {
		registry = listing.Default()
	}
	d := &Dispatcher{
		registry: registry,
		doer:     doer,
		logger:   zap.NewNop(),
		bindings: make(map[model.ListingType]map[string]Binding),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Register binds an action for a listing type. The named endpoint must exist
// in the listing registry; a dangling reference is a build-time defect and
// fails here.
func (d *Dispatcher) Register(listingType model.ListingType, action string, binding Binding) error {
	if action == "" {
		return fmt.Errorf("dispatch: action name is required")
	}
	if binding.Endpoint == "" {
		return fmt.Errorf("dispatch: %s %q: endpoint name is required", listingType, action)
	}
	if _, err := d.registry.Endpoint(listingType, binding.Endpoint); err != nil {
		return fmt.Errorf("dispatch: %s %q: %w", listingType, action, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	actions, ok := d.bindings[listingType]
	if !ok {
		actions = make(map[string]Binding)
		d.bindings[listingType] = actions
	}
	if _, exists := actions[action]; exists {
		return fmt.Errorf("dispatch: %s %q already registered", listingType, action)
	}
	actions[action] = binding
	return nil
}

// MustRegister panics on registration failure.
func (d *Dispatcher) MustRegister(listingType model.ListingType, action string, binding Binding) {
	if err := d.Register(listingType, action, binding); err != nil {
		panic(err)
	}
}

// Execute runs one step action. Unknown actions warn and no-op so a
// misconfigured step does not kill the session; every other failure is
// returned for the wizard controller to surface.
func (d *Dispatcher) Execute(ctx context.Context, listingType model.ListingType, action string, values model.FormValues, entityID, actorID string) (Outcome, error) {
	if action == "" {
		return Outcome{Skipped: true}, nil
	}

	d.mu.RLock()
	actions, known := d.bindings[listingType]
	var binding, update Binding
	var bound, hasUpdate bool
	if known {
		binding, bound = actions[action]
		update, hasUpdate = actions[model.ActionUpdate]
	}
	d.mu.RUnlock()

	if !known {
		return Outcome{}, fmt.Errorf("%w: %q", listing.ErrUnknownListingType, listingType)
	}
	if !bound {
		d.logger.Warn("unknown step action, skipping submission",
			zap.String("listingType", string(listingType)),
			zap.String("action", action))
		return Outcome{Skipped: true}, nil
	}

	if action != model.ActionCreate && entityID == "" {
		return Outcome{}, fmt.Errorf("%w: cannot run %q before the listing exists", ErrEntityRequired, action)
	}

	// A create retried after the id was already captured must update, not
	// duplicate. Swap to the update binding when one is registered.
	if action == model.ActionCreate && entityID != "" && hasUpdate {
		binding = update
	}

	endpoint, err := d.registry.Endpoint(listingType, binding.Endpoint)
	if err != nil {
		return Outcome{}, err
	}

	var payload any = values
	if binding.Payload != nil {
		payload = binding.Payload(values, actorID)
	}

	url := httpcap.ResolveURL(endpoint.URLTemplate, entityID)
	body, err := d.doer.Do(ctx, endpoint.Method, url, payload)
	if err != nil {
		return Outcome{}, fmt.Errorf("dispatch: %s %q: %w", listingType, action, err)
	}

	return Outcome{EntityID: extractEntityID(body)}, nil
}

// extractEntityID pulls a server-assigned identifier out of the response
// body. Both numeric and string ids are accepted; anything else reports "".
func extractEntityID(body json.RawMessage) string {
	if len(body) == 0 {
		return ""
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var envelope map[string]any
	if err := decoder.Decode(&envelope); err != nil {
		return ""
	}
	switch id := envelope["id"].(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	}
	return ""
}
