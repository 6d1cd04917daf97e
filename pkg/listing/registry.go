package listing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-wizard/pkg/model"
)

// Sentinel errors returned by registry lookups. Lookups fail loudly rather
// than returning a default table; a silent fallback would submit malformed
// data to the backend.
var (
	ErrUnknownListingType  = errors.New("listing: unknown listing type")
	ErrStepIndexOutOfRange = errors.New("listing: step index out of range")
	ErrUnknownEndpoint     = errors.New("listing: unknown endpoint")
)

// Endpoint is one named remote call a listing type exposes. URL templates use
// either {id} or :id placeholders, resolved by the dispatcher once an entity
// id exists. Step descriptors reference endpoint names, never raw URLs.
type Endpoint struct {
	Method      string `yaml:"method"`
	URLTemplate string `yaml:"url"`
}

// Table bundles the ordered step descriptors and the named endpoints for one
// listing type.
type Table struct {
	Steps     []model.StepDescriptor
	Endpoints map[string]Endpoint
}

// Registry maps listing types to their configuration tables. Tables are
// registered once at process start; there is no mutation API beyond Register
// because listing shapes are a compile-time property of the business.
type Registry struct {
	mu     sync.RWMutex
	tables map[model.ListingType]Table
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[model.ListingType]Table)}
}

// Register validates and stores the table for a listing type. Duplicate
// registrations and structurally broken tables are errors.
func (r *Registry) Register(listingType model.ListingType, table Table) error {
	if listingType == "" {
		return fmt.Errorf("listing: listing type is required")
	}
	if err := model.ValidateSteps(table.Steps); err != nil {
		return fmt.Errorf("listing: %s: %w", listingType, err)
	}
	if len(table.Endpoints) == 0 {
		return fmt.Errorf("listing: %s: endpoint table is empty", listingType)
	}
	for name, endpoint := range table.Endpoints {
		if endpoint.Method == "" || endpoint.URLTemplate == "" {
			return fmt.Errorf("listing: %s: endpoint %q needs a method and a url", listingType, name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[listingType]; exists {
		return fmt.Errorf("listing: %s already registered", listingType)
	}
	r.tables[listingType] = table
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring of
// the built-in tables.
func (r *Registry) MustRegister(listingType model.ListingType, table Table) {
	if err := r.Register(listingType, table); err != nil {
		panic(err)
	}
}

// Steps returns the ordered step descriptors for a listing type.
func (r *Registry) Steps(listingType model.ListingType) ([]model.StepDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[listingType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownListingType, listingType)
	}
	return table.Steps, nil
}

// Step returns the descriptor at the given index.
func (r *Registry) Step(listingType model.ListingType, index int) (model.StepDescriptor, error) {
	steps, err := r.Steps(listingType)
	if err != nil {
		return model.StepDescriptor{}, err
	}
	if index < 0 || index >= len(steps) {
		return model.StepDescriptor{}, fmt.Errorf("%w: %s step %d of %d", ErrStepIndexOutOfRange, listingType, index, len(steps))
	}
	return steps[index], nil
}

// Endpoints returns the named endpoint table for a listing type.
func (r *Registry) Endpoints(listingType model.ListingType) (map[string]Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[listingType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownListingType, listingType)
	}
	return table.Endpoints, nil
}

// Endpoint returns one named endpoint for a listing type.
func (r *Registry) Endpoint(listingType model.ListingType, name string) (Endpoint, error) {
	endpoints, err := r.Endpoints(listingType)
	if err != nil {
		return Endpoint{}, err
	}
	endpoint, ok := endpoints[name]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %s %q", ErrUnknownEndpoint, listingType, name)
	}
	return endpoint, nil
}

// Types returns the registered listing types.
func (r *Registry) Types() []model.ListingType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ListingType, 0, len(r.tables))
	for _, listingType := range model.ListingTypes() {
		if _, ok := r.tables[listingType]; ok {
			out = append(out, listingType)
		}
	}
	for listingType := range r.tables {
		if !listingType.Known() {
			out = append(out, listingType)
		}
	}
	return out
}

// Has reports whether the listing type is registered.
func (r *Registry) Has(listingType model.ListingType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tables[listingType]
	return ok
}

// Default returns a registry preloaded with the four built-in listing tables.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(model.ListingRentACar, rentACarTable())
	r.MustRegister(model.ListingHotel, hotelTable())
	r.MustRegister(model.ListingHospital, hospitalTable())
	r.MustRegister(model.ListingTransfer, transferTable())
	return r
}
