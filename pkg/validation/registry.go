package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-wizard/pkg/listing"
	"github.com/goliatone/go-wizard/pkg/model"
)

var (
	ErrUnknownListingType  = errors.New("validation: unknown listing type")
	ErrStepIndexOutOfRange = errors.New("validation: step index out of range")
)

// Registry maps (listing type, step index) to the schema validating that
// step. Like the listing registry, lookups fail loudly; a missing schema is a
// build-time defect, not something to paper over with a permissive default.
type Registry struct {
	mu      sync.RWMutex
	schemas map[model.ListingType][]Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[model.ListingType][]Schema)}
}

// Register stores the ordered per-step schemas for a listing type.
func (r *Registry) Register(listingType model.ListingType, schemas []Schema) error {
	if listingType == "" {
		return fmt.Errorf("validation: listing type is required")
	}
	if len(schemas) == 0 {
		return fmt.Errorf("validation: %s: schema list is empty", listingType)
	}
	for idx, schema := range schemas {
		if schema == nil {
			return fmt.Errorf("validation: %s: schema %d is nil", listingType, idx)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[listingType]; exists {
		return fmt.Errorf("validation: %s already registered", listingType)
	}
	r.schemas[listingType] = schemas
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(listingType model.ListingType, schemas []Schema) {
	if err := r.Register(listingType, schemas); err != nil {
		panic(err)
	}
}

// Schema returns the schema for one step of a listing type.
func (r *Registry) Schema(listingType model.ListingType, stepIndex int) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemas, ok := r.schemas[listingType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownListingType, listingType)
	}
	if stepIndex < 0 || stepIndex >= len(schemas) {
		return nil, fmt.Errorf("%w: %s step %d of %d", ErrStepIndexOutOfRange, listingType, stepIndex, len(schemas))
	}
	return schemas[stepIndex], nil
}

// Steps returns how many step schemas a listing type declares.
func (r *Registry) Steps(listingType model.ListingType) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schemas, ok := r.schemas[listingType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownListingType, listingType)
	}
	return len(schemas), nil
}

// Default builds the registry covering every step of the built-in listing
// tables. Base rules are derived from the step descriptors themselves, so a
// field marked required in the configuration always validates as required
// here; the per-type builders layer stricter constraints on top.
func Default() *Registry {
	steps := listing.Default()
	r := NewRegistry()
	r.MustRegister(model.ListingRentACar, rentACarSchemas(mustSteps(steps, model.ListingRentACar)))
	r.MustRegister(model.ListingHotel, hotelSchemas(mustSteps(steps, model.ListingHotel)))
	r.MustRegister(model.ListingHospital, hospitalSchemas(mustSteps(steps, model.ListingHospital)))
	r.MustRegister(model.ListingTransfer, transferSchemas(mustSteps(steps, model.ListingTransfer)))
	return r
}

// ForRegistry mirrors Default for a caller-supplied listing registry, deriving
// descriptor-driven base rules for every registered type. Externally loaded
// tables get required-field coverage without hand-written schemas.
func ForRegistry(steps *listing.Registry) (*Registry, error) {
	r := NewRegistry()
	for _, listingType := range steps.Types() {
		descriptors, err := steps.Steps(listingType)
		if err != nil {
			return nil, err
		}
		schemas := make([]Schema, 0, len(descriptors))
		for _, step := range descriptors {
			schemas = append(schemas, FromStep(step))
		}
		if err := r.Register(listingType, schemas); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func mustSteps(registry *listing.Registry, listingType model.ListingType) []model.StepDescriptor {
	steps, err := registry.Steps(listingType)
	if err != nil {
		panic(err)
	}
	return steps
}
