// Package filter is the read-side sibling of the listing wizard: a
// declarative set of filterable fields per company type, default values, an
// active-filter count, and a cancellable preview count query.
package filter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-wizard/pkg/model"
)

// ErrUnknownCompanyType mirrors the listing registry's loud-lookup policy.
var ErrUnknownCompanyType = errors.New("filter: unknown company type")

// Section groups related filter fields under a heading.
type Section struct {
	Title  string
	Fields []model.FieldDescriptor
}

// Config is the filterable surface for one company type.
type Config struct {
	Sections []Section
	// Defaults hold the neutral value per field; the active count is the
	// number of fields that differ from these.
	Defaults model.FormValues
}

// Fields flattens the sections into one descriptor list.
func (c Config) Fields() []model.FieldDescriptor {
	var out []model.FieldDescriptor
	for _, section := range c.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

// Registry maps company types to their filter configurations.
type Registry struct {
	mu      sync.RWMutex
	configs map[model.ListingType]Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[model.ListingType]Config)}
}

// Register stores the configuration for a company type. Defaults are filled
// in for any field the config omits.
func (r *Registry) Register(companyType model.ListingType, config Config) error {
	if companyType == "" {
		return fmt.Errorf("filter: company type is required")
	}
	if len(config.Sections) == 0 {
		return fmt.Errorf("filter: %s: no sections", companyType)
	}
	if config.Defaults == nil {
		config.Defaults = make(model.FormValues)
	}
	for _, field := range config.Fields() {
		if field.Name == "" {
			return fmt.Errorf("filter: %s: field without a name", companyType)
		}
		if _, ok := config.Defaults[field.Name]; !ok {
			config.Defaults[field.Name] = nil
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.configs[companyType]; exists {
		return fmt.Errorf("filter: %s already registered", companyType)
	}
	r.configs[companyType] = config
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(companyType model.ListingType, config Config) {
	if err := r.Register(companyType, config); err != nil {
		panic(err)
	}
}

// Config returns the filter configuration for a company type.
func (r *Registry) Config(companyType model.ListingType) (Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, ok := r.configs[companyType]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCompanyType, companyType)
	}
	return config, nil
}

// BuildDefaultValues returns a fresh value map seeded from the config's
// defaults.
func BuildDefaultValues(config Config) model.FormValues {
	out := make(model.FormValues, len(config.Defaults))
	for name, value := range config.Defaults {
		out[name] = value
	}
	return out
}
