// Package resolver keeps dependent select fields (brand→model, country→city)
// consistent: it fetches child options scoped to the selected parent, clears
// stale child selections, and guards against out-of-order fetch results.
package resolver

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/pkg/model"
)

// Source fetches the option list for a dynamic options key, scoped to a
// parent id. An empty parent id means the unscoped collection (countries,
// brands).
type Source interface {
	Options(ctx context.Context, key, parentID string) ([]model.Option, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, key, parentID string) ([]model.Option, error)

// Options implements Source.
func (f SourceFunc) Options(ctx context.Context, key, parentID string) ([]model.Option, error) {
	return f(ctx, key, parentID)
}

// Option configures the resolver.
type Option func(*Resolver)

// WithLogger attaches a logger for fetch failures and discarded responses.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClearFunc registers the callback invoked when a dependent field's value
// must be dropped because its parent changed. Clearing lives here, not in the
// renderer, so it happens consistently whichever renderer is active.
func WithClearFunc(fn func(field string)) Option {
	return func(r *Resolver) {
		r.onClear = fn
	}
}

type dependency struct {
	child     model.FieldDescriptor
	parentKey string
}

// Resolver owns the selected parent ids and the fetched child collections.
// Parent selections live here, apart from FormValues, because they drive
// option loading rather than submission.
type Resolver struct {
	mu      sync.Mutex
	source  Source
	logger  *zap.Logger
	onClear func(field string)

	deps    map[string][]dependency // parent field -> dependent children
	parents map[string]string       // parent field -> selected id
	options map[string][]model.Option
	gen     map[string]uint64
}

// New builds a resolver over an options source.
func New(source Source, options ...Option) *Resolver {
	r := &Resolver{
		source:  source,
		logger:  zap.NewNop(),
		deps:    make(map[string][]dependency),
		parents: make(map[string]string),
		options: make(map[string][]model.Option),
		gen:     make(map[string]uint64),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Bind registers the dependency edges a step declares. Fields with DependsOn
// become children of the named parent field.
func (r *Resolver) Bind(step model.StepDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, field := range step.Fields {
		if field.DependsOn == "" {
			continue
		}
		r.deps[field.DependsOn] = append(r.deps[field.DependsOn], dependency{
			child:     field,
			parentKey: field.DependsOn,
		})
	}
}

// SetParent records a new parent selection and refreshes every dependent
// collection. A nil/empty id forces the dependent collections empty instead
// of leaving stale options visible. Each dependent field's value is cleared
// on every parent change.
func (r *Resolver) SetParent(ctx context.Context, parentField, id string) error {
	r.mu.Lock()
	children := r.deps[parentField]
	if len(children) == 0 {
		r.mu.Unlock()
		return fmt.Errorf("resolver: field %q has no registered dependents", parentField)
	}

	r.parents[parentField] = id
	r.gen[parentField]++
	generation := r.gen[parentField]

	for _, dep := range children {
		r.options[dep.child.Name] = nil
	}
	clearFn := r.onClear
	r.mu.Unlock()

	if clearFn != nil {
		for _, dep := range children {
			clearFn(dep.child.Name)
		}
	}

	if id == "" {
		return nil
	}

	for _, dep := range children {
		fetched, err := r.source.Options(ctx, dep.child.DynamicOptionsKey, id)
		if err != nil {
			r.logger.Warn("dependent options fetch failed",
				zap.String("field", dep.child.Name),
				zap.String("parent", parentField),
				zap.Error(err))
			return fmt.Errorf("resolver: options for %q: %w", dep.child.Name, err)
		}

		r.mu.Lock()
		// A newer selection may have landed while this fetch was in flight;
		// its results win, ours are dropped.
		if r.gen[parentField] != generation {
			r.mu.Unlock()
			r.logger.Debug("discarding stale dependent options",
				zap.String("field", dep.child.Name),
				zap.String("parent", parentField))
			return nil
		}
		r.options[dep.child.Name] = fetched
		r.mu.Unlock()
	}
	return nil
}

// Parent returns the currently selected id for a parent field.
func (r *Resolver) Parent(parentField string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parents[parentField]
}

// OptionsFor returns the fetched collection for a dependent field. Empty
// until the parent has a value and the fetch has landed.
func (r *Resolver) OptionsFor(field string) []model.Option {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.options[field]
}

// Enabled reports whether a field may accept input: fields without a
// dependency always can, dependent fields only once their parent has a
// non-empty value.
func (r *Resolver) Enabled(field model.FieldDescriptor) bool {
	if field.DependsOn == "" {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parents[field.DependsOn] != ""
}
