package gowizard

import (
	"github.com/goliatone/go-wizard/pkg/dispatch"
	"github.com/goliatone/go-wizard/pkg/httpcap"
	"github.com/goliatone/go-wizard/pkg/listing"
	"github.com/goliatone/go-wizard/pkg/model"
	"github.com/goliatone/go-wizard/pkg/validation"
	"github.com/goliatone/go-wizard/pkg/wizard"
)

// ListingType identifies one of the supported listing categories.
type ListingType = model.ListingType

// State is the controller-owned snapshot of a wizard session.
type State = wizard.State

// Controller drives one listing wizard session step by step.
type Controller = wizard.Controller

// Option configures a Controller.
type Option = wizard.Option

// New starts a wizard session for the given listing type using the
// built-in step tables, schemas, and bindings. Callers that need custom
// configuration can pass wizard options or drop down to the subpackages.
func New(listingType ListingType, options ...Option) (*Controller, error) {
	return wizard.New(listingType, options...)
}

// NewDispatcher builds the default step action dispatcher over an HTTP
// capability, wired with the built-in endpoint bindings.
func NewDispatcher(doer httpcap.Doer, options ...dispatch.Option) *dispatch.Dispatcher {
	return dispatch.Default(listing.Default(), doer, options...)
}

// Registry returns the built-in listing configuration registry.
func Registry() *listing.Registry {
	return listing.Default()
}

// Schemas returns the built-in validation schema registry.
func Schemas() *validation.Registry {
	return validation.Default()
}
