// Package render defines the renderer capability the wizard engine consumes.
// The engine never draws anything itself; it hands a field descriptor plus
// the current value and options to whichever renderer is registered.
package render

import (
	"context"

	"github.com/goliatone/go-wizard/pkg/model"
)

// FieldOptions carries the per-render inputs that are not part of the static
// descriptor: resolved dependent options, the disabled flag for fields whose
// parent is still empty, and any outstanding validation message.
type FieldOptions struct {
	Options  []model.Option
	Disabled bool
	Error    string
}

// OnChange reports an edited value back to the form-state layer. Disabled
// fields must not emit changes.
type OnChange func(name string, value any)

// Renderer produces UI for one field and routes edits into OnChange.
type Renderer interface {
	Name() string
	RenderField(ctx context.Context, field model.FieldDescriptor, current any, opts FieldOptions, onChange OnChange) error
}
