package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-wizard/pkg/model"
	"github.com/goliatone/go-wizard/pkg/render"
)

// Name is what this renderer registers under in a render.Registry.
const Name = "prompt"

// Renderer drives listing fields through terminal prompts. It implements
// render.Renderer so a wizard session can run end to end in a shell.
type Renderer struct {
	driver Driver
}

// Option configures the renderer.
type Option func(*Renderer)

// WithDriver swaps the terminal driver, mainly for tests.
func WithDriver(d Driver) Option {
	return func(r *Renderer) {
		if d != nil {
			r.driver = d
		}
	}
}

// New returns a terminal renderer backed by survey prompts.
func New(opts ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return Name
}

// RenderField prompts for a single field. Disabled fields are skipped
// without emitting a change, which is how dependent selects behave while
// their parent has no value yet.
func (r *Renderer) RenderField(ctx context.Context, field model.FieldDescriptor, current any, opts render.FieldOptions, onChange render.OnChange) error {
	if opts.Disabled {
		return nil
	}
	if opts.Error != "" {
		if err := r.driver.Info(ctx, fmt.Sprintf("! %s: %s", field.Label, opts.Error)); err != nil {
			return err
		}
	}

	switch field.Type {
	case model.FieldTypeText, model.FieldTypeLocation, model.FieldTypeFile:
		return r.renderText(ctx, field, current, onChange)
	case model.FieldTypeNumber:
		return r.renderNumber(ctx, field, current, onChange)
	case model.FieldTypeDate, model.FieldTypeTime:
		return r.renderText(ctx, field, current, onChange)
	case model.FieldTypeSelect, model.FieldTypeRadio:
		return r.renderSelect(ctx, field, current, opts, onChange)
	case model.FieldTypeCheckbox:
		return r.renderConfirm(ctx, field, current, onChange)
	case model.FieldTypeCheckboxGroup:
		return r.renderMultiSelect(ctx, field, current, opts, onChange)
	case model.FieldTypeCustom:
		return r.renderCollection(ctx, field, current, onChange)
	default:
		return fmt.Errorf("prompt: unsupported field type %q", field.Type)
	}
}

func (r *Renderer) renderText(ctx context.Context, field model.FieldDescriptor, current any, onChange render.OnChange) error {
	cfg := InputConfig{
		Message: promptMessage(field),
		Help:    field.Placeholder,
	}
	if s, ok := current.(string); ok {
		cfg.Default = s
	}
	value, err := r.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	onChange(field.Name, value)
	return nil
}

func (r *Renderer) renderNumber(ctx context.Context, field model.FieldDescriptor, current any, onChange render.OnChange) error {
	cfg := InputConfig{
		Message: promptMessage(field),
		Help:    field.Placeholder,
		Default: numberDefault(current),
	}
	for {
		raw, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			onChange(field.Name, nil)
			return nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("%q is not a number", raw)); err != nil {
				return err
			}
			continue
		}
		onChange(field.Name, n)
		return nil
	}
}

func (r *Renderer) renderSelect(ctx context.Context, field model.FieldDescriptor, current any, opts render.FieldOptions, onChange render.OnChange) error {
	options := fieldOptions(field, opts)
	if len(options) == 0 {
		return r.driver.Info(ctx, fmt.Sprintf("%s: no options available yet", field.Label))
	}
	cfg := SelectConfig{
		Message:      promptMessage(field),
		Options:      optionLabels(options),
		DefaultIndex: indexOfValue(options, current),
		Help:         field.Placeholder,
	}
	idx, err := r.driver.Select(ctx, cfg)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return nil
	}
	onChange(field.Name, options[idx].Value)
	return nil
}

func (r *Renderer) renderConfirm(ctx context.Context, field model.FieldDescriptor, current any, onChange render.OnChange) error {
	cfg := ConfirmConfig{
		Message: promptMessage(field),
		Help:    field.Placeholder,
	}
	if b, ok := current.(bool); ok {
		cfg.Default = b
	}
	value, err := r.driver.Confirm(ctx, cfg)
	if err != nil {
		return err
	}
	onChange(field.Name, value)
	return nil
}

func (r *Renderer) renderMultiSelect(ctx context.Context, field model.FieldDescriptor, current any, opts render.FieldOptions, onChange render.OnChange) error {
	options := fieldOptions(field, opts)
	if len(options) == 0 {
		return r.driver.Info(ctx, fmt.Sprintf("%s: no options available yet", field.Label))
	}
	cfg := SelectConfig{
		Message:  promptMessage(field),
		Options:  optionLabels(options),
		Defaults: indicesOfValues(options, current),
		Help:     field.Placeholder,
	}
	indices, err := r.driver.MultiSelect(ctx, cfg)
	if err != nil {
		return err
	}
	values := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) {
			values = append(values, options[idx].Value)
		}
	}
	onChange(field.Name, values)
	return nil
}

// renderCollection walks a custom collection field. Each iteration prompts
// the nested descriptors and appends one entry; hotel rooms and hospital
// doctors flow through here.
func (r *Renderer) renderCollection(ctx context.Context, field model.FieldDescriptor, current any, onChange render.OnChange) error {
	if len(field.Fields) == 0 {
		return r.driver.Info(ctx, fmt.Sprintf("%s is managed by the %q component", field.Label, field.CustomComponentKey))
	}

	entries := collectionEntries(current)
	for {
		more, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add an entry to %s? (%d so far)", field.Label, len(entries)),
			Default: len(entries) == 0,
		})
		if err != nil {
			return err
		}
		if !more {
			break
		}

		entry := map[string]any{}
		capture := func(name string, value any) {
			entry[name] = value
		}
		for _, nested := range field.Fields {
			if err := r.RenderField(ctx, nested, nil, render.FieldOptions{Options: nested.Options}, capture); err != nil {
				return err
			}
		}
		entries = append(entries, entry)
	}
	onChange(field.Name, entries)
	return nil
}

func promptMessage(field model.FieldDescriptor) string {
	if field.Required {
		return field.Label + " *"
	}
	return field.Label
}

func fieldOptions(field model.FieldDescriptor, opts render.FieldOptions) []model.Option {
	if len(opts.Options) > 0 {
		return opts.Options
	}
	return field.Options
}

func optionLabels(options []model.Option) []string {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.Label
	}
	return labels
}

func indexOfValue(options []model.Option, current any) int {
	value, ok := current.(string)
	if !ok {
		return -1
	}
	for i, option := range options {
		if option.Value == value {
			return i
		}
	}
	return -1
}

func indicesOfValues(options []model.Option, current any) []int {
	var values []string
	switch v := current.(type) {
	case []string:
		values = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	default:
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	var out []int
	for i, option := range options {
		if _, ok := seen[option.Value]; ok {
			out = append(out, i)
		}
	}
	return out
}

func numberDefault(current any) string {
	switch v := current.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func collectionEntries(current any) []map[string]any {
	switch v := current.(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}
