package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-wizard/internal/config"
	"github.com/goliatone/go-wizard/pkg/dispatch"
	"github.com/goliatone/go-wizard/pkg/draft"
	"github.com/goliatone/go-wizard/pkg/httpcap"
	"github.com/goliatone/go-wizard/pkg/model"
	"github.com/goliatone/go-wizard/pkg/render"
	"github.com/goliatone/go-wizard/pkg/resolver"
	"github.com/goliatone/go-wizard/pkg/wizard"
)

// session wires the engine pieces for one terminal run: a controller for
// the chosen listing type, a resolver for dependent selects, and the
// renderer resolved from the registry to collect values.
type session struct {
	cfg         *config.Config
	listingType model.ListingType
	logger      *zap.Logger
	storage     draft.Storage
	doer        httpcap.Doer
	renderer    render.Renderer
	discard     bool
}

func (s *session) Run(ctx context.Context) error {
	dispatcher := dispatch.Default(nil, s.doer, dispatch.WithLogger(s.logger))

	controller, err := wizard.New(s.listingType,
		wizard.WithDispatcher(dispatcher),
		wizard.WithStorage(s.storage),
		wizard.WithActor(s.cfg.ActorID),
		wizard.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}

	if s.discard {
		controller.DiscardDraft(ctx)
	} else if controller.Resume(ctx) {
		fmt.Printf("Resuming draft at step %d\n", controller.State().CurrentStep+1)
	}

	options := resolver.New(remoteSource{doer: s.doer},
		resolver.WithLogger(s.logger),
		resolver.WithClearFunc(controller.ClearValue))
	for _, step := range controller.Steps() {
		options.Bind(step)
	}
	s.primeResolver(ctx, controller, options)

	for {
		state := controller.State()
		if state.Status == wizard.StatusSuccess {
			break
		}

		step := controller.Step()
		s.printStepHeader(controller, step)

		if err := s.renderStep(ctx, controller, options, s.renderer, step, state); err != nil {
			return err
		}

		next, err := controller.Advance(ctx)
		if err != nil {
			return err
		}
		s.printOutcome(step, next)
		if next.Status == wizard.StatusSuccess {
			fmt.Printf("Done. Listing id: %s\n", next.EntityID)
			return nil
		}
	}
	return nil
}

func (s *session) renderStep(ctx context.Context, controller *wizard.Controller, options *resolver.Resolver, renderer render.Renderer, step model.StepDescriptor, state wizard.State) error {
	parents := parentFields(step)
	onChange := func(name string, value any) {
		controller.SetValue(name, value)
		if !parents[name] {
			return
		}
		id, _ := value.(string)
		if err := options.SetParent(ctx, name, id); err != nil {
			s.logger.Warn("resolve dependent options",
				zap.String("field", name),
				zap.Error(err))
		}
	}

	for _, field := range step.Fields {
		current, _ := controller.Value(field.Name)
		opts := render.FieldOptions{
			Options:  field.Options,
			Disabled: !options.Enabled(field),
			Error:    state.FieldErrors[field.Name],
		}
		if field.DynamicOptionsKey != "" {
			opts.Options = options.OptionsFor(field.Name)
		}
		if err := renderer.RenderField(ctx, field, current, opts, onChange); err != nil {
			return err
		}
	}
	return nil
}

// primeResolver replays parent values from a resumed draft so dependent
// selects come back enabled with their options loaded. SetParent clears the
// dependent values as a side effect, so the drafted selections are restored
// afterwards.
func (s *session) primeResolver(ctx context.Context, controller *wizard.Controller, options *resolver.Resolver) {
	for _, step := range controller.Steps() {
		for _, field := range step.Fields {
			if field.DependsOn == "" {
				continue
			}
			parent, ok := controller.Value(field.DependsOn)
			if !ok {
				continue
			}
			id, ok := parent.(string)
			if !ok || id == "" {
				continue
			}
			saved, hadValue := controller.Value(field.Name)
			if err := options.SetParent(ctx, field.DependsOn, id); err != nil {
				s.logger.Warn("prime dependent options",
					zap.String("field", field.DependsOn),
					zap.Error(err))
				continue
			}
			if hadValue {
				controller.SetValue(field.Name, saved)
			}
		}
	}
}

func parentFields(step model.StepDescriptor) map[string]bool {
	out := make(map[string]bool)
	for _, field := range step.Fields {
		if field.DependsOn != "" {
			out[field.DependsOn] = true
		}
	}
	return out
}

func (s *session) printStepHeader(controller *wizard.Controller, step model.StepDescriptor) {
	fmt.Printf("\n[%d/%d] %s\n", controller.State().CurrentStep+1, len(controller.Steps()), step.Title)
	if step.Description != "" {
		fmt.Println(step.Description)
	}
}

func (s *session) printOutcome(step model.StepDescriptor, state wizard.State) {
	switch state.Status {
	case wizard.StatusError:
		for _, msg := range state.Errors {
			fmt.Println("  ✗", msg)
		}
		for field, msg := range state.FieldErrors {
			fmt.Printf("  ✗ %s: %s\n", field, msg)
		}
	default:
		if step.Toast.Success != "" {
			fmt.Println("  ✓", step.Toast.Success)
		}
	}
}

func draftTTL(cfg *config.Config) time.Duration {
	if cfg.DraftTTLHours <= 0 {
		return 72 * time.Hour
	}
	return time.Duration(cfg.DraftTTLHours) * time.Hour
}

// remoteSource fetches dependent option lists from the extranet API.
type remoteSource struct {
	doer httpcap.Doer
}

func (s remoteSource) Options(ctx context.Context, key, parentID string) ([]model.Option, error) {
	path := "/options/" + url.PathEscape(key)
	if parentID != "" {
		path += "?parent=" + url.QueryEscape(parentID)
	}
	raw, err := s.doer.Do(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	var out []model.Option
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode options for %q: %w", key, err)
	}
	return out, nil
}

// fakeDoer stands in for the extranet API under --dry-run. Submissions
// return a synthetic id and option lookups return canned values.
type fakeDoer struct{}

func (f *fakeDoer) Do(ctx context.Context, method, rawURL string, body any) (json.RawMessage, error) {
	if method == "GET" && strings.HasPrefix(rawURL, "/options/") {
		return f.options(rawURL)
	}
	return json.RawMessage(`{"id": "dry-run-1"}`), nil
}

func (f *fakeDoer) options(rawURL string) (json.RawMessage, error) {
	key := strings.TrimPrefix(rawURL, "/options/")
	if i := strings.IndexByte(key, '?'); i >= 0 {
		key = key[:i]
	}
	canned := map[string][]model.Option{
		"brands":    {{Value: "1", Label: "Toyota"}, {Value: "2", Label: "Renault"}},
		"models":    {{Value: "10", Label: "Corolla"}, {Value: "11", Label: "Clio"}},
		"countries": {{Value: "tr", Label: "Turkiye"}, {Value: "de", Label: "Germany"}},
		"cities":    {{Value: "34", Label: "Istanbul"}, {Value: "6", Label: "Ankara"}},
	}
	options, ok := canned[key]
	if !ok {
		options = []model.Option{{Value: "1", Label: "Sample"}}
	}
	return json.Marshal(options)
}
