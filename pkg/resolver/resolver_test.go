package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wizard/pkg/model"
)

func carDetailsStep() model.StepDescriptor {
	return model.StepDescriptor{
		ID:    "car-details",
		Title: "Car details",
		Fields: []model.FieldDescriptor{
			{Name: "brand_id", Label: "Brand", Type: model.FieldTypeSelect, DynamicOptionsKey: "brands"},
			{Name: "model_id", Label: "Model", Type: model.FieldTypeSelect, DynamicOptionsKey: "models", DependsOn: "brand_id"},
			{Name: "country_id", Label: "Country", Type: model.FieldTypeSelect, DynamicOptionsKey: "countries"},
			{Name: "city_id", Label: "City", Type: model.FieldTypeSelect, DynamicOptionsKey: "cities", DependsOn: "country_id"},
		},
	}
}

type stubSource struct {
	mu      sync.Mutex
	byKey   map[string]map[string][]model.Option // key -> parentID -> options
	err     error
	started chan struct{} // closed when the first fetch enters, if set
	pending chan struct{} // when set, Options blocks until it closes
}

func (s *stubSource) Options(ctx context.Context, key, parentID string) ([]model.Option, error) {
	if s.started != nil {
		s.mu.Lock()
		select {
		case <-s.started:
		default:
			close(s.started)
		}
		s.mu.Unlock()
	}
	if s.pending != nil {
		<-s.pending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.byKey[key][parentID], nil
}

func TestSetParentLoadsDependentOptions(t *testing.T) {
	source := &stubSource{byKey: map[string]map[string][]model.Option{
		"models": {
			"1": {{Value: "10", Label: "Corolla"}, {Value: "11", Label: "Yaris"}},
		},
	}}
	r := New(source)
	r.Bind(carDetailsStep())

	if err := r.SetParent(context.Background(), "brand_id", "1"); err != nil {
		t.Fatalf("SetParent() = %v", err)
	}
	want := []model.Option{{Value: "10", Label: "Corolla"}, {Value: "11", Label: "Yaris"}}
	if diff := cmp.Diff(want, r.OptionsFor("model_id")); diff != "" {
		t.Fatalf("OptionsFor(model_id) mismatch (-want +got):\n%s", diff)
	}
	if r.Parent("brand_id") != "1" {
		t.Fatalf("Parent(brand_id) = %q, want 1", r.Parent("brand_id"))
	}
}

func TestSetParentClearsChildValueAndOptions(t *testing.T) {
	source := &stubSource{byKey: map[string]map[string][]model.Option{
		"models": {
			"1": {{Value: "10", Label: "Corolla"}},
			"2": {{Value: "20", Label: "Clio"}},
		},
	}}
	var cleared []string
	r := New(source, WithClearFunc(func(field string) {
		cleared = append(cleared, field)
	}))
	r.Bind(carDetailsStep())

	ctx := context.Background()
	if err := r.SetParent(ctx, "brand_id", "1"); err != nil {
		t.Fatalf("SetParent(1) = %v", err)
	}
	if err := r.SetParent(ctx, "brand_id", "2"); err != nil {
		t.Fatalf("SetParent(2) = %v", err)
	}

	want := []string{"model_id", "model_id"}
	if diff := cmp.Diff(want, cleared); diff != "" {
		t.Fatalf("cleared fields mismatch (-want +got):\n%s", diff)
	}
	got := r.OptionsFor("model_id")
	if len(got) != 1 || got[0].Value != "20" {
		t.Fatalf("OptionsFor(model_id) = %v, want options for brand 2", got)
	}
}

func TestSetParentEmptyIDEmptiesChildren(t *testing.T) {
	source := &stubSource{byKey: map[string]map[string][]model.Option{
		"cities": {"tr": {{Value: "34", Label: "Istanbul"}}},
	}}
	r := New(source)
	r.Bind(carDetailsStep())

	ctx := context.Background()
	if err := r.SetParent(ctx, "country_id", "tr"); err != nil {
		t.Fatalf("SetParent(tr) = %v", err)
	}
	if err := r.SetParent(ctx, "country_id", ""); err != nil {
		t.Fatalf("SetParent(empty) = %v", err)
	}
	if got := r.OptionsFor("city_id"); len(got) != 0 {
		t.Fatalf("OptionsFor(city_id) = %v, want empty after clearing the parent", got)
	}
}

func TestSetParentUnknownParent(t *testing.T) {
	r := New(&stubSource{})
	r.Bind(carDetailsStep())
	if err := r.SetParent(context.Background(), "plate_number", "x"); err == nil {
		t.Fatal("SetParent(plate_number) = nil, want error for field with no dependents")
	}
}

func TestSetParentFetchError(t *testing.T) {
	wantErr := errors.New("upstream down")
	r := New(&stubSource{err: wantErr})
	r.Bind(carDetailsStep())
	err := r.SetParent(context.Background(), "brand_id", "1")
	if !errors.Is(err, wantErr) {
		t.Fatalf("SetParent() = %v, want wrapped upstream error", err)
	}
}

// A slow fetch for an old selection must not overwrite the options of a newer
// selection that completed first.
func TestStaleFetchResultsAreDiscarded(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	slow := &stubSource{
		byKey: map[string]map[string][]model.Option{
			"models": {"1": {{Value: "10", Label: "Stale"}}},
		},
		started: started,
		pending: gate,
	}
	r := New(slow)
	r.Bind(carDetailsStep())

	ctx := context.Background()
	done := make(chan error, 1)
	go func() {
		done <- r.SetParent(ctx, "brand_id", "1")
	}()
	<-started

	// Second selection lands while the first fetch is still blocked.
	fast := &stubSource{byKey: map[string]map[string][]model.Option{
		"models": {"2": {{Value: "20", Label: "Fresh"}}},
	}}
	r.mu.Lock()
	r.source = fast
	r.mu.Unlock()
	if err := r.SetParent(ctx, "brand_id", "2"); err != nil {
		t.Fatalf("SetParent(2) = %v", err)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("SetParent(1) = %v", err)
	}

	got := r.OptionsFor("model_id")
	if len(got) != 1 || got[0].Label != "Fresh" {
		t.Fatalf("OptionsFor(model_id) = %v, want the newer selection's options", got)
	}
}

func TestEnabled(t *testing.T) {
	r := New(&stubSource{byKey: map[string]map[string][]model.Option{
		"models": {"1": {{Value: "10", Label: "Corolla"}}},
	}})
	step := carDetailsStep()
	r.Bind(step)

	brand, _ := step.Field("brand_id")
	modelField, _ := step.Field("model_id")

	if !r.Enabled(brand) {
		t.Fatal("independent field must be enabled")
	}
	if r.Enabled(modelField) {
		t.Fatal("dependent field enabled before parent selection")
	}
	if err := r.SetParent(context.Background(), "brand_id", "1"); err != nil {
		t.Fatalf("SetParent() = %v", err)
	}
	if !r.Enabled(modelField) {
		t.Fatal("dependent field still disabled after parent selection")
	}
}
