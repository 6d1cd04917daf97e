package listing

import (
	"errors"
	"testing"

	"github.com/goliatone/go-wizard/pkg/model"
)

func TestDefaultRegistersAllListingTypes(t *testing.T) {
	registry := Default()
	for _, listingType := range model.ListingTypes() {
		if !registry.Has(listingType) {
			t.Errorf("Default() is missing table for %s", listingType)
		}
	}
}

func TestDefaultFirstStepCreates(t *testing.T) {
	registry := Default()
	for _, listingType := range registry.Types() {
		step, err := registry.Step(listingType, 0)
		if err != nil {
			t.Fatalf("Step(%s, 0) = %v", listingType, err)
		}
		if step.SubmitAction != model.ActionCreate {
			t.Errorf("%s first step submits %q, want %q", listingType, step.SubmitAction, model.ActionCreate)
		}
	}
}

func TestDefaultSubmitActionsHaveEndpoints(t *testing.T) {
	registry := Default()
	for _, listingType := range registry.Types() {
		steps, err := registry.Steps(listingType)
		if err != nil {
			t.Fatalf("Steps(%s) = %v", listingType, err)
		}
		for _, step := range steps {
			if step.SubmitAction == "" {
				continue
			}
			if _, err := registry.Endpoint(listingType, step.SubmitAction); err != nil {
				t.Errorf("%s step %s: endpoint for action %q: %v", listingType, step.ID, step.SubmitAction, err)
			}
		}
	}
}

func TestStepIndexOutOfRange(t *testing.T) {
	registry := Default()
	_, err := registry.Step(model.ListingRentACar, 99)
	if !errors.Is(err, ErrStepIndexOutOfRange) {
		t.Fatalf("Step(rent_a_car, 99) = %v, want ErrStepIndexOutOfRange", err)
	}
}

func TestUnknownListingTypeLookups(t *testing.T) {
	registry := Default()
	if _, err := registry.Steps("campground"); !errors.Is(err, ErrUnknownListingType) {
		t.Fatalf("Steps(campground) = %v, want ErrUnknownListingType", err)
	}
	if _, err := registry.Endpoint("campground", "create"); !errors.Is(err, ErrUnknownListingType) {
		t.Fatalf("Endpoint(campground, create) = %v, want ErrUnknownListingType", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	table := Table{
		Steps: []model.StepDescriptor{
			{
				ID:    "details",
				Title: "Details",
				Fields: []model.FieldDescriptor{
					{Name: "name", Label: "Name", Type: model.FieldTypeText},
				},
				SubmitAction: model.ActionCreate,
			},
		},
		Endpoints: map[string]Endpoint{
			model.ActionCreate: {Method: "POST", URLTemplate: "/things"},
		},
	}
	if err := registry.Register("thing", table); err != nil {
		t.Fatalf("first Register() = %v", err)
	}
	if err := registry.Register("thing", table); err == nil {
		t.Fatal("second Register() = nil, want duplicate error")
	}
}

func TestRegisterRejectsBrokenTable(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register("thing", Table{
		Steps: []model.StepDescriptor{{ID: "details", Title: "Details"}},
		Endpoints: map[string]Endpoint{
			model.ActionCreate: {Method: "POST", URLTemplate: "/things"},
		},
	})
	if err == nil {
		t.Fatal("Register() accepted a step with no fields and no sub-steps")
	}
}

func TestRegisterRejectsIncompleteEndpoint(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register("thing", Table{
		Steps: []model.StepDescriptor{
			{
				ID:    "details",
				Title: "Details",
				Fields: []model.FieldDescriptor{
					{Name: "name", Label: "Name", Type: model.FieldTypeText},
				},
			},
		},
		Endpoints: map[string]Endpoint{
			model.ActionCreate: {Method: "POST"},
		},
	})
	if err == nil {
		t.Fatal("Register() accepted an endpoint without a url")
	}
}
