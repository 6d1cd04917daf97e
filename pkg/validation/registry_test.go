package validation

import (
	"errors"
	"testing"

	"github.com/goliatone/go-wizard/pkg/listing"
	"github.com/goliatone/go-wizard/pkg/model"
)

// Every step of every built-in listing table must have a schema at the same
// index. A hole here would make the controller fail mid-session.
func TestDefaultCoversEveryStep(t *testing.T) {
	steps := listing.Default()
	schemas := Default()

	for _, listingType := range steps.Types() {
		descriptors, err := steps.Steps(listingType)
		if err != nil {
			t.Fatalf("Steps(%s) = %v", listingType, err)
		}
		count, err := schemas.Steps(listingType)
		if err != nil {
			t.Fatalf("schema Steps(%s) = %v", listingType, err)
		}
		if count != len(descriptors) {
			t.Errorf("%s has %d steps but %d schemas", listingType, len(descriptors), count)
		}
		for idx := range descriptors {
			if _, err := schemas.Schema(listingType, idx); err != nil {
				t.Errorf("Schema(%s, %d) = %v", listingType, idx, err)
			}
		}
	}
}

// Required fields come straight from the descriptors, so an empty submission
// must produce one issue per required field of the step.
func TestRequiredFieldsRejectEmptySubmission(t *testing.T) {
	steps := listing.Default()
	schemas := Default()

	for _, listingType := range steps.Types() {
		descriptors, _ := steps.Steps(listingType)
		for idx, step := range descriptors {
			schema, err := schemas.Schema(listingType, idx)
			if err != nil {
				t.Fatalf("Schema(%s, %d) = %v", listingType, idx, err)
			}
			result := schema.Validate(model.FormValues{})
			byField := result.FieldMessages()
			for _, field := range step.Fields {
				if !field.Required {
					continue
				}
				if _, ok := byField[field.Name]; !ok {
					t.Errorf("%s step %s: required field %q produced no issue on empty values", listingType, step.ID, field.Name)
				}
			}
		}
	}
}

func TestSchemaLookupErrors(t *testing.T) {
	schemas := Default()
	if _, err := schemas.Schema("campground", 0); !errors.Is(err, ErrUnknownListingType) {
		t.Fatalf("Schema(campground, 0) = %v, want ErrUnknownListingType", err)
	}
	if _, err := schemas.Schema(model.ListingRentACar, 99); !errors.Is(err, ErrStepIndexOutOfRange) {
		t.Fatalf("Schema(rent_a_car, 99) = %v, want ErrStepIndexOutOfRange", err)
	}
}

func TestForRegistryDerivesRequiredRules(t *testing.T) {
	steps := listing.NewRegistry()
	err := steps.Register("boat", listing.Table{
		Steps: []model.StepDescriptor{
			{
				ID:    "details",
				Title: "Details",
				Fields: []model.FieldDescriptor{
					{Name: "name", Label: "Name", Type: model.FieldTypeText, Required: true},
					{Name: "note", Label: "Note", Type: model.FieldTypeText},
				},
			},
		},
		Endpoints: map[string]listing.Endpoint{
			model.ActionCreate: {Method: "POST", URLTemplate: "/partner/boats"},
		},
	})
	if err != nil {
		t.Fatalf("Register(boat) = %v", err)
	}

	schemas, err := ForRegistry(steps)
	if err != nil {
		t.Fatalf("ForRegistry() = %v", err)
	}
	schema, err := schemas.Schema("boat", 0)
	if err != nil {
		t.Fatalf("Schema(boat, 0) = %v", err)
	}

	result := schema.Validate(model.FormValues{"note": "hi"})
	if result.Valid {
		t.Fatal("Validate() accepted values missing a required field")
	}
	if _, ok := result.FieldMessages()["name"]; !ok {
		t.Fatalf("Validate() issues = %v, want one on name", result.Issues)
	}

	result = schema.Validate(model.FormValues{"name": "Sea Ray"})
	if !result.Valid {
		t.Fatalf("Validate() = %v, want valid", result.Issues)
	}
}
