package model

import (
	"strings"
	"testing"
)

func validStep() StepDescriptor {
	return StepDescriptor{
		ID:    "details",
		Title: "Details",
		Fields: []FieldDescriptor{
			{Name: "brand_id", Label: "Brand", Type: FieldTypeSelect, DynamicOptionsKey: "brands"},
			{Name: "model_id", Label: "Model", Type: FieldTypeSelect, DynamicOptionsKey: "models", DependsOn: "brand_id"},
			{Name: "year", Label: "Year", Type: FieldTypeNumber},
		},
	}
}

func TestValidateStepsAcceptsWellFormedTable(t *testing.T) {
	steps := []StepDescriptor{
		validStep(),
		{
			ID:    "media",
			Title: "Media",
			Fields: []FieldDescriptor{
				{Name: "photos", Label: "Photos", Type: FieldTypeFile},
			},
		},
	}
	if err := ValidateSteps(steps); err != nil {
		t.Fatalf("ValidateSteps() = %v, want nil", err)
	}
}

func TestValidateStepsRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*StepDescriptor)
		wantSub string
	}{
		{
			name:    "missing step id",
			mutate:  func(s *StepDescriptor) { s.ID = "" },
			wantSub: "missing an id",
		},
		{
			name: "duplicate field name",
			mutate: func(s *StepDescriptor) {
				s.Fields = append(s.Fields, FieldDescriptor{Name: "year", Label: "Year", Type: FieldTypeNumber})
			},
			wantSub: "duplicate field name",
		},
		{
			name: "unknown field type",
			mutate: func(s *StepDescriptor) {
				s.Fields[0].Type = "slider"
			},
			wantSub: "unknown type",
		},
		{
			name: "custom field without component key",
			mutate: func(s *StepDescriptor) {
				s.Fields = append(s.Fields, FieldDescriptor{Name: "rooms", Label: "Rooms", Type: FieldTypeCustom})
			},
			wantSub: "missing a component key",
		},
		{
			name: "select without options or dynamic key",
			mutate: func(s *StepDescriptor) {
				s.Fields[0].DynamicOptionsKey = ""
			},
			wantSub: "needs options",
		},
		{
			name: "select mixing static and dynamic options",
			mutate: func(s *StepDescriptor) {
				s.Fields[0].Options = []Option{{Value: "1", Label: "One"}}
			},
			wantSub: "mixes static options",
		},
		{
			name: "dependsOn pointing forward",
			mutate: func(s *StepDescriptor) {
				s.Fields[0].DependsOn = "model_id"
			},
			wantSub: "not declared earlier",
		},
		{
			name: "no fields and no sub-steps",
			mutate: func(s *StepDescriptor) {
				s.Fields = nil
			},
			wantSub: "no fields and no sub-steps",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			step := validStep()
			tc.mutate(&step)
			err := ValidateSteps([]StepDescriptor{step})
			if err == nil {
				t.Fatalf("ValidateSteps() = nil, want error containing %q", tc.wantSub)
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("ValidateSteps() = %v, want error containing %q", err, tc.wantSub)
			}
		})
	}
}

func TestValidateStepsDuplicateStepID(t *testing.T) {
	steps := []StepDescriptor{validStep(), validStep()}
	err := ValidateSteps(steps)
	if err == nil || !strings.Contains(err.Error(), "duplicate step id") {
		t.Fatalf("ValidateSteps() = %v, want duplicate step id error", err)
	}
}

func TestValidateStepAllowsSubStepsWithoutFields(t *testing.T) {
	step := StepDescriptor{
		ID:    "rooms",
		Title: "Rooms",
		SubSteps: []SubStepDescriptor{
			{ID: "room-types", Title: "Room types"},
		},
	}
	if err := ValidateStep(step); err != nil {
		t.Fatalf("ValidateStep() = %v, want nil", err)
	}
}
