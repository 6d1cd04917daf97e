package model

import "fmt"

// ValidateSteps checks the structural integrity of an ordered step list.
// Registries call it at assembly time so a broken table fails at process
// start, not mid-session.
func ValidateSteps(steps []StepDescriptor) error {
	if len(steps) == 0 {
		return fmt.Errorf("model: step list is empty")
	}
	seen := make(map[string]struct{}, len(steps))
	for idx, step := range steps {
		if step.ID == "" {
			return fmt.Errorf("model: step %d is missing an id", idx)
		}
		if _, dup := seen[step.ID]; dup {
			return fmt.Errorf("model: duplicate step id %q", step.ID)
		}
		seen[step.ID] = struct{}{}
		if err := ValidateStep(step); err != nil {
			return fmt.Errorf("model: step %q: %w", step.ID, err)
		}
	}
	return nil
}

// ValidateStep enforces the descriptor invariants for one step: fields are
// non-empty unless the step delegates to sub-steps, field names are unique,
// custom fields resolve to a component key, option-backed fields carry
// options, and dependsOn references an earlier field in the same step.
func ValidateStep(step StepDescriptor) error {
	if len(step.Fields) == 0 && len(step.SubSteps) == 0 {
		return fmt.Errorf("no fields and no sub-steps")
	}
	names := make(map[string]int, len(step.Fields))
	for idx, field := range step.Fields {
		if field.Name == "" {
			return fmt.Errorf("field %d is missing a name", idx)
		}
		if _, dup := names[field.Name]; dup {
			return fmt.Errorf("duplicate field name %q", field.Name)
		}
		names[field.Name] = idx
		if err := validateField(field, names, idx); err != nil {
			return err
		}
	}
	return nil
}

func validateField(field FieldDescriptor, earlier map[string]int, idx int) error {
	switch field.Type {
	case FieldTypeText, FieldTypeNumber, FieldTypeSelect, FieldTypeRadio,
		FieldTypeCheckbox, FieldTypeCheckboxGroup, FieldTypeFile,
		FieldTypeDate, FieldTypeTime, FieldTypeLocation, FieldTypeCustom:
	default:
		return fmt.Errorf("field %q has unknown type %q", field.Name, field.Type)
	}

	if field.Type == FieldTypeCustom && field.CustomComponentKey == "" {
		return fmt.Errorf("custom field %q is missing a component key", field.Name)
	}

	switch field.Type {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckboxGroup:
		if len(field.Options) == 0 && field.DynamicOptionsKey == "" {
			return fmt.Errorf("field %q needs options or a dynamic options key", field.Name)
		}
		if len(field.Options) > 0 && field.DynamicOptionsKey != "" {
			return fmt.Errorf("field %q mixes static options with a dynamic options key", field.Name)
		}
	}

	if field.DependsOn != "" {
		parentIdx, ok := earlier[field.DependsOn]
		if !ok || parentIdx >= idx {
			return fmt.Errorf("field %q depends on %q, which is not declared earlier in the step", field.Name, field.DependsOn)
		}
	}
	return nil
}
