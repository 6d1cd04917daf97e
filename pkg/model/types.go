package model

// ListingType selects which step, validation, and dispatch tables apply to a
// wizard session. It is fixed for the lifetime of the session.
type ListingType string

const (
	ListingRentACar ListingType = "rent_a_car"
	ListingHotel    ListingType = "hotel"
	ListingHospital ListingType = "hospital"
	ListingTransfer ListingType = "transfer"
)

// ListingTypes returns the known listing types in declaration order.
func ListingTypes() []ListingType {
	return []ListingType{ListingRentACar, ListingHotel, ListingHospital, ListingTransfer}
}

// Known reports whether the listing type is one of the built-in categories.
func (t ListingType) Known() bool {
	switch t {
	case ListingRentACar, ListingHotel, ListingHospital, ListingTransfer:
		return true
	}
	return false
}

// FieldType is the enum of input kinds a renderer can be asked to produce.
type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeNumber        FieldType = "number"
	FieldTypeSelect        FieldType = "select"
	FieldTypeRadio         FieldType = "radio"
	FieldTypeCheckbox      FieldType = "checkbox"
	FieldTypeCheckboxGroup FieldType = "checkboxGroup"
	FieldTypeFile          FieldType = "file"
	FieldTypeDate          FieldType = "date"
	FieldTypeTime          FieldType = "time"
	FieldTypeLocation      FieldType = "location"
	FieldTypeCustom        FieldType = "custom"
)

// Option is one selectable choice for select, radio, and checkboxGroup fields.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// FieldDescriptor describes one input inside a step. It is plain data; all
// behavior lives in the registries and the controller.
//
// Exactly one of Options and DynamicOptionsKey should be set for option-backed
// field types. DependsOn names another field in the same step whose non-empty
// value enables this one; the dependent options resolver owns clearing this
// field whenever the parent changes.
type FieldDescriptor struct {
	Name               string            `json:"name" yaml:"name"`
	Label              string            `json:"label,omitempty" yaml:"label,omitempty"`
	Type               FieldType         `json:"type" yaml:"type"`
	Required           bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Placeholder        string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options            []Option          `json:"options,omitempty" yaml:"options,omitempty"`
	DynamicOptionsKey  string            `json:"dynamicOptionsKey,omitempty" yaml:"dynamicOptionsKey,omitempty"`
	DependsOn          string            `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	CustomComponentKey string            `json:"customComponentKey,omitempty" yaml:"customComponentKey,omitempty"`
	Fields             []FieldDescriptor `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Toast holds the notification copy shown after a step submits.
type Toast struct {
	Success string `json:"success,omitempty" yaml:"success,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SubStepDescriptor names a navigable sub-division inside a step. Sub-step
// progress is tracked separately from the main step index.
type SubStepDescriptor struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// StepDescriptor is one screen's worth of fields plus the remote action fired
// when the wizard advances past it. Descriptors are assembled once at process
// start and never mutated afterwards.
type StepDescriptor struct {
	ID           string              `json:"id" yaml:"id"`
	Title        string              `json:"title" yaml:"title"`
	Description  string              `json:"description,omitempty" yaml:"description,omitempty"`
	Fields       []FieldDescriptor   `json:"fields" yaml:"fields"`
	SubSteps     []SubStepDescriptor `json:"subSteps,omitempty" yaml:"subSteps,omitempty"`
	SubmitAction string              `json:"submitAction,omitempty" yaml:"submitAction,omitempty"`
	Toast        Toast               `json:"toast,omitempty" yaml:"toast,omitempty"`
}

// Field returns the descriptor with the given name, if the step declares it.
func (s StepDescriptor) Field(name string) (FieldDescriptor, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}
