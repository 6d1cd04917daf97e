package listing

import "github.com/goliatone/go-wizard/pkg/model"

func hospitalTable() Table {
	return Table{
		Steps: []model.StepDescriptor{
			{
				ID:          "hospital-details",
				Title:       "Facility details",
				Description: "Basic information about the facility.",
				Fields: []model.FieldDescriptor{
					{Name: "name", Label: "Facility name", Type: model.FieldTypeText, Required: true},
					{Name: "facility_type", Label: "Facility type", Type: model.FieldTypeSelect, Required: true, Options: []model.Option{
						{Value: "hospital", Label: "Hospital"},
						{Value: "clinic", Label: "Clinic"},
						{Value: "dental", Label: "Dental center"},
					}},
					{Name: "country_id", Label: "Country", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "countries"},
					{Name: "city_id", Label: "City", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "cities", DependsOn: "country_id"},
					{Name: "address", Label: "Address", Type: model.FieldTypeText, Required: true},
					{Name: "location", Label: "Map location", Type: model.FieldTypeLocation, Required: true},
					{Name: "emergency_support", Label: "24/7 emergency support", Type: model.FieldTypeCheckbox},
				},
				SubmitAction: model.ActionCreate,
				Toast: model.Toast{
					Success: "Facility saved.",
					Error:   "Could not save the facility.",
				},
			},
			{
				ID:          "hospital-staff",
				Title:       "Doctors and services",
				Description: "Medical staff and the services they provide.",
				Fields: []model.FieldDescriptor{
					{Name: "doctors", Label: "Doctors", Type: model.FieldTypeCustom, Required: true, CustomComponentKey: "doctorCollection", Fields: []model.FieldDescriptor{
						{Name: "full_name", Label: "Full name", Type: model.FieldTypeText, Required: true},
						{Name: "speciality", Label: "Speciality", Type: model.FieldTypeText, Required: true},
						{Name: "years_experience", Label: "Years of experience", Type: model.FieldTypeNumber},
					}},
					{Name: "services", Label: "Services", Type: model.FieldTypeCustom, Required: true, CustomComponentKey: "serviceCollection", Fields: []model.FieldDescriptor{
						{Name: "service_name", Label: "Service", Type: model.FieldTypeText, Required: true},
						{Name: "price", Label: "Price", Type: model.FieldTypeNumber, Required: true},
					}},
				},
				SubSteps: []model.SubStepDescriptor{
					{ID: "doctors", Title: "Doctors"},
					{ID: "services", Title: "Services"},
				},
				SubmitAction: model.ActionUpdateService,
				Toast: model.Toast{
					Success: "Staff and services saved.",
					Error:   "Could not save staff and services.",
				},
			},
			{
				ID:    "hospital-media",
				Title: "Photos",
				Fields: []model.FieldDescriptor{
					{Name: "photos", Label: "Photos", Type: model.FieldTypeFile, Required: true},
				},
				SubmitAction: model.ActionUploadMedia,
				Toast: model.Toast{
					Success: "Photos uploaded. Your listing is complete.",
					Error:   "Photo upload failed.",
				},
			},
		},
		Endpoints: map[string]Endpoint{
			"create":        {Method: "POST", URLTemplate: "/partner/hospitals"},
			"update":        {Method: "PUT", URLTemplate: "/partner/hospitals/{id}"},
			"updateService": {Method: "PUT", URLTemplate: "/partner/hospitals/{id}/services"},
			"uploadMedia":   {Method: "POST", URLTemplate: "/partner/hospitals/{id}/media"},
		},
	}
}
