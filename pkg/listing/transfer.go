package listing

import "github.com/goliatone/go-wizard/pkg/model"

func transferTable() Table {
	return Table{
		Steps: []model.StepDescriptor{
			{
				ID:          "transfer-details",
				Title:       "Vehicle and route",
				Description: "The vehicle used for transfers and the route it serves.",
				Fields: []model.FieldDescriptor{
					{Name: "vehicle_type", Label: "Vehicle type", Type: model.FieldTypeSelect, Required: true, Options: []model.Option{
						{Value: "sedan", Label: "Sedan"},
						{Value: "minivan", Label: "Minivan"},
						{Value: "minibus", Label: "Minibus"},
						{Value: "bus", Label: "Bus"},
					}},
					{Name: "plate_number", Label: "Plate number", Type: model.FieldTypeText, Required: true},
					{Name: "capacity", Label: "Passenger capacity", Type: model.FieldTypeNumber, Required: true},
					{Name: "country_id", Label: "Country", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "countries"},
					{Name: "pickup_city_id", Label: "Pickup city", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "cities", DependsOn: "country_id"},
					{Name: "dropoff_city_id", Label: "Drop-off city", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "cities", DependsOn: "country_id"},
				},
				SubmitAction: model.ActionCreate,
				Toast: model.Toast{
					Success: "Transfer route saved.",
					Error:   "Could not save the transfer route.",
				},
			},
			{
				ID:    "transfer-driver",
				Title: "Driver",
				Fields: []model.FieldDescriptor{
					{Name: "driver_name", Label: "Driver name", Type: model.FieldTypeText, Required: true},
					{Name: "driver_phone", Label: "Driver phone", Type: model.FieldTypeText, Required: true},
					{Name: "license_number", Label: "License number", Type: model.FieldTypeText, Required: true},
					{Name: "languages", Label: "Spoken languages", Type: model.FieldTypeCheckboxGroup, Options: []model.Option{
						{Value: "en", Label: "English"},
						{Value: "de", Label: "German"},
						{Value: "ru", Label: "Russian"},
						{Value: "ar", Label: "Arabic"},
					}},
				},
				SubmitAction: model.ActionUpdateDriver,
				Toast: model.Toast{
					Success: "Driver saved.",
					Error:   "Could not save the driver.",
				},
			},
			{
				ID:    "transfer-pricing",
				Title: "Pricing",
				Fields: []model.FieldDescriptor{
					{Name: "base_price", Label: "Base price", Type: model.FieldTypeNumber, Required: true},
					{Name: "price_per_km", Label: "Price per km", Type: model.FieldTypeNumber},
					{Name: "currency", Label: "Currency", Type: model.FieldTypeSelect, Required: true, Options: []model.Option{
						{Value: "EUR", Label: "EUR"},
						{Value: "USD", Label: "USD"},
						{Value: "TRY", Label: "TRY"},
					}},
				},
				SubmitAction: model.ActionUpdatePricing,
				Toast: model.Toast{
					Success: "Pricing saved.",
					Error:   "Could not save pricing.",
				},
			},
			{
				ID:    "transfer-media",
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
			"create":        {Method: "POST", URLTemplate: "/partner/transfers"},
			"update":        {Method: "PUT", URLTemplate: "/partner/transfers/{id}"},
			"updateDriver":  {Method: "PUT", URLTemplate: "/partner/transfers/{id}/driver"},
			"updatePricing": {Method: "PUT", URLTemplate: "/partner/transfers/{id}/pricing"},
			"uploadMedia":   {Method: "POST", URLTemplate: "/partner/transfers/{id}/media"},
		},
	}
}
