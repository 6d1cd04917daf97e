package listing

import "github.com/goliatone/go-wizard/pkg/model"

func rentACarTable() Table {
	return Table{
		Steps: []model.StepDescriptor{
			{
				ID:          "car-details",
				Title:       "Vehicle details",
				Description: "Tell us about the car you want to list.",
				Fields: []model.FieldDescriptor{
					{Name: "brand_id", Label: "Brand", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "brands"},
					{Name: "model_id", Label: "Model", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "models", DependsOn: "brand_id"},
					{Name: "plate_number", Label: "Plate number", Type: model.FieldTypeText, Required: true},
					{Name: "country_id", Label: "Country", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "countries"},
					{Name: "city_id", Label: "City", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "cities", DependsOn: "country_id"},
					{Name: "year", Label: "Year", Type: model.FieldTypeNumber, Required: true},
					{Name: "mileage", Label: "Mileage (km)", Type: model.FieldTypeNumber, Required: true},
					{Name: "fuel_type", Label: "Fuel type", Type: model.FieldTypeSelect, Required: true, Options: []model.Option{
						{Value: "petrol", Label: "Petrol"},
						{Value: "diesel", Label: "Diesel"},
						{Value: "hybrid", Label: "Hybrid"},
						{Value: "electric", Label: "Electric"},
					}},
					{Name: "transmission", Label: "Transmission", Type: model.FieldTypeRadio, Required: true, Options: []model.Option{
						{Value: "manual", Label: "Manual"},
						{Value: "automatic", Label: "Automatic"},
					}},
					{Name: "doors", Label: "Doors", Type: model.FieldTypeNumber, Required: true},
					{Name: "seats", Label: "Seats", Type: model.FieldTypeNumber, Required: true},
					{Name: "location", Label: "Pickup location", Type: model.FieldTypeLocation, Required: true},
				},
				SubmitAction: model.ActionCreate,
				Toast: model.Toast{
					Success: "Vehicle saved.",
					Error:   "Could not save the vehicle.",
				},
			},
			{
				ID:          "car-pricing",
				Title:       "Pricing",
				Description: "Seasonal daily rates and deposit.",
				Fields: []model.FieldDescriptor{
					{Name: "low_price", Label: "Low season price", Type: model.FieldTypeNumber, Required: true},
					{Name: "medium_price", Label: "Medium season price", Type: model.FieldTypeNumber, Required: true},
					{Name: "high_price", Label: "High season price", Type: model.FieldTypeNumber, Required: true},
					{Name: "deposit", Label: "Deposit", Type: model.FieldTypeNumber},
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
				ID:    "car-calendar",
				Title: "Availability",
				Fields: []model.FieldDescriptor{
					{Name: "available_from", Label: "Available from", Type: model.FieldTypeDate, Required: true},
					{Name: "available_to", Label: "Available to", Type: model.FieldTypeDate, Required: true},
					{Name: "min_rental_days", Label: "Minimum rental days", Type: model.FieldTypeNumber},
				},
				SubmitAction: model.ActionUpdateCalendar,
				Toast: model.Toast{
					Success: "Availability saved.",
					Error:   "Could not save availability.",
				},
			},
			{
				ID:    "car-media",
				Title: "Photos",
				Fields: []model.FieldDescriptor{
					{Name: "photos", Label: "Photos", Type: model.FieldTypeFile, Required: true},
				},
				SubmitAction: model.ActionUploadMedia,
				Toast: model.Toast{
					Success: "Photos uploaded.",
					Error:   "Photo upload failed.",
				},
			},
			{
				ID:    "car-terms",
				Title: "Rental terms",
				Fields: []model.FieldDescriptor{
					{Name: "min_driver_age", Label: "Minimum driver age", Type: model.FieldTypeNumber, Required: true},
					{Name: "min_license_years", Label: "Minimum license years", Type: model.FieldTypeNumber, Required: true},
					{Name: "smoking_allowed", Label: "Smoking allowed", Type: model.FieldTypeCheckbox},
					{Name: "extras", Label: "Extras", Type: model.FieldTypeCheckboxGroup, Options: []model.Option{
						{Value: "gps", Label: "GPS"},
						{Value: "child_seat", Label: "Child seat"},
						{Value: "snow_chains", Label: "Snow chains"},
						{Value: "additional_driver", Label: "Additional driver"},
					}},
				},
				SubmitAction: model.ActionUpdateTerms,
				Toast: model.Toast{
					Success: "Terms saved. Your listing is complete.",
					Error:   "Could not save rental terms.",
				},
			},
		},
		Endpoints: map[string]Endpoint{
			"create":         {Method: "POST", URLTemplate: "/partner/cars"},
			"update":         {Method: "PUT", URLTemplate: "/partner/cars/{id}"},
			"updatePricing":  {Method: "PUT", URLTemplate: "/partner/cars/{id}/pricing"},
			"updateCalendar": {Method: "PUT", URLTemplate: "/partner/cars/{id}/calendar"},
			"uploadMedia":    {Method: "POST", URLTemplate: "/partner/cars/{id}/media"},
			"updateTerms":    {Method: "PUT", URLTemplate: "/partner/cars/{id}/terms"},
		},
	}
}
