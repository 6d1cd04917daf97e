package listing

import "github.com/goliatone/go-wizard/pkg/model"

func hotelTable() Table {
	return Table{
		Steps: []model.StepDescriptor{
			{
				ID:          "hotel-details",
				Title:       "Hotel details",
				Description: "Basic information about the property.",
				Fields: []model.FieldDescriptor{
					{Name: "name", Label: "Hotel name", Type: model.FieldTypeText, Required: true},
					{Name: "star_rating", Label: "Star rating", Type: model.FieldTypeSelect, Required: true, Options: []model.Option{
						{Value: "1", Label: "1 star"},
						{Value: "2", Label: "2 stars"},
						{Value: "3", Label: "3 stars"},
						{Value: "4", Label: "4 stars"},
						{Value: "5", Label: "5 stars"},
					}},
					{Name: "country_id", Label: "Country", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "countries"},
					{Name: "city_id", Label: "City", Type: model.FieldTypeSelect, Required: true, DynamicOptionsKey: "cities", DependsOn: "country_id"},
					{Name: "address", Label: "Address", Type: model.FieldTypeText, Required: true},
					{Name: "location", Label: "Map location", Type: model.FieldTypeLocation, Required: true},
					{Name: "check_in_time", Label: "Check-in time", Type: model.FieldTypeTime, Required: true},
					{Name: "check_out_time", Label: "Check-out time", Type: model.FieldTypeTime, Required: true},
				},
				SubmitAction: model.ActionCreate,
				Toast: model.Toast{
					Success: "Hotel saved.",
					Error:   "Could not save the hotel.",
				},
			},
			{
				ID:          "hotel-rooms",
				Title:       "Rooms",
				Description: "Room types, occupancy, and rates.",
				Fields: []model.FieldDescriptor{
					{Name: "rooms", Label: "Rooms", Type: model.FieldTypeCustom, Required: true, CustomComponentKey: "roomCollection", Fields: []model.FieldDescriptor{
						{Name: "room_type", Label: "Room type", Type: model.FieldTypeText, Required: true},
						{Name: "capacity", Label: "Capacity", Type: model.FieldTypeNumber, Required: true},
						{Name: "nightly_rate", Label: "Nightly rate", Type: model.FieldTypeNumber, Required: true},
					}},
				},
				SubSteps: []model.SubStepDescriptor{
					{ID: "room-types", Title: "Room types"},
					{ID: "room-rates", Title: "Rates"},
				},
				SubmitAction: model.ActionUpdateInformations,
				Toast: model.Toast{
					Success: "Rooms saved.",
					Error:   "Could not save rooms.",
				},
			},
			{
				ID:    "hotel-amenities",
				Title: "Amenities",
				Fields: []model.FieldDescriptor{
					{Name: "amenities", Label: "Amenities", Type: model.FieldTypeCheckboxGroup, Required: true, Options: []model.Option{
						{Value: "wifi", Label: "Wi-Fi"},
						{Value: "pool", Label: "Pool"},
						{Value: "spa", Label: "Spa"},
						{Value: "parking", Label: "Parking"},
						{Value: "breakfast", Label: "Breakfast"},
					}},
					{Name: "pets_allowed", Label: "Pets allowed", Type: model.FieldTypeCheckbox},
				},
				SubmitAction: model.ActionUpdateExtras,
				Toast: model.Toast{
					Success: "Amenities saved.",
					Error:   "Could not save amenities.",
				},
			},
			{
				ID:    "hotel-media",
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
			"create":             {Method: "POST", URLTemplate: "/partner/hotels"},
			"update":             {Method: "PUT", URLTemplate: "/partner/hotels/:id"},
			"updateInformations": {Method: "PUT", URLTemplate: "/partner/hotels/:id/rooms"},
			"updateExtras":       {Method: "PUT", URLTemplate: "/partner/hotels/:id/amenities"},
			"uploadMedia":        {Method: "POST", URLTemplate: "/partner/hotels/:id/media"},
		},
	}
}
