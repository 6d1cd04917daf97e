package filter

import "github.com/goliatone/go-wizard/pkg/model"

// Default returns the registry preloaded with the built-in filter surfaces.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(model.ListingRentACar, rentACarFilters())
	r.MustRegister(model.ListingHotel, hotelFilters())
	r.MustRegister(model.ListingHospital, hospitalFilters())
	r.MustRegister(model.ListingTransfer, transferFilters())
	return r
}

func statusSection() Section {
	return Section{
		Title: "Status",
		Fields: []model.FieldDescriptor{
			{Name: "status", Label: "Status", Type: model.FieldTypeSelect, Options: []model.Option{
				{Value: "active", Label: "Active"},
				{Value: "pending", Label: "Pending review"},
				{Value: "paused", Label: "Paused"},
			}},
		},
	}
}

func priceSection() Section {
	return Section{
		Title: "Price",
		Fields: []model.FieldDescriptor{
			{Name: "price_min", Label: "Minimum price", Type: model.FieldTypeNumber},
			{Name: "price_max", Label: "Maximum price", Type: model.FieldTypeNumber},
		},
	}
}

func locationSection() Section {
	return Section{
		Title: "Location",
		Fields: []model.FieldDescriptor{
			{Name: "country_id", Label: "Country", Type: model.FieldTypeSelect, DynamicOptionsKey: "countries"},
			{Name: "city_id", Label: "City", Type: model.FieldTypeSelect, DynamicOptionsKey: "cities", DependsOn: "country_id"},
		},
	}
}

func rentACarFilters() Config {
	return Config{
		Sections: []Section{
			statusSection(),
			priceSection(),
			locationSection(),
			{
				Title: "Vehicle",
				Fields: []model.FieldDescriptor{
					{Name: "transmission", Label: "Transmission", Type: model.FieldTypeSelect, Options: []model.Option{
						{Value: "manual", Label: "Manual"},
						{Value: "automatic", Label: "Automatic"},
					}},
					{Name: "fuel_type", Label: "Fuel type", Type: model.FieldTypeSelect, Options: []model.Option{
						{Value: "petrol", Label: "Petrol"},
						{Value: "diesel", Label: "Diesel"},
						{Value: "hybrid", Label: "Hybrid"},
						{Value: "electric", Label: "Electric"},
					}},
				},
			},
		},
		Defaults: model.FormValues{
			"status":    nil,
			"price_min": "",
			"price_max": "",
		},
	}
}

func hotelFilters() Config {
	return Config{
		Sections: []Section{
			statusSection(),
			priceSection(),
			locationSection(),
			{
				Title: "Property",
				Fields: []model.FieldDescriptor{
					{Name: "star_rating", Label: "Star rating", Type: model.FieldTypeSelect, Options: []model.Option{
						{Value: "1", Label: "1 star"},
						{Value: "2", Label: "2 stars"},
						{Value: "3", Label: "3 stars"},
						{Value: "4", Label: "4 stars"},
						{Value: "5", Label: "5 stars"},
					}},
				},
			},
		},
		Defaults: model.FormValues{
			"status":    nil,
			"price_min": "",
			"price_max": "",
		},
	}
}

func hospitalFilters() Config {
	return Config{
		Sections: []Section{
			statusSection(),
			locationSection(),
			{
				Title: "Facility",
				Fields: []model.FieldDescriptor{
					{Name: "facility_type", Label: "Facility type", Type: model.FieldTypeSelect, Options: []model.Option{
						{Value: "hospital", Label: "Hospital"},
						{Value: "clinic", Label: "Clinic"},
						{Value: "dental", Label: "Dental center"},
					}},
					{Name: "emergency_support", Label: "24/7 emergency", Type: model.FieldTypeCheckbox},
				},
			},
		},
		Defaults: model.FormValues{
			"status": nil,
		},
	}
}

func transferFilters() Config {
	return Config{
		Sections: []Section{
			statusSection(),
			priceSection(),
			locationSection(),
			{
				Title: "Vehicle",
				Fields: []model.FieldDescriptor{
					{Name: "vehicle_type", Label: "Vehicle type", Type: model.FieldTypeSelect, Options: []model.Option{
						{Value: "sedan", Label: "Sedan"},
						{Value: "minivan", Label: "Minivan"},
						{Value: "minibus", Label: "Minibus"},
						{Value: "bus", Label: "Bus"},
					}},
				},
			},
		},
		Defaults: model.FormValues{
			"status":    nil,
			"price_min": "",
			"price_max": "",
		},
	}
}
