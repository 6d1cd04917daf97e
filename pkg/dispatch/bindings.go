package dispatch

import (
	"github.com/goliatone/go-wizard/pkg/httpcap"
	"github.com/goliatone/go-wizard/pkg/listing"
	"github.com/goliatone/go-wizard/pkg/model"
)

// Default builds a dispatcher with the standard bindings for the four
// built-in listing types. The payload shapers mirror the field lists the
// listing tables declare per step.
func Default(registry *listing.Registry, doer httpcap.Doer, options ...Option) *Dispatcher {
	d := New(registry, doer, options...)
	registerRentACar(d)
	registerHotel(d)
	registerHospital(d)
	registerTransfer(d)
	return d
}

func registerRentACar(d *Dispatcher) {
	t := model.ListingRentACar
	d.MustRegister(t, model.ActionCreate, Binding{
		Endpoint: "create",
		Payload: PickWithActor("partner_id",
			"brand_id", "model_id", "plate_number", "country_id", "city_id",
			"year", "mileage", "fuel_type", "transmission", "doors", "seats", "location"),
	})
	d.MustRegister(t, model.ActionUpdate, Binding{
		Endpoint: "update",
		Payload: Pick(
			"brand_id", "model_id", "plate_number", "country_id", "city_id",
			"year", "mileage", "fuel_type", "transmission", "doors", "seats", "location"),
	})
	d.MustRegister(t, model.ActionUpdatePricing, Binding{
		Endpoint: "updatePricing",
		Payload:  Pick("low_price", "medium_price", "high_price", "deposit", "currency"),
	})
	d.MustRegister(t, model.ActionUpdateCalendar, Binding{
		Endpoint: "updateCalendar",
		Payload:  Pick("available_from", "available_to", "min_rental_days"),
	})
	d.MustRegister(t, model.ActionUploadMedia, Binding{
		Endpoint: "uploadMedia",
		Payload:  Pick("photos"),
	})
	d.MustRegister(t, model.ActionUpdateTerms, Binding{
		Endpoint: "updateTerms",
		Payload:  Pick("min_driver_age", "min_license_years", "smoking_allowed", "extras"),
	})
}

func registerHotel(d *Dispatcher) {
	t := model.ListingHotel
	d.MustRegister(t, model.ActionCreate, Binding{
		Endpoint: "create",
		Payload: PickWithActor("partner_id",
			"name", "star_rating", "country_id", "city_id", "address",
			"location", "check_in_time", "check_out_time"),
	})
	d.MustRegister(t, model.ActionUpdate, Binding{
		Endpoint: "update",
		Payload: Pick(
			"name", "star_rating", "country_id", "city_id", "address",
			"location", "check_in_time", "check_out_time"),
	})
	d.MustRegister(t, model.ActionUpdateInformations, Binding{
		Endpoint: "updateInformations",
		Payload:  Pick("rooms"),
	})
	d.MustRegister(t, model.ActionUpdateExtras, Binding{
		Endpoint: "updateExtras",
		Payload:  Pick("amenities", "pets_allowed"),
	})
	d.MustRegister(t, model.ActionUploadMedia, Binding{
		Endpoint: "uploadMedia",
		Payload:  Pick("photos"),
	})
}

func registerHospital(d *Dispatcher) {
	t := model.ListingHospital
	d.MustRegister(t, model.ActionCreate, Binding{
		Endpoint: "create",
		Payload: PickWithActor("partner_id",
			"name", "facility_type", "country_id", "city_id", "address",
			"location", "emergency_support"),
	})
	d.MustRegister(t, model.ActionUpdate, Binding{
		Endpoint: "update",
		Payload: Pick(
			"name", "facility_type", "country_id", "city_id", "address",
			"location", "emergency_support"),
	})
	d.MustRegister(t, model.ActionUpdateService, Binding{
		Endpoint: "updateService",
		Payload:  Pick("doctors", "services"),
	})
	d.MustRegister(t, model.ActionUploadMedia, Binding{
		Endpoint: "uploadMedia",
		Payload:  Pick("photos"),
	})
}

func registerTransfer(d *Dispatcher) {
	t := model.ListingTransfer
	d.MustRegister(t, model.ActionCreate, Binding{
		Endpoint: "create",
		Payload: PickWithActor("partner_id",
			"vehicle_type", "plate_number", "capacity", "country_id",
			"pickup_city_id", "dropoff_city_id"),
	})
	d.MustRegister(t, model.ActionUpdate, Binding{
		Endpoint: "update",
		Payload: Pick(
			"vehicle_type", "plate_number", "capacity", "country_id",
			"pickup_city_id", "dropoff_city_id"),
	})
	d.MustRegister(t, model.ActionUpdateDriver, Binding{
		Endpoint: "updateDriver",
		Payload:  Pick("driver_name", "driver_phone", "license_number", "languages"),
	})
	d.MustRegister(t, model.ActionUpdatePricing, Binding{
		Endpoint: "updatePricing",
		Payload:  Pick("base_price", "price_per_km", "currency"),
	})
	d.MustRegister(t, model.ActionUploadMedia, Binding{
		Endpoint: "uploadMedia",
		Payload:  Pick("photos"),
	})
}
