package validation

import "github.com/goliatone/go-wizard/pkg/model"

const dateLayout = "2006-01-02"

// The builders below assume the step order declared in pkg/listing. Each one
// starts from descriptor-derived required rules and tightens the fields that
// have domain constraints.

func rentACarSchemas(steps []model.StepDescriptor) []Schema {
	details := FromStep(steps[0]).
		Tag("year", "gte=1980,lte=2030").
		Tag("mileage", "gte=0").
		Tag("doors", "gte=2,lte=6").
		Tag("seats", "gte=1,lte=9").
		Tag("plate_number", "min=2,max=16")

	pricing := FromStep(steps[1]).
		Tag("low_price", "gt=0").
		Tag("medium_price", "gt=0").
		Tag("high_price", "gt=0").
		Tag("deposit", "gte=0").
		Cross(PriceOrder("low_price", "medium_price", "high_price"))

	calendar := FromStep(steps[2]).
		Tag("available_from", "datetime=2006-01-02").
		Tag("available_to", "datetime=2006-01-02").
		Tag("min_rental_days", "gte=1").
		Cross(DateOrder("available_from", "available_to", dateLayout))

	media := FromStep(steps[3])

	terms := FromStep(steps[4]).
		Tag("min_driver_age", "gte=18,lte=99").
		Tag("min_license_years", "gte=0,lte=80")

	return []Schema{details, pricing, calendar, media, terms}
}

func hotelSchemas(steps []model.StepDescriptor) []Schema {
	details := FromStep(steps[0]).
		Tag("name", "min=2,max=120").
		Tag("star_rating", "oneof=1 2 3 4 5").
		Tag("check_in_time", "datetime=15:04").
		Tag("check_out_time", "datetime=15:04")

	rooms := FromStep(steps[1])
	amenities := FromStep(steps[2])
	media := FromStep(steps[3])

	return []Schema{details, rooms, amenities, media}
}

func hospitalSchemas(steps []model.StepDescriptor) []Schema {
	details := FromStep(steps[0]).
		Tag("name", "min=2,max=120").
		Tag("facility_type", "oneof=hospital clinic dental")

	staff := FromStep(steps[1])
	media := FromStep(steps[2])

	return []Schema{details, staff, media}
}

func transferSchemas(steps []model.StepDescriptor) []Schema {
	details := FromStep(steps[0]).
		Tag("vehicle_type", "oneof=sedan minivan minibus bus").
		Tag("plate_number", "min=2,max=16").
		Tag("capacity", "gte=1,lte=60")

	driver := FromStep(steps[1]).
		Tag("driver_name", "min=2,max=80").
		Tag("license_number", "min=2,max=32")

	pricing := FromStep(steps[2]).
		Tag("base_price", "gt=0").
		Tag("price_per_km", "gte=0")

	media := FromStep(steps[3])

	return []Schema{details, driver, pricing, media}
}
