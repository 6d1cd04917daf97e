package filter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-wizard/pkg/model"
)

func mustConfig(t *testing.T, companyType model.ListingType) Config {
	t.Helper()
	config, err := Default().Config(companyType)
	if err != nil {
		t.Fatalf("Config(%s) = %v", companyType, err)
	}
	return config
}

func TestActiveCountIgnoresDefaultsAndEmptyValues(t *testing.T) {
	controller := NewController(mustConfig(t, model.ListingRentACar))

	if got := controller.ActiveCount(); got != 0 {
		t.Fatalf("ActiveCount() on defaults = %d, want 0", got)
	}

	controller.Set("status", "active")
	controller.Set("price_min", 100.0)
	controller.Set("transmission", "") // empty, never counts
	if got := controller.ActiveCount(); got != 2 {
		t.Fatalf("ActiveCount() = %d, want 2", got)
	}

	// Setting a field back to its default removes it from the count.
	controller.Set("status", nil)
	if got := controller.ActiveCount(); got != 1 {
		t.Fatalf("ActiveCount() after reverting status = %d, want 1", got)
	}
}

func TestDirtyTracksDefaults(t *testing.T) {
	controller := NewController(mustConfig(t, model.ListingHotel))
	if controller.Dirty() {
		t.Fatal("fresh controller is dirty")
	}
	controller.Set("star_rating", "5")
	if !controller.Dirty() {
		t.Fatal("controller not dirty after a change")
	}
	controller.Clear()
	if controller.Dirty() {
		t.Fatal("controller dirty after Clear()")
	}
}

func TestClearRestoresDefaults(t *testing.T) {
	config := mustConfig(t, model.ListingRentACar)
	controller := NewController(config)

	controller.Set("status", "active")
	controller.Set("fuel_type", "diesel")
	controller.Clear()

	if got := controller.ActiveCount(); got != 0 {
		t.Fatalf("ActiveCount() after Clear() = %d, want 0", got)
	}
	values := controller.Values()
	if values["status"] != nil {
		t.Fatalf("status = %v, want default nil", values["status"])
	}
	if values["price_min"] != "" {
		t.Fatalf("price_min = %v, want default empty string", values["price_min"])
	}
}

func TestPreviewRunsWhileOpen(t *testing.T) {
	counts := make(chan int, 4)
	preview := func(ctx context.Context, values model.FormValues) (int, error) {
		if values["status"] == "active" {
			return 7, nil
		}
		return 0, nil
	}

	controller := NewController(mustConfig(t, model.ListingRentACar),
		WithPreview(preview, func(count int) { counts <- count }))
	controller.Open()
	controller.Set("status", "active")

	select {
	case got := <-counts:
		if got != 7 {
			t.Fatalf("preview count = %d, want 7", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("preview callback never fired")
	}
}

func TestPreviewDoesNotRunWhileClosed(t *testing.T) {
	var mu sync.Mutex
	ran := 0
	preview := func(ctx context.Context, values model.FormValues) (int, error) {
		mu.Lock()
		ran++
		mu.Unlock()
		return 1, nil
	}

	controller := NewController(mustConfig(t, model.ListingRentACar),
		WithPreview(preview, func(int) {}))
	controller.Set("status", "active")

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if ran != 0 {
		t.Fatalf("preview ran %d times with the modal closed", ran)
	}
}

// Clearing must cancel the in-flight preview before the values reset, so the
// badge cannot show a count for filters the user already discarded.
func TestClearCancelsInflightPreview(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	counts := make(chan int, 1)

	preview := func(ctx context.Context, values model.FormValues) (int, error) {
		close(started)
		select {
		case <-ctx.Done():
			close(cancelled)
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return 99, nil
		}
	}

	controller := NewController(mustConfig(t, model.ListingRentACar),
		WithPreview(preview, func(count int) { counts <- count }))
	controller.Open()
	controller.Set("status", "active")
	<-started
	controller.Clear()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("Clear() did not cancel the in-flight preview")
	}
	select {
	case got := <-counts:
		t.Fatalf("cancelled preview still reported count %d", got)
	case <-time.After(50 * time.Millisecond):
	}
}

// Reverting the only dirty field to its default must invalidate the preview
// started for the dirty values, exactly like Clear. Without that, the late
// response paints a count for a filter set the user already reverted.
func TestRevertingToDefaultsCancelsInflightPreview(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	counts := make(chan int, 1)

	preview := func(ctx context.Context, values model.FormValues) (int, error) {
		close(started)
		select {
		case <-ctx.Done():
			close(cancelled)
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return 42, nil
		}
	}

	controller := NewController(mustConfig(t, model.ListingRentACar),
		WithPreview(preview, func(count int) { counts <- count }))
	controller.Open()
	controller.Set("status", "active")
	<-started
	controller.Set("status", nil)

	if controller.Dirty() {
		t.Fatal("controller still dirty after reverting the only change")
	}
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("reverting to defaults did not cancel the in-flight preview")
	}
	select {
	case got := <-counts:
		t.Fatalf("stale preview still reported count %d", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseCancelsPreview(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})

	preview := func(ctx context.Context, values model.FormValues) (int, error) {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	}

	controller := NewController(mustConfig(t, model.ListingRentACar),
		WithPreview(preview, func(int) {}))
	controller.Open()
	controller.Set("status", "active")
	<-started
	controller.Close()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() did not cancel the in-flight preview")
	}
}

func TestApplyReturnsValuesAndCloses(t *testing.T) {
	controller := NewController(mustConfig(t, model.ListingTransfer))
	controller.Open()
	controller.Set("vehicle_type", "minivan")

	values := controller.Apply()
	if values["vehicle_type"] != "minivan" {
		t.Fatalf("Apply() values = %v", values)
	}
}

func TestDefaultCoversAllCompanyTypes(t *testing.T) {
	registry := Default()
	for _, companyType := range model.ListingTypes() {
		config, err := registry.Config(companyType)
		if err != nil {
			t.Errorf("Config(%s) = %v", companyType, err)
			continue
		}
		if len(config.Fields()) == 0 {
			t.Errorf("Config(%s) has no fields", companyType)
		}
		for _, field := range config.Fields() {
			if _, ok := config.Defaults[field.Name]; !ok {
				t.Errorf("%s: field %q has no default", companyType, field.Name)
			}
		}
	}
}

func TestRegistryUnknownCompanyType(t *testing.T) {
	if _, err := Default().Config("campground"); err == nil {
		t.Fatal("Config(campground) = nil error")
	}
}
