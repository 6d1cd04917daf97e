package draft

import (
	"context"
	"testing"
)

func TestSubStepNavigability(t *testing.T) {
	ctx := context.Background()
	tracker := NewSubStepTracker(ctx, nil, "key", nil)

	if !tracker.Navigable("hotel-rooms", 0) {
		t.Fatal("index 0 must always be navigable")
	}
	if tracker.Navigable("hotel-rooms", 1) {
		t.Fatal("index 1 navigable before completing index 0")
	}

	tracker.Complete(ctx, "hotel-rooms", 0)
	if !tracker.Navigable("hotel-rooms", 1) {
		t.Fatal("index 1 not navigable after completing index 0")
	}
	if tracker.Navigable("hotel-rooms", 2) {
		t.Fatal("index 2 navigable after completing only index 0")
	}
}

func TestSubStepActivateRejectsUnreachable(t *testing.T) {
	ctx := context.Background()
	tracker := NewSubStepTracker(ctx, nil, "key", nil)

	if err := tracker.Activate(ctx, "hotel-rooms", 2); err == nil {
		t.Fatal("Activate(2) = nil, want error for unreachable index")
	}
	if err := tracker.Activate(ctx, "hotel-rooms", 0); err != nil {
		t.Fatalf("Activate(0) = %v", err)
	}
	tracker.Complete(ctx, "hotel-rooms", 0)
	if err := tracker.Activate(ctx, "hotel-rooms", 1); err != nil {
		t.Fatalf("Activate(1) after complete = %v", err)
	}
	if got := tracker.Active("hotel-rooms"); got != 1 {
		t.Fatalf("Active() = %d, want 1", got)
	}
}

func TestSubStepProgressIsPerStep(t *testing.T) {
	ctx := context.Background()
	tracker := NewSubStepTracker(ctx, nil, "key", nil)

	tracker.Complete(ctx, "hotel-rooms", 0)
	if tracker.Navigable("hospital-doctors", 1) {
		t.Fatal("progress on hotel-rooms leaked into hospital-doctors")
	}
}

func TestSubStepPersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	storage := NewMemory()
	key := "listing-wizard:add:hotel:ui"

	first := NewSubStepTracker(ctx, storage, key, nil)
	first.Complete(ctx, "hotel-rooms", 0)
	if err := first.Activate(ctx, "hotel-rooms", 1); err != nil {
		t.Fatalf("Activate() = %v", err)
	}

	second := NewSubStepTracker(ctx, storage, key, nil)
	if got := second.Active("hotel-rooms"); got != 1 {
		t.Fatalf("reloaded Active() = %d, want 1", got)
	}
	if !second.Navigable("hotel-rooms", 1) {
		t.Fatal("reloaded tracker lost completion progress")
	}
}

func TestSubStepClearResetsProgress(t *testing.T) {
	ctx := context.Background()
	storage := NewMemory()
	key := "listing-wizard:add:hotel:ui"

	tracker := NewSubStepTracker(ctx, storage, key, nil)
	tracker.Complete(ctx, "hotel-rooms", 0)
	tracker.Clear(ctx)

	if tracker.Navigable("hotel-rooms", 1) {
		t.Fatal("Clear() left index 1 navigable")
	}
	reloaded := NewSubStepTracker(ctx, storage, key, nil)
	if reloaded.Navigable("hotel-rooms", 1) {
		t.Fatal("Clear() left persisted progress behind")
	}
}

func TestSubStepCorruptStateFailsOpen(t *testing.T) {
	ctx := context.Background()
	storage := NewMemory()
	storage.Set(ctx, "bad", "{nope")

	tracker := NewSubStepTracker(ctx, storage, "bad", nil)
	if !tracker.Navigable("any", 0) {
		t.Fatal("fresh tracker must allow index 0")
	}
	if tracker.Navigable("any", 1) {
		t.Fatal("corrupt state granted progress")
	}
}
