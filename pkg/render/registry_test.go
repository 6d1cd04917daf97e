package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wizard/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string { return s.name }

func (s *stubRenderer) RenderField(ctx context.Context, field model.FieldDescriptor, current any, opts FieldOptions, onChange OnChange) error {
	return nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	renderer := &stubRenderer{name: "prompt"}
	if err := registry.Register(renderer); err != nil {
		t.Fatalf("Register() = %v", err)
	}

	got, err := registry.Get("prompt")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got != renderer {
		t.Fatal("Get() returned a different renderer")
	}
	if !registry.Has("prompt") {
		t.Fatal("Has(prompt) = false")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "prompt"}); err != nil {
		t.Fatalf("Register() = %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "prompt"}); err == nil {
		t.Fatal("duplicate Register() = nil, want error")
	}
}

func TestRegistryRejectsMissingName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Fatal("Register() accepted a renderer without a name")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("Register(nil) = nil, want error")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Get("web"); !errors.Is(err, ErrUnknownRenderer) {
		t.Fatalf("Get(web) = %v, want ErrUnknownRenderer", err)
	}

	registry.MustRegister(&stubRenderer{name: "prompt"})
	_, err := registry.Get("web")
	if !errors.Is(err, ErrUnknownRenderer) {
		t.Fatalf("Get(web) = %v, want ErrUnknownRenderer", err)
	}
	if !strings.Contains(err.Error(), "prompt") {
		t.Fatalf("Get(web) error %q does not name the registered renderers", err)
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "web"})
	registry.MustRegister(&stubRenderer{name: "prompt"})

	want := []string{"prompt", "web"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}
