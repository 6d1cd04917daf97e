package main

import (
	"errors"
	"testing"

	"github.com/goliatone/go-wizard/pkg/render"
	"github.com/goliatone/go-wizard/pkg/renderers/prompt"
)

func TestBuildRenderersResolvesPrompt(t *testing.T) {
	renderers := buildRenderers()

	renderer, err := renderers.Get(prompt.Name)
	if err != nil {
		t.Fatalf("Get(%q) = %v", prompt.Name, err)
	}
	if renderer.Name() != prompt.Name {
		t.Fatalf("renderer name = %q, want %q", renderer.Name(), prompt.Name)
	}
}

func TestBuildRenderersRejectsUnknownName(t *testing.T) {
	if _, err := buildRenderers().Get("web"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("Get(web) = %v, want ErrUnknownRenderer", err)
	}
}
