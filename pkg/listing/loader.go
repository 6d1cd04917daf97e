package listing

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wizard/pkg/model"
)

// configDocument is the YAML shape for an externally-defined listing table.
// It carries the same descriptors the built-in tables declare in Go.
type configDocument struct {
	ListingType model.ListingType      `yaml:"listingType"`
	Steps       []model.StepDescriptor `yaml:"steps"`
	Endpoints   map[string]Endpoint    `yaml:"endpoints"`
}

// LoadConfig parses a YAML listing definition and registers it. The parsed
// table goes through the same integrity validation as the built-in ones, so a
// malformed document fails here rather than mid-session.
func (r *Registry) LoadConfig(reader io.Reader) (model.ListingType, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("listing: read config: %w", err)
	}

	var doc configDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("listing: parse config: %w", err)
	}
	if doc.ListingType == "" {
		return "", fmt.Errorf("listing: config is missing listingType")
	}

	if err := r.Register(doc.ListingType, Table{Steps: doc.Steps, Endpoints: doc.Endpoints}); err != nil {
		return "", err
	}
	return doc.ListingType, nil
}
