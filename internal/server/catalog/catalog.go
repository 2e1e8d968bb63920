// Package catalog provides the static, read-only table of destinations.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"gopkg.in/yaml.v3"
)

//go:embed destinations.yaml
var embedded []byte

type document struct {
	Destinations []models.Destination `yaml:"destinations"`
}

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	byKey  map[string]models.Destination
	byName map[string]models.Destination
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads a catalog from a YAML file. An empty path yields Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Destinations) == 0 {
		return nil, errors.New("catalog has no destinations")
	}

	c := &Catalog{
		byKey:  make(map[string]models.Destination, len(doc.Destinations)),
		byName: make(map[string]models.Destination, len(doc.Destinations)),
	}
	for i, d := range doc.Destinations {
		d.Key = strings.ToLower(strings.TrimSpace(d.Key))
		d.Name = strings.TrimSpace(d.Name)
		d.Description = strings.TrimSpace(d.Description)
		if d.Key == "" || d.Name == "" {
			return nil, fmt.Errorf("destination #%d: key and name are required", i+1)
		}
		if _, dup := c.byKey[d.Key]; dup {
			return nil, fmt.Errorf("destination %q: duplicate key", d.Key)
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("destination %q: duplicate name", d.Name)
		}
		c.byKey[d.Key] = d
		c.byName[d.Name] = d
	}
	return c, nil
}

// Lookup finds a destination by key, ignoring case.
func (c *Catalog) Lookup(key string) (models.Destination, bool) {
	d, ok := c.byKey[strings.ToLower(key)]
	return d, ok
}

// ByName finds a destination by its exact display name.
func (c *Catalog) ByName(name string) (models.Destination, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// All returns every destination ordered by key.
func (c *Catalog) All() []models.Destination {
	out := make([]models.Destination, 0, len(c.byKey))
	for _, d := range c.byKey {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Slug turns a display name into the URL path segment used for it,
// e.g. "Swiss Alps" becomes "swiss-alps".
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
