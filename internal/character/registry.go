// Package character provides read-only access to the story cast.
package character

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/storyforge/storyserver/internal/platform/errors"
)

// Record describes one character in the cast.
type Record struct {
	Name       string `yaml:"name"`
	Backstory  string `yaml:"backstory"`
	Superpower string `yaml:"superpower"`
}

// Registry is an immutable, ordered character table. Lookups are
// case-insensitive and trim surrounding whitespace.
type Registry struct {
	records []Record
	index   map[string]int
}

// BuiltIn returns the registry with the demo cast.
func BuiltIn() *Registry {
	registry, err := New([]Record{
		{
			Name:       "Jack",
			Backstory:  "Jack is a former spy who now lives as a covert hero.",
			Superpower: "Invisibility and telepathy",
		},
		{
			Name:       "Ram",
			Backstory:  "Ram is an ancient warrior reborn in the modern world to fight for peace.",
			Superpower: "Invincible body and immense strength",
		},
		{
			Name:       "Robert",
			Backstory:  "Robert is a scientist who became part machine after a lab accident.",
			Superpower: "Power fused with advanced technology",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in character table is invalid: %v", err))
	}
	return registry
}

// New builds a registry from records, preserving their order.
func New(records []Record) (*Registry, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("character table is empty")
	}
	registry := &Registry{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			return nil, fmt.Errorf("character name is required")
		}
		if strings.TrimSpace(record.Backstory) == "" {
			return nil, fmt.Errorf("character %s: backstory is required", name)
		}
		if strings.TrimSpace(record.Superpower) == "" {
			return nil, fmt.Errorf("character %s: superpower is required", name)
		}
		key := strings.ToLower(name)
		if _, exists := registry.index[key]; exists {
			return nil, fmt.Errorf("character %s: duplicate name", name)
		}
		record.Name = name
		registry.index[key] = len(registry.records)
		registry.records = append(registry.records, record)
	}
	return registry, nil
}

// Load reads a YAML character file and builds a registry from it. The file
// replaces the built-in cast entirely.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read character file %s: %w", path, err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse character file %s: %w", path, err)
	}
	registry, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("character file %s: %w", path, err)
	}
	return registry, nil
}

// Names returns every character name in table order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.records))
	for i, record := range r.records {
		names[i] = record.Name
	}
	return names
}

// Backstory returns the backstory for name.
func (r *Registry) Backstory(name string) (string, error) {
	record, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return record.Backstory, nil
}

// Superpower returns the superpower for name.
func (r *Registry) Superpower(name string) (string, error) {
	record, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return record.Superpower, nil
}

func (r *Registry) lookup(name string) (Record, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, ok := r.index[key]; ok {
		return r.records[i], nil
	}
	return Record{}, errors.WithMetadata(
		errors.CodeCharacterNotFound,
		fmt.Sprintf("character not found: %s", strings.TrimSpace(name)),
		map[string]string{"character": strings.TrimSpace(name)},
	)
}
