package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OptionsFileName is the name of the persisted options document.
const OptionsFileName = "options.config"

// Store is a flat key/value document backed by YAML.
type Store struct {
	values map[string]any
}

func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// LoadFromFile replaces the store contents with the document at path.
func (s *Store) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := s.LoadFromBytes(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// LoadFromBytes replaces the store contents with the given YAML document.
// An empty document is an error so callers can fall back to defaults.
func (s *Store) LoadFromBytes(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty config document")
	}
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return err
	}
	// A null document decodes to a nil map
	if values == nil {
		values = make(map[string]any)
	}
	s.values = values
	return nil
}

// SaveToFile writes the store as YAML to path.
func (s *Store) SaveToFile(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (s *Store) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}
	return data, nil
}

func (s *Store) SetValue(key string, value any) {
	s.values[key] = value
}

func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *Store) GetBool(key string, def bool) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return def
}

func (s *Store) GetInt(key string, def int) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

func (s *Store) GetFloat(key string, def float64) float64 {
	switch v := s.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}
