// Package config loads default insertion parameters from an INI file.
//
// Example:
//
//	[sequence]
//	values   = 10, 20, 30, 40, 50
//	capacity = 6
//
//	[insert]
//	position = 2
//	value    = 25
//
// Keys that are absent keep their built-in defaults.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Section and key names.
const (
	SectionSequence = "sequence"
	SectionInsert   = "insert"

	KeyValues   = "values"
	KeyCapacity = "capacity"
	KeyPosition = "position"
	KeyValue    = "value"
)

// Config holds the insertion parameters.
type Config struct {
	Values   []int
	Capacity int
	Position int
	Value    int
}

// Default returns the built-in parameters: insert 25 at position 2 of
// {10, 20, 30, 40, 50} held in six slots.
func Default() *Config {
	return &Config{
		Values:   []int{10, 20, 30, 40, 50},
		Capacity: 6,
		Position: 2,
		Value:    25,
	}
}

// Load reads path on top of Default. An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := cfg.apply(f); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads INI data on top of Default.
func Parse(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	if err := cfg.apply(f); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) apply(f *ini.File) error {
	seq := f.Section(SectionSequence)
	if seq.HasKey(KeyValues) {
		values, err := seq.Key(KeyValues).StrictInts(",")
		if err != nil {
			return fmt.Errorf("%s.%s: %w", SectionSequence, KeyValues, err)
		}

		c.Values = values
		// A config that replaces the values without naming a capacity
		// gets the usual single spare slot.
		c.Capacity = 0
	}

	ints := []struct {
		section string
		key     string
		dst     *int
	}{
		{SectionSequence, KeyCapacity, &c.Capacity},
		{SectionInsert, KeyPosition, &c.Position},
		{SectionInsert, KeyValue, &c.Value},
	}

	for _, e := range ints {
		sec := f.Section(e.section)
		if !sec.HasKey(e.key) {
			continue
		}

		v, err := sec.Key(e.key).Int()
		if err != nil {
			return fmt.Errorf("%s.%s: %w", e.section, e.key, err)
		}

		*e.dst = v
	}

	return nil
}
