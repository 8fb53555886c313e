package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML populates the configuration struct from a YAML file.
// Unknown keys in the file are rejected so typos fail loudly instead of
// silently falling back to zero values.
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()
	return decodeYAML(f, v)
}

// MustLoadYAML works like LoadYAML but panics on failure.
func MustLoadYAML[T any](path string, v *T) {
	if err := LoadYAML(path, v); err != nil {
		panic(err)
	}
}

func decodeYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
