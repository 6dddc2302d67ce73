package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	errEmptyConfig   = errors.New("file is empty")
	errMultiDocument = errors.New("multiple YAML documents are not supported")
)

// Parse decodes exactly one YAML document into a Config. Unknown keys are
// rejected so typos in the file surface instead of being ignored.
func Parse(data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	err := dec.Decode(&cfg)
	if errors.Is(err, io.EOF) {
		err = errEmptyConfig
	}
	if err == nil {
		var extra yaml.Node
		switch next := dec.Decode(&extra); {
		case next == nil:
			err = errMultiDocument
		case !errors.Is(next, io.EOF):
			err = next
		}
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
