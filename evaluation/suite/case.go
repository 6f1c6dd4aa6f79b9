/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/items"
)

// Case is one extraction to evaluate.
type Case struct {
	Name     string               `yaml:"name"`
	Source   string               `yaml:"input_source"`
	Type     evaluation.InputType `yaml:"input_type"`
	Items    []any                `yaml:"extracted_items"`
	Expected []string             `yaml:"expected_items"`
}

// Input converts the case to engine input. Items round-trip through JSON so
// that they decode exactly like an extraction response.
func (c Case) Input() (evaluation.Input, error) {
	list := []items.Item{}
	if len(c.Items) > 0 {
		raw, err := json.Marshal(c.Items)
		if err != nil {
			return evaluation.Input{}, fmt.Errorf("case %q: encoding items: %w", c.Name, err)
		}
		if list, err = items.Parse(raw); err != nil {
			return evaluation.Input{}, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	in, err := evaluation.Input{
		Source:   c.Source,
		Type:     c.Type,
		Items:    list,
		Expected: c.Expected,
	}.Normalize()
	if err != nil {
		return in, fmt.Errorf("case %q: %w", c.Name, err)
	}
	return in, nil
}

// File is a parsed case file.
type File struct {
	// Threshold overrides the engine threshold when set.
	Threshold *float64 `yaml:"threshold"`
	Cases     []Case   `yaml:"cases"`
}

// Validate checks that cases are named uniquely and convert to input.
func (f *File) Validate() error {
	if len(f.Cases) == 0 {
		return errors.New("no cases")
	}
	if f.Threshold != nil {
		if err := evaluation.ValidateThreshold(*f.Threshold); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(f.Cases))
	for i, c := range f.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
		if _, err := c.Input(); err != nil {
			return err
		}
	}
	return nil
}

// Load parses and validates a case file.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding case file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid case file: %w", err)
	}
	return &f, nil
}

// LoadFile reads the case file at path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Load(fh)
}
