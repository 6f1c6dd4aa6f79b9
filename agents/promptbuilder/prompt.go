/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// stringLiteral can only be satisfied by untyped string constants, which
// keeps request data out of template text.
type stringLiteral string

// Prompt is a parsed template plus the values bound so far.
type Prompt struct {
	segments []segment
	values   map[string]value
}

// NewPrompt parses a template literal.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	segs, err := parse(string(template))
	if err != nil {
		return nil, err
	}
	return &Prompt{segments: segs, values: map[string]value{}}, nil
}

// Placeholders returns the distinct placeholder names in template order.
func (p *Prompt) Placeholders() []string {
	var names []string
	for _, s := range p.segments {
		if s.placeholder != "" && !slices.Contains(names, s.placeholder) {
			names = append(names, s.placeholder)
		}
	}
	return names
}

// Unbound returns the placeholders that still need a value.
func (p *Prompt) Unbound() []string {
	var names []string
	for _, n := range p.Placeholders() {
		if _, ok := p.values[n]; !ok {
			names = append(names, n)
		}
	}
	return names
}

// BindLiteral fills name with a developer-written string.
func (p *Prompt) BindLiteral(name string, v stringLiteral) (*Prompt, error) {
	return p.bind(name, literal(v))
}

// BindJSON fills name with data encoded as indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, jsonValue{data: data})
}

// BindYAML fills name with data encoded as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, yamlValue{data: data})
}

func (p *Prompt) bind(name string, v value) (*Prompt, error) {
	if !slices.Contains(p.Placeholders(), name) {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if _, ok := p.values[name]; ok {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Prompt{segments: p.segments, values: maps.Clone(p.values)}
	next.values[name] = v
	return next, nil
}

// Build renders the prompt. It fails if any placeholder is unbound or a
// bound value cannot be encoded.
func (p *Prompt) Build() (string, error) {
	if missing := p.Unbound(); len(missing) > 0 {
		return "", fmt.Errorf("unbound placeholders: %s", strings.Join(missing, ", "))
	}

	rendered := make(map[string]string, len(p.values))
	for name, v := range p.values {
		s, err := v.render()
		if err != nil {
			return "", fmt.Errorf("rendering %q: %w", name, err)
		}
		rendered[name] = s
	}

	var sb strings.Builder
	for _, s := range p.segments {
		if s.placeholder == "" {
			sb.WriteString(s.text)
			continue
		}
		sb.WriteString(rendered[s.placeholder])
	}
	return sb.String(), nil
}
