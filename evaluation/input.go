/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluation

import (
	"fmt"

	"github.com/Macrina/Listify-Agent/items"
)

// InputType is the kind of upstream source the items were extracted from.
type InputType string

const (
	InputImage InputType = "image"
	InputText  InputType = "text"
	InputURL   InputType = "url"
)

// Valid reports whether t is a known input type.
func (t InputType) Valid() bool {
	switch t {
	case InputImage, InputText, InputURL:
		return true
	}
	return false
}

// Input is one extraction to score.
type Input struct {
	Source   string       `json:"input_source"`
	Type     InputType    `json:"input_type"`
	Items    []items.Item `json:"extracted_items"`
	Expected []string     `json:"expected_items,omitempty"`
}

// Normalize fills the defaults of a decoded input: an empty type is text.
func (in Input) Normalize() (Input, error) {
	if in.Type == "" {
		in.Type = InputText
	}
	if !in.Type.Valid() {
		return in, fmt.Errorf("unknown input type %q (expected image, text or url)", in.Type)
	}
	return in, nil
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
