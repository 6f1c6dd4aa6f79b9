/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas for judge verdict types, so the shape a
// judge must answer with is written once as a Go struct and quoted into the
// prompt from there.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
)

// reflector settings: only fields tagged `jsonschema:"required"` are
// required, and nested structs are inlined so the schema reads standalone.
var reflector = jsonschema.Reflector{
	RequiredFromJSONSchemaTags: true,
	ExpandedStruct:             true,
	AllowAdditionalProperties:  true,
	DoNotReference:             true,
}

var cache sync.Map // reflect.Type -> *jsonschema.Schema

// For returns the schema of T. Results are cached per type.
func For[T any]() *jsonschema.Schema {
	typ := reflect.TypeFor[T]()
	if s, ok := cache.Load(typ); ok {
		return s.(*jsonschema.Schema)
	}
	s := reflector.ReflectFromType(typ)
	// The draft URL is noise inside a prompt.
	s.Version = ""
	actual, _ := cache.LoadOrStore(typ, s)
	return actual.(*jsonschema.Schema)
}

// Text returns the schema of T as indented JSON.
func Text[T any]() (string, error) {
	b, err := json.MarshalIndent(For[T](), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema for %s: %w", reflect.TypeFor[T](), err)
	}
	return string(b), nil
}
