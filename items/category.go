/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package items

import (
	"slices"
	"strings"
)

// Category is a list category label.
type Category string

const (
	Groceries Category = "groceries"
	Tasks     Category = "tasks"
	Contacts  Category = "contacts"
	Events    Category = "events"
	Inventory Category = "inventory"
	Ideas     Category = "ideas"
	Recipes   Category = "recipes"
	Shopping  Category = "shopping"
	Bills     Category = "bills"
	Other     Category = "other"
)

// registry is ordered; prompts and reports list categories in this order.
var registry = [...]Category{
	Groceries,
	Tasks,
	Contacts,
	Events,
	Inventory,
	Ideas,
	Recipes,
	Shopping,
	Bills,
	Other,
}

// aliases maps common free-form labels onto registry members.
var aliases = map[string]Category{
	"food":         Groceries,
	"grocery_list": Groceries,
	"todo":         Tasks,
	"todos":        Tasks,
	"to_do":        Tasks,
	"chores":       Tasks,
	"people":       Contacts,
	"appointments": Events,
	"meetings":     Events,
	"calendar":     Events,
	"stock":        Inventory,
	"notes":        Ideas,
	"cooking":      Recipes,
	"purchases":    Shopping,
	"payments":     Bills,
	"invoices":     Bills,
}

// Categories returns the registry labels in order.
func Categories() []Category {
	return slices.Clone(registry[:])
}

// Labels returns the registry labels as strings, in order.
func Labels() []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = string(c)
	}
	return out
}

// Valid reports whether c is an exact member of the registry.
func (c Category) Valid() bool {
	return slices.Contains(registry[:], c)
}

func (c Category) String() string {
	return string(c)
}

// Suggest proposes the registry label closest to label. Matching ignores
// case, surrounding space and separators, accepts singular forms and a small
// set of synonyms, and falls back to Other.
func Suggest(label string) Category {
	norm := strings.ToLower(strings.TrimSpace(label))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	if norm == "" {
		return Other
	}
	for _, c := range registry {
		if singular(string(c)) == singular(norm) {
			return c
		}
	}
	if c, ok := aliases[norm]; ok {
		return c
	}
	return Other
}

func singular(s string) string {
	if strings.HasSuffix(s, "ies") {
		return strings.TrimSuffix(s, "ies") + "y"
	}
	return strings.TrimSuffix(s, "s")
}
