/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package structure scores how well an item list conforms to the item schema,
// without consulting a model.
package structure

import (
	"fmt"
	"strings"

	"github.com/Macrina/Listify-Agent/items"
)

// Credit awarded per check. The four credits sum to 1.
const (
	NameCredit     = 0.4
	CategoryCredit = 0.4
	QuantityCredit = 0.1
	NotesCredit    = 0.1
)

// InvalidCategory records a text category outside the registry.
type InvalidCategory struct {
	Item     int            `json:"item"`
	Category string         `json:"invalid_category"`
	ShouldBe items.Category `json:"should_be"`
}

// TypeError records an attribute holding the wrong JSON type.
type TypeError struct {
	Item  int    `json:"item"`
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// Issues lists every defect found, by zero-based item index.
type Issues struct {
	MissingItemName []int             `json:"missing_item_name"`
	MissingCategory []int             `json:"missing_category"`
	InvalidCategory []InvalidCategory `json:"invalid_category"`
	TypeErrors      []TypeError       `json:"type_errors"`
}

// Count returns the total number of defects.
func (i Issues) Count() int {
	return len(i.MissingItemName) + len(i.MissingCategory) + len(i.InvalidCategory) + len(i.TypeErrors)
}

// Report is the outcome of Validate.
type Report struct {
	// Score is the mean per-item score, 0 for an empty list.
	Score float64 `json:"score"`
	// ItemScores holds each item's share of the available credit.
	ItemScores []float64 `json:"item_scores"`
	Issues     Issues    `json:"issues"`
}

// Validate scores list against the item schema. It has no failure mode.
//
// Every item is checked for a non-empty text name, a registry category, and
// quantity and notes that are missing, null or text. An item's score is the
// credit it earned over the credit of the checks evaluated, which is always
// all four, so an absent category costs the same as an invalid one.
func Validate(list []items.Item) Report {
	r := Report{
		ItemScores: make([]float64, 0, len(list)),
		Issues: Issues{
			MissingItemName: []int{},
			MissingCategory: []int{},
			InvalidCategory: []InvalidCategory{},
			TypeErrors:      []TypeError{},
		},
	}
	if len(list) == 0 {
		return r
	}

	var total float64
	for i, it := range list {
		s := r.checkItem(i, it)
		r.ItemScores = append(r.ItemScores, s)
		total += s
	}
	r.Score = total / float64(len(list))
	return r
}

func (r *Report) checkItem(i int, it items.Item) float64 {
	var earned, possible float64

	possible += NameCredit
	switch it.ItemName.Kind() {
	case items.KindText:
		if strings.TrimSpace(it.ItemName.String()) != "" {
			earned += NameCredit
		} else {
			r.Issues.MissingItemName = append(r.Issues.MissingItemName, i)
		}
	case items.KindMissing, items.KindNull:
		r.Issues.MissingItemName = append(r.Issues.MissingItemName, i)
	default:
		r.Issues.TypeErrors = append(r.Issues.TypeErrors, typeError(i, "item_name", it.ItemName, "text"))
	}

	possible += CategoryCredit
	switch it.Category.Kind() {
	case items.KindText:
		label := it.Category.String()
		switch {
		case strings.TrimSpace(label) == "":
			r.Issues.MissingCategory = append(r.Issues.MissingCategory, i)
		case items.Category(label).Valid():
			earned += CategoryCredit
		default:
			r.Issues.InvalidCategory = append(r.Issues.InvalidCategory, InvalidCategory{
				Item:     i,
				Category: label,
				ShouldBe: items.Suggest(label),
			})
		}
	case items.KindMissing, items.KindNull:
		r.Issues.MissingCategory = append(r.Issues.MissingCategory, i)
	default:
		r.Issues.TypeErrors = append(r.Issues.TypeErrors, typeError(i, "category", it.Category, "text"))
	}

	for _, opt := range []struct {
		name   string
		field  items.Field
		credit float64
	}{
		{"quantity", it.Quantity, QuantityCredit},
		{"notes", it.Notes, NotesCredit},
	} {
		possible += opt.credit
		switch opt.field.Kind() {
		case items.KindMissing, items.KindNull, items.KindText:
			earned += opt.credit
		default:
			r.Issues.TypeErrors = append(r.Issues.TypeErrors, typeError(i, opt.name, opt.field, "text or null"))
		}
	}

	return earned / possible
}

func typeError(i int, field string, f items.Field, want string) TypeError {
	return TypeError{
		Item:  i,
		Field: field,
		Issue: fmt.Sprintf("expected %s, got %s", want, f.Kind()),
	}
}
