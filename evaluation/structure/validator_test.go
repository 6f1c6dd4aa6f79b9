/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package structure

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Macrina/Listify-Agent/items"
)

const epsilon = 1e-9

func mustParse(t *testing.T, doc string) []items.Item {
	t.Helper()
	list, err := items.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return list
}

func TestValidateWellFormedList(t *testing.T) {
	list := mustParse(t, `[
		{"item_name": "Buy milk", "category": "groceries", "quantity": "2 gallons", "notes": "Prefer organic", "explanation": "listed first"},
		{"item_name": "Call dentist", "category": "tasks", "quantity": null, "notes": "Schedule checkup", "explanation": "reminder"}
	]`)

	r := Validate(list)
	if r.Score < 0.9 {
		t.Errorf("Score = %v, wanted >= 0.9", r.Score)
	}
	if n := r.Issues.Count(); n != 0 {
		t.Errorf("Issues.Count() = %d, wanted = 0: %+v", n, r.Issues)
	}
}

func TestValidateMissingFields(t *testing.T) {
	list := mustParse(t, `[{"category": "groceries"}, {"item_name": "milk"}]`)

	r := Validate(list)
	if r.Score >= 0.7 {
		t.Errorf("Score = %v, wanted < 0.7", r.Score)
	}
	if diff := cmp.Diff([]int{0}, r.Issues.MissingItemName); diff != "" {
		t.Errorf("MissingItemName mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, r.Issues.MissingCategory); diff != "" {
		t.Errorf("MissingCategory mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.6, 0.6}, r.ItemScores, cmp.Comparer(func(a, b float64) bool {
		return math.Abs(a-b) < epsilon
	})); diff != "" {
		t.Errorf("ItemScores mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateInvalidCategory(t *testing.T) {
	list := mustParse(t, `[{"item_name": "Eggs", "category": "invalid_category"}]`)

	r := Validate(list)
	want := []InvalidCategory{{Item: 0, Category: "invalid_category", ShouldBe: items.Other}}
	if diff := cmp.Diff(want, r.Issues.InvalidCategory); diff != "" {
		t.Errorf("InvalidCategory mismatch (-want +got):\n%s", diff)
	}
	if r.Score >= 1 {
		t.Errorf("Score = %v, wanted less than full credit", r.Score)
	}

	valid := Validate([]items.Item{items.New("Eggs", items.Groceries)})
	if valid.Score <= r.Score {
		t.Errorf("valid category scored %v, not above invalid category %v", valid.Score, r.Score)
	}
}

func TestValidateSuggestsCorrection(t *testing.T) {
	r := Validate(mustParse(t, `[{"item_name": "Eggs", "category": "Grocery"}]`))
	if len(r.Issues.InvalidCategory) != 1 {
		t.Fatalf("InvalidCategory = %v, wanted one entry", r.Issues.InvalidCategory)
	}
	if got := r.Issues.InvalidCategory[0].ShouldBe; got != items.Groceries {
		t.Errorf("ShouldBe = %q, wanted = %q", got, items.Groceries)
	}
}

func TestValidateTypeErrors(t *testing.T) {
	r := Validate(mustParse(t, `[{"item_name": 7, "category": ["tasks"], "quantity": 2, "notes": {"a": 1}}]`))

	want := []TypeError{
		{Item: 0, Field: "item_name", Issue: "expected text, got number"},
		{Item: 0, Field: "category", Issue: "expected text, got list"},
		{Item: 0, Field: "quantity", Issue: "expected text or null, got number"},
		{Item: 0, Field: "notes", Issue: "expected text or null, got object"},
	}
	if diff := cmp.Diff(want, r.Issues.TypeErrors); diff != "" {
		t.Errorf("TypeErrors mismatch (-want +got):\n%s", diff)
	}
	if r.Score != 0 {
		t.Errorf("Score = %v, wanted = 0", r.Score)
	}
}

func TestValidateEmpty(t *testing.T) {
	for _, list := range [][]items.Item{nil, {}} {
		r := Validate(list)
		if r.Score != 0 {
			t.Errorf("Score = %v, wanted = 0", r.Score)
		}
		if r.Issues.Count() != 0 {
			t.Errorf("Issues.Count() = %d, wanted = 0", r.Issues.Count())
		}
	}
}

func TestValidateBlankValues(t *testing.T) {
	r := Validate(mustParse(t, `[{"item_name": "  ", "category": ""}]`))
	if diff := cmp.Diff([]int{0}, r.Issues.MissingItemName); diff != "" {
		t.Errorf("MissingItemName mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, r.Issues.MissingCategory); diff != "" {
		t.Errorf("MissingCategory mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateBoundedAndOrderIndependent(t *testing.T) {
	pool := []items.Item{
		items.New("milk", items.Groceries),
		{Category: items.Text("tasks")},
		{ItemName: items.Text("x"), Category: items.Text("nope"), Quantity: items.JSON(`3`)},
		{ItemName: items.Null(), Notes: items.Text("n")},
		{ItemName: items.Text("call"), Category: items.Text("contacts"), Quantity: items.Null(), Notes: items.Null()},
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		list := make([]items.Item, 1+rng.IntN(8))
		for i := range list {
			list[i] = pool[rng.IntN(len(pool))]
		}

		got := Validate(list).Score
		if got < 0 || got > 1 {
			t.Fatalf("Score = %v, outside [0, 1]", got)
		}

		shuffled := append([]items.Item(nil), list...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if again := Validate(shuffled).Score; math.Abs(again-got) > epsilon {
			t.Fatalf("Score changed with order: %v vs %v", got, again)
		}
	}
}
