/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package items

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is one entity extracted from an upstream source.
type Item struct {
	ItemName    Field `json:"item_name,omitzero"`
	Category    Field `json:"category,omitzero"`
	Quantity    Field `json:"quantity,omitzero"`
	Notes       Field `json:"notes,omitzero"`
	Explanation Field `json:"explanation,omitzero"`
}

// New returns an item with a name and category and no optional attributes.
func New(name string, category Category) Item {
	return Item{
		ItemName: Text(name),
		Category: Text(string(category)),
	}
}

// Name returns the item name, or the empty string when it is not text.
func (it Item) Name() string {
	return it.ItemName.String()
}

// Label returns the item's category when it is text.
func (it Item) Label() (Category, bool) {
	s, ok := it.Category.Text()
	return Category(s), ok
}

// Parse decodes a JSON array of items. A null document yields no items.
func Parse(data []byte) ([]Item, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var out []Item
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	return out, nil
}

// Names returns the text names of list, skipping items without one.
func Names(list []Item) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		if n, ok := it.ItemName.Text(); ok && n != "" {
			out = append(out, n)
		}
	}
	return out
}
