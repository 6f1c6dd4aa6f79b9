/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package items defines the records produced by the list extraction pipeline
// and the fixed registry of category labels they may carry.
//
// Every attribute of an [Item] is held as a [Field], which keeps the value
// exactly as it appeared in the extraction JSON. That lets callers tell a
// missing attribute apart from an explicit null, and a text value apart from
// a number or an object:
//
//	list, err := items.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, it := range list {
//		if name, ok := it.ItemName.Text(); ok {
//			fmt.Println(name)
//		}
//	}
//
// Items are read-only inputs. Nothing in this module mutates them.
package items
