/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// segment is either literal text or a placeholder reference.
type segment struct {
	text        string
	placeholder string
}

// parse splits a template into literal and placeholder segments.
// Placeholders are {{name}} with optional inner whitespace, where name
// starts with a letter and continues with letters, digits or underscores.
func parse(template string) ([]segment, error) {
	var segs []segment
	for template != "" {
		open := strings.Index(template, "{{")
		if open < 0 {
			segs = append(segs, segment{text: template})
			break
		}
		if open > 0 {
			segs = append(segs, segment{text: template[:open]})
		}

		rest := template[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return nil, errors.New("unclosed placeholder: missing '}}'")
		}
		name := strings.TrimSpace(rest[:end])
		if !identifier(name) {
			return nil, fmt.Errorf("invalid placeholder name %q", name)
		}
		segs = append(segs, segment{placeholder: name})
		template = rest[end+2:]
	}
	return segs, nil
}

func identifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}
	return s != ""
}
