/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MalformedError reports a response that is not the expected JSON shape.
type MalformedError struct {
	// Response is the raw model output.
	Response string
	Err      error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Validator is implemented by verdict types that check their own invariants.
type Validator interface {
	Validate() error
}

// ExtractJSON returns the JSON body of a model response. It prefers the
// first ```json fenced block, then strips bare fences, and finally narrows
// the text to the outermost object or array when prose surrounds it.
func ExtractJSON(text string) string {
	if body, ok := fencedBlock(text); ok {
		return body
	}

	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" || text[0] == '{' || text[0] == '[' {
		return text
	}
	for _, pair := range [...][2]string{{"{", "}"}, {"[", "]"}} {
		start, end := strings.Index(text, pair[0]), strings.LastIndex(text, pair[1])
		if start >= 0 && end > start {
			return text[start : end+1]
		}
	}
	return text
}

// fencedBlock returns the contents of the first ```json block whose fences
// sit on their own lines.
func fencedBlock(text string) (string, bool) {
	var body []string
	in := false
	for line := range strings.SplitSeq(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case !in && trimmed == "```json":
			in = true
		case in && trimmed == "```":
			return strings.TrimSpace(strings.Join(body, "\n")), true
		case in:
			body = append(body, line)
		}
	}
	if in {
		// Unterminated block; take what followed the opening fence.
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}
	return "", false
}

// Extract decodes the JSON body of text into T and runs T's Validate method
// when it has one. Every failure is a *MalformedError.
func Extract[T any](text string) (T, error) {
	var out T

	body := ExtractJSON(text)
	if body == "" {
		return out, &MalformedError{Response: text, Err: errors.New("empty response")}
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return out, &MalformedError{Response: text, Err: err}
	}

	var v any = out
	if _, ok := v.(Validator); !ok {
		v = &out
	}
	if val, ok := v.(Validator); ok {
		if err := val.Validate(); err != nil {
			return out, &MalformedError{Response: text, Err: err}
		}
	}
	return out, nil
}
