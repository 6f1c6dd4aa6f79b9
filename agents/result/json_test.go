/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "bare object",
		in:   `  {"score": 0.9}  `,
		want: `{"score": 0.9}`,
	}, {
		name: "fenced block with prose",
		in:   "Here is my verdict:\n```json\n{\"score\": 0.9}\n```\nThanks!",
		want: `{"score": 0.9}`,
	}, {
		name: "fence without language",
		in:   "```\n{\"score\": 1}\n```",
		want: `{"score": 1}`,
	}, {
		name: "unterminated fence",
		in:   "```json\n{\"score\": 1}",
		want: `{"score": 1}`,
	}, {
		name: "object inside prose",
		in:   `The result is {"score": 0.4} as requested.`,
		want: `{"score": 0.4}`,
	}, {
		name: "array inside prose",
		in:   `Items: ["a", "b"].`,
		want: `["a", "b"]`,
	}, {
		name: "empty fenced block",
		in:   "```json\n```",
		want: "",
	}, {
		name: "no json at all",
		in:   "I cannot evaluate this.",
		want: "I cannot evaluate this.",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ExtractJSON(tt.in)); diff != "" {
				t.Errorf("ExtractJSON() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type verdict struct {
	Score *float64 `json:"score"`
}

func (v verdict) Validate() error {
	if v.Score == nil {
		return errors.New("missing score")
	}
	return nil
}

type ptrVerdict struct {
	Name string `json:"name"`
}

func (v *ptrVerdict) Validate() error {
	if v.Name == "" {
		return errors.New("missing name")
	}
	return nil
}

func TestExtract(t *testing.T) {
	got, err := Extract[verdict]("```json\n{\"score\": 0.5}\n```")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Score == nil || *got.Score != 0.5 {
		t.Errorf("Score = %v, wanted = 0.5", got.Score)
	}
}

func TestExtractMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		run  func(string) error
	}{
		{"not json", "no verdict here", func(s string) error { _, err := Extract[verdict](s); return err }},
		{"empty", "", func(s string) error { _, err := Extract[verdict](s); return err }},
		{"value receiver validation", `{"other": 1}`, func(s string) error { _, err := Extract[verdict](s); return err }},
		{"pointer receiver validation", `{}`, func(s string) error { _, err := Extract[ptrVerdict](s); return err }},
		{"wrong type", `{"score": "high"}`, func(s string) error { _, err := Extract[verdict](s); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(tt.in)
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, wanted *MalformedError", err)
			}
			if malformed.Response != tt.in {
				t.Errorf("Response = %q, wanted = %q", malformed.Response, tt.in)
			}
		})
	}
}

func TestExtractPointerVerdict(t *testing.T) {
	got, err := Extract[*ptrVerdict](`{"name": "ok"}`)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got.Name != "ok" {
		t.Errorf("Name = %q, wanted = %q", got.Name, "ok")
	}
}
