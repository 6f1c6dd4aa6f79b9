/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewResult(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		confidence float64
		threshold  float64
		want       Result
	}{{
		name:       "passes at threshold",
		score:      0.7,
		confidence: 0.8,
		threshold:  0.7,
		want:       Result{Score: 0.7, Passed: true, Confidence: 0.8, Details: Details{}},
	}, {
		name:       "fails below threshold",
		score:      0.69,
		confidence: 0.8,
		threshold:  0.7,
		want:       Result{Score: 0.69, Confidence: 0.8, Details: Details{}},
	}, {
		name:       "clamps out of range values",
		score:      1.4,
		confidence: -2,
		threshold:  0.7,
		want:       Result{Score: 1, Passed: true, Details: Details{}},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewResult(tt.score, tt.confidence, tt.threshold, "", nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewResult() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFailure(t *testing.T) {
	got := Failure(errors.New("judge timeout"), nil)
	want := Result{
		Explanation: "Evaluation failed: judge timeout",
		Details:     Details{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Failure() mismatch (-want +got):\n%s", diff)
	}

	// Failures serialize with an empty details object, never null.
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if wantJSON := `{"score":0,"passed":false,"confidence":0,"explanation":"Evaluation failed: judge timeout","details":{}}`; string(b) != wantJSON {
		t.Errorf("Marshal() = %s, wanted = %s", b, wantJSON)
	}
}

func TestWithThreshold(t *testing.T) {
	r := NewResult(0.6, 0.5, 0.5, "", Details{"k": 1})
	if !r.Passed {
		t.Fatal("score 0.6 should pass threshold 0.5")
	}

	stricter := r.WithThreshold(0.9)
	if stricter.Passed {
		t.Error("WithThreshold(0.9) kept the pass flag")
	}
	if !r.Passed {
		t.Error("WithThreshold mutated the receiver")
	}
	stricter.Details["k"] = 2
	if r.Details["k"] != 1 {
		t.Error("WithThreshold shared the details map")
	}
}

func TestValidateThreshold(t *testing.T) {
	for _, ok := range []float64{0, 0.7, 1} {
		if err := ValidateThreshold(ok); err != nil {
			t.Errorf("ValidateThreshold(%v) = %v", ok, err)
		}
	}
	for _, bad := range []float64{-0.1, 1.01} {
		if err := ValidateThreshold(bad); err == nil {
			t.Errorf("ValidateThreshold(%v) should fail", bad)
		}
	}
}

func TestInputNormalize(t *testing.T) {
	in, err := Input{Source: "milk"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if in.Type != InputText {
		t.Errorf("Type = %q, wanted = %q", in.Type, InputText)
	}
	if _, err := (Input{Type: "video"}).Normalize(); err == nil {
		t.Error("Normalize() accepted an unknown input type")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"héllo", 2, "hé"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, wanted = %q", tt.in, tt.n, got, tt.want)
		}
	}
}
