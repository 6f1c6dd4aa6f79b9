/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluation

import (
	"errors"
	"testing"
)

func TestLikertNormalized(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{1, 0},
		{2, 0.25},
		{3, 0.5},
		{5, 1},
	}
	for _, tt := range tests {
		r := NewLikertResult(tt.score, 1, "", nil)
		if got := r.Normalized(); got != tt.want {
			t.Errorf("Normalized() of %v = %v, wanted = %v", tt.score, got, tt.want)
		}
	}
}

func TestLikertKeepsItsScale(t *testing.T) {
	r := NewLikertResult(4, 0.9, "clear and friendly", Details{"tone": "friendly"})
	if r.Score != 4 {
		t.Errorf("Score = %v, wanted = 4", r.Score)
	}

	converted := r.ToResult(0.7)
	if converted.Score != 0.75 {
		t.Errorf("ToResult().Score = %v, wanted = 0.75", converted.Score)
	}
	if !converted.Passed {
		t.Error("0.75 should pass 0.7")
	}
	if converted.Details["likert_score"] != 4.0 {
		t.Errorf("likert_score = %v, wanted = 4", converted.Details["likert_score"])
	}
	if converted.Details["tone"] != "friendly" {
		t.Errorf("tone detail was not carried over")
	}
}

func TestLikertClampAndFailure(t *testing.T) {
	if got := NewLikertResult(9, 2, "", nil); got.Score != LikertMax || got.Confidence != 1 {
		t.Errorf("NewLikertResult(9, 2) = %+v, wanted clamped values", got)
	}
	if got := NewLikertResult(0, 0, "", nil); got.Score != LikertMin {
		t.Errorf("NewLikertResult(0).Score = %v, wanted = %v", got.Score, LikertMin)
	}

	f := LikertFailure(errors.New("boom"))
	if f.Score != LikertNeutral || f.Confidence != 0 {
		t.Errorf("LikertFailure() = %+v, wanted neutral score and zero confidence", f)
	}
}
