/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/engine"
	"github.com/Macrina/Listify-Agent/evaluation/suite"
)

func result(score float64) evaluation.Result {
	return evaluation.NewResult(score, 0.8, 0.7, "", nil)
}

func outcome(name string, a, s, c float64) suite.Outcome {
	ra, rs, rc := result(a), result(s), result(c)
	return suite.Outcome{
		Case: name,
		Results: engine.Results{
			ExtractionAccuracy:  ra,
			StructureCompliance: rs,
			ContentQuality:      rc,
			Overall:             engine.Aggregate(0.7, engine.DefaultWeights, ra, rs, rc),
		},
	}
}

func TestCases(t *testing.T) {
	r := &suite.Report{
		ID:        "run-1",
		Threshold: 0.7,
		Outcomes: []suite.Outcome{
			outcome("grocery-note", 0.9, 0.95, 0.85),
			outcome("receipt", 0.4, 0.55, 0.5),
		},
	}

	var buf bytes.Buffer
	if err := Cases(&buf, r); err != nil {
		t.Fatalf("Cases() = %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"Case", "Overall",
		"grocery-note", "0.90",
		"receipt", "0.40 " + failMark,
		"Run run-1: 1/2 cases passed at threshold 0.70",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Cases() output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "0.90 "+failMark) {
		t.Errorf("passing score marked as failed:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	tree := suite.NewNamespacedObserver(func(string) *suite.Collector { return suite.NewCollector(nil) })
	good := tree.Child("structure_compliance")
	for _, s := range []float64{0.9, 0.8} {
		good.Increment()
		good.Grade(s, "ok")
	}
	bad := tree.Child("overall")
	bad.Increment()
	bad.Grade(0.9, "fine")
	bad.Increment()
	bad.Grade(0.3, "poor")
	bad.Fail("receipt: overall scored 0.30")

	var buf bytes.Buffer
	below, err := Summary(&buf, tree, 0.7)
	if err != nil {
		t.Fatalf("Summary() = %v", err)
	}
	if !below {
		t.Error("Summary() below = false, wanted true")
	}
	got := buf.String()
	for _, want := range []string{
		"structure_compliance", "100.0%", "0.85",
		"overall", "50.0%", "0.60",
		"- overall: receipt: overall scored 0.30",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() output missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryAllPass(t *testing.T) {
	tree := suite.NewNamespacedObserver(func(string) *suite.Collector { return suite.NewCollector(nil) })
	child := tree.Child("overall")
	child.Increment()
	child.Grade(0.95, "great")

	var buf bytes.Buffer
	below, err := Summary(&buf, tree, 0.7)
	if err != nil {
		t.Fatalf("Summary() = %v", err)
	}
	if below {
		t.Errorf("Summary() below = true, wanted false:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Failures:") {
		t.Errorf("unexpected failures section:\n%s", buf.String())
	}
}
