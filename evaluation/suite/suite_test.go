/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Macrina/Listify-Agent/agents/agenttrace"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/engine"
	"github.com/Macrina/Listify-Agent/evaluation/structure"
)

const caseFile = `
threshold: 0.7
cases:
  - name: grocery-note
    input_type: text
    input_source: "Buy 2 gallons of milk and call the dentist"
    extracted_items:
      - item_name: Buy milk
        category: groceries
        quantity: 2 gallons
        notes: Prefer organic
      - item_name: Call dentist
        category: tasks
        quantity: null
        notes: Schedule checkup
    expected_items: [milk, dentist]
  - name: broken
    input_type: image
    input_source: receipt.jpg
    extracted_items:
      - category: groceries
      - item_name: milk
        quantity: 2
`

// structuralEngine scores every metric with the structural validator, so
// outcomes depend only on the case.
func structuralEngine(t *testing.T, runIDs *sync.Map) *engine.Engine {
	t.Helper()
	eval := func(m evaluation.Metric) evaluation.Evaluator {
		return evaluation.Func(m, func(ctx context.Context, in evaluation.Input) evaluation.Result {
			if runIDs != nil {
				runIDs.Store(agenttrace.GetExecutionContext(ctx).RunID, true)
			}
			score := structure.Validate(in.Items).Score
			return evaluation.NewResult(score, 1, evaluation.DefaultThreshold, string(m), nil)
		})
	}
	e, err := engine.New(eval(evaluation.ExtractionAccuracy), eval(evaluation.StructureCompliance), eval(evaluation.ContentQuality))
	require.NoError(t, err)
	return e
}

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(caseFile))
	require.NoError(t, err)
	require.Len(t, f.Cases, 2)
	require.NotNil(t, f.Threshold)
	assert.Equal(t, 0.7, *f.Threshold)

	in, err := f.Cases[1].Input()
	require.NoError(t, err)
	assert.Equal(t, evaluation.InputImage, in.Type)
	require.Len(t, in.Items, 2)
	assert.False(t, in.Items[0].ItemName.Present())
	assert.Equal(t, "number", string(in.Items[1].Quantity.Kind()))

	in, err = f.Cases[0].Input()
	require.NoError(t, err)
	assert.True(t, in.Items[1].Quantity.IsNull())
	assert.Equal(t, []string{"milk", "dentist"}, in.Expected)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "no cases", doc: "cases: []", want: "no cases"},
		{name: "unnamed", doc: "cases:\n  - input_type: text", want: "has no name"},
		{name: "duplicate", doc: "cases:\n  - name: a\n  - name: a", want: "duplicate case name"},
		{name: "input type", doc: "cases:\n  - name: a\n    input_type: audio", want: "unknown input type"},
		{name: "threshold", doc: "threshold: 3\ncases:\n  - name: a", want: "threshold"},
		{name: "unknown field", doc: "cases:\n  - name: a\n    items: []", want: "items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() = %v, wanted error containing %q", err, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	f, err := Load(strings.NewReader(caseFile))
	require.NoError(t, err)

	var runIDs sync.Map
	tree := NewNamespacedObserver(func(string) *Collector { return NewCollector(nil) })
	r, err := NewRunner(structuralEngine(t, &runIDs), WithConcurrency(2), WithObserver(tree))
	require.NoError(t, err)

	report, err := r.Run(context.Background(), f.Cases)
	require.NoError(t, err)

	var names []string
	for _, o := range report.Outcomes {
		names = append(names, o.Case)
	}
	if diff := cmp.Diff([]string{"grocery-note", "broken"}, names); diff != "" {
		t.Errorf("outcome order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"broken"}, report.Failed()); diff != "" {
		t.Errorf("Failed() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0.7, report.Threshold)

	runIDs.Range(func(k, _ any) bool {
		if k != report.ID {
			t.Errorf("evaluator saw run ID %v, wanted = %v", k, report.ID)
		}
		return true
	})

	overall := tree.Child(string(evaluation.Overall))
	assert.Equal(t, int64(2), overall.Total())
	failures := overall.inner.Failures()
	require.Len(t, failures, 1)
	assert.True(t, strings.HasPrefix(failures[0], "broken: overall scored"), failures[0])
	assert.Len(t, overall.inner.Grades(), 2)
}

func TestRunInvalidCase(t *testing.T) {
	r, err := NewRunner(structuralEngine(t, nil))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), []Case{{Name: "bad", Type: "audio"}})
	assert.ErrorContains(t, err, `case "bad"`)
}

func TestRunCanceled(t *testing.T) {
	r, err := NewRunner(structuralEngine(t, nil))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, []Case{{Name: "a"}, {Name: "b"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerOptions(t *testing.T) {
	if _, err := NewRunner(nil); err == nil {
		t.Error("NewRunner(nil) = nil, wanted error")
	}
	if _, err := NewRunner(structuralEngine(t, nil), WithConcurrency(0)); err == nil {
		t.Error("WithConcurrency(0) = nil, wanted error")
	}
	var tree *NamespacedObserver[*Collector]
	if _, err := NewRunner(structuralEngine(t, nil), WithObserver(tree)); err == nil {
		t.Error("WithObserver(nil) = nil, wanted error")
	}
}

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	tree := NewNamespacedObserver(func(ns string) *Collector { return NewCollector(m.Observer(ns)) })

	r, err := NewRunner(structuralEngine(t, nil), WithObserver(tree))
	require.NoError(t, err)
	f, err := Load(strings.NewReader(caseFile))
	require.NoError(t, err)
	_, err = r.Run(context.Background(), f.Cases)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	cases, ok := namespaceValue(families, "listify_evaluation_cases_total", "/overall")
	require.True(t, ok, "no cases counter for /overall")
	assert.Equal(t, 2.0, cases)
	failures, ok := namespaceValue(families, "listify_evaluation_failures_total", "/overall")
	require.True(t, ok, "no failures counter for /overall")
	assert.Equal(t, 1.0, failures)
	_, ok = namespaceValue(families, "listify_evaluation_grade", "/overall")
	assert.True(t, ok, "no grade gauge for /overall")
}

// namespaceValue returns the value of the series of family name labeled
// with namespace ns.
func namespaceValue(families []*dto.MetricFamily, name, ns string) (float64, bool) {
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() != "namespace" || label.GetValue() != ns {
					continue
				}
				switch family.GetType() {
				case dto.MetricType_COUNTER:
					return m.GetCounter().GetValue(), true
				case dto.MetricType_GAUGE:
					return m.GetGauge().GetValue(), true
				}
			}
		}
	}
	return 0, false
}

func TestNamespacedObserverWalk(t *testing.T) {
	tree := NewNamespacedObserver(func(string) *Collector { return NewCollector(nil) })
	tree.Child("b").Increment()
	tree.Child("a").Child("x").Increment()

	var got []string
	tree.Walk(func(name string, _ *Collector) { got = append(got, name) })
	if diff := cmp.Diff([]string{"/", "/a", "/a/x", "/b"}, got); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
}
