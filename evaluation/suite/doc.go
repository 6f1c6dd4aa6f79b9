/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package suite runs the evaluation engine over a file of cases.

# Case files

Cases are written in YAML, one extraction per case:

	threshold: 0.7
	cases:
	  - name: grocery-note
	    input_type: text
	    input_source: "Buy 2 gallons of milk and call the dentist"
	    extracted_items:
	      - item_name: Buy milk
	        category: groceries
	        quantity: 2 gallons
	      - item_name: Call dentist
	        category: tasks
	        quantity: null
	    expected_items: [milk, dentist]

Items keep their JSON shape: a missing key, an explicit null and a value
of the wrong type are all preserved, so the structural validator sees the
case exactly as written.

# Running

A Runner evaluates cases with bounded concurrency under one run ID and
returns outcomes in case order:

	runner, err := suite.NewRunner(eng,
		suite.WithConcurrency(4),
		suite.WithObserver(tree))
	report, err := runner.Run(ctx, file.Cases)

# Observers

Every outcome is reported to an Observer tree with one namespace per
metric ("/extraction_accuracy", "/overall", ...). Each namespace counts
cases, receives the metric score as a grade, and receives a failure for
every case that did not pass. Collector keeps failures and grades for
reports; MetricsObserver exports them to Prometheus.
*/
package suite
