/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/Macrina/Listify-Agent/evaluation/report"
	"github.com/Macrina/Listify-Agent/evaluation/suite"
	"github.com/chainguard-dev/clog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func (a *app) suiteCmd() *cobra.Command {
	var (
		concurrency int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "suite FILE",
		Short: "Run a YAML file of evaluation cases",
		Long: `Evaluates every case of FILE and prints a table of scores per case and
per metric. Exits non-zero when any case fails overall.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSuite(cmd, args[0], concurrency, metricsFile)
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", a.cfg.Concurrency, "number of cases evaluated at once")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics of the run to this textfile")
	return cmd
}

func (a *app) runSuite(cmd *cobra.Command, path string, concurrency int, metricsFile string) error {
	ctx := cmd.Context()
	log := clog.FromContext(ctx).With("file", path)

	file, err := suite.LoadFile(path)
	if err != nil {
		return err
	}
	threshold := a.cfg.Threshold
	if file.Threshold != nil {
		threshold = *file.Threshold
	}

	eng, err := a.newEngine(ctx, threshold)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics := suite.NewMetrics(reg)
	tree := suite.NewNamespacedObserver(func(ns string) *suite.Collector {
		return suite.NewCollector(metrics.Observer(ns))
	})

	runner, err := suite.NewRunner(eng, suite.WithConcurrency(concurrency), suite.WithObserver(tree))
	if err != nil {
		return err
	}
	rep, err := runner.Run(ctx, file.Cases)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Cases(out, rep); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if _, err := report.Summary(out, tree, rep.Threshold); err != nil {
		return err
	}

	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		log.With("metrics_file", metricsFile).Info("Wrote run metrics")
	}

	if failed := rep.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d cases failed: %v", len(failed), len(rep.Outcomes), failed)
	}
	return nil
}
