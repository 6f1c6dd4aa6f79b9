/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/evaluation/responsejudge"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// respondRequest is the stdin document of the respond command.
type respondRequest struct {
	Query    string                 `json:"query"`
	Response string                 `json:"response"`
	Tools    []string               `json:"tools,omitempty"`
	Context  *responsejudge.Context `json:"context,omitempty"`
}

// respondResults holds the result of each check that ran.
type respondResults struct {
	Tone          *evaluation.LikertResult `json:"tone,omitempty"`
	Correctness   *evaluation.LikertResult `json:"correctness,omitempty"`
	ToolCalling   *evaluation.LikertResult `json:"tool_calling,omitempty"`
	Hallucination *evaluation.Result       `json:"hallucination,omitempty"`
}

var allChecks = []string{
	responsejudge.CheckTone,
	responsejudge.CheckCorrectness,
	responsejudge.CheckToolCalling,
	responsejudge.CheckHallucination,
}

func (a *app) respondCmd() *cobra.Command {
	var checks []string
	cmd := &cobra.Command{
		Use:   "respond",
		Short: "Check an assistant response read as JSON from stdin",
		Long: `Reads {"query", "response", "tools", "context"} from stdin and rates the
response. Tone, correctness and tool calling use the 1-5 scale; the
hallucination check scores 1 when nothing was invented and 0 otherwise.`,
		Args: cobra.NoArgs,
		RunE: reportErrors(func(cmd *cobra.Command) error {
			return a.respond(cmd, checks)
		}),
	}
	cmd.Flags().StringSliceVar(&checks, "checks", allChecks, "checks to run")
	return cmd
}

func (a *app) respond(cmd *cobra.Command, checks []string) error {
	ctx := cmd.Context()
	checks = slices.Compact(slices.Sorted(slices.Values(checks)))
	for _, c := range checks {
		if !slices.Contains(allChecks, c) {
			return &commandError{Message: fmt.Sprintf("unknown check %q (expected one of %v)", c, allChecks), Type: errInvalidInput}
		}
	}

	var req respondRequest
	if err := json.NewDecoder(cmd.InOrStdin()).Decode(&req); err != nil {
		return &commandError{Message: fmt.Sprintf("decoding request: %v", err), Type: errInvalidInput}
	}
	if req.Response == "" {
		return &commandError{Message: "response is required", Type: errInvalidInput}
	}

	checker, err := a.newChecker(ctx)
	if err != nil {
		return &commandError{Message: fmt.Sprintf("creating checker: %v", err), Type: errConfiguration}
	}

	// Each check writes only its own field.
	var out respondResults
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range checks {
		g.Go(func() error {
			switch c {
			case responsejudge.CheckTone:
				r := checker.Tone(gctx, req.Query, req.Response)
				out.Tone = &r
			case responsejudge.CheckCorrectness:
				r := checker.Correctness(gctx, req.Query, req.Response, req.Context)
				out.Correctness = &r
			case responsejudge.CheckToolCalling:
				r := checker.ToolCalling(gctx, req.Query, req.Response, req.Tools)
				out.ToolCalling = &r
			case responsejudge.CheckHallucination:
				r := checker.Hallucinations(gctx, req.Response, req.Context)
				out.Hallucination = &r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
