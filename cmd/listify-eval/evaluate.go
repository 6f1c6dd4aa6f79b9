/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
)

// evaluateRequest is the stdin document of the evaluate command.
type evaluateRequest struct {
	evaluation.Input
	Threshold *float64 `json:"threshold,omitempty"`
}

// Error types of the error document written by evaluate and respond.
const (
	errInvalidInput  = "invalid_input"
	errConfiguration = "configuration"
)

// commandError is written to stdout in place of the results.
type commandError struct {
	Message string `json:"error"`
	Type    string `json:"type"`
}

func (e *commandError) Error() string { return e.Message }

// reportErrors writes a commandError returned by run to stdout before
// returning it.
func reportErrors(run func(*cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		err := run(cmd)
		var ce *commandError
		if errors.As(err, &ce) {
			if werr := writeJSON(cmd.OutOrStdout(), ce); werr != nil {
				return werr
			}
		}
		return err
	}
}

func (a *app) evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one extraction read as JSON from stdin",
		Long: `Reads {"input_source", "input_type", "extracted_items", "expected_items",
"threshold"} from stdin and writes the four results as JSON. A judge failure
lowers the affected metric instead of failing the command.`,
		Args: cobra.NoArgs,
		RunE: reportErrors(a.evaluate),
	}
}

func (a *app) evaluate(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var req evaluateRequest
	if err := json.NewDecoder(cmd.InOrStdin()).Decode(&req); err != nil {
		return &commandError{Message: fmt.Sprintf("decoding request: %v", err), Type: errInvalidInput}
	}
	in, err := req.Input.Normalize()
	if err != nil {
		return &commandError{Message: err.Error(), Type: errInvalidInput}
	}
	threshold := a.cfg.Threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	if err := evaluation.ValidateThreshold(threshold); err != nil {
		return &commandError{Message: err.Error(), Type: errInvalidInput}
	}

	eng, err := a.newEngine(ctx, threshold)
	if err != nil {
		return &commandError{Message: fmt.Sprintf("creating engine: %v", err), Type: errConfiguration}
	}

	results := eng.Evaluate(ctx, in)
	clog.FromContext(ctx).With("score", results.Overall.Score).With("passed", results.Overall.Passed).
		Debug("Writing results")
	return writeJSON(cmd.OutOrStdout(), results)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
