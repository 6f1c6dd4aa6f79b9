/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metric

import (
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/Macrina/Listify-Agent/agents/schema"
	"github.com/Macrina/Listify-Agent/evaluation"
	"github.com/Macrina/Listify-Agent/items"
)

// SourceLimit is the number of characters of the input source sent to the
// judge.
const SourceLimit = 500

// AccuracyRequest asks for an extraction accuracy verdict.
type AccuracyRequest struct {
	Input evaluation.Input
}

// Bind fills the accuracy rubric.
func (r AccuracyRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := bindSource(p, r.Input)
	if err != nil {
		return nil, err
	}
	if p, err = bindItems(p, r.Input.Items); err != nil {
		return nil, err
	}
	if len(r.Input.Expected) == 0 {
		p, err = p.BindLiteral("expected", "(no reference list supplied)")
	} else {
		p, err = p.BindJSON("expected", r.Input.Expected)
	}
	if err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[AccuracyVerdict]())
}

// Validate rejects inputs of unknown type.
func (r AccuracyRequest) Validate() error {
	_, err := r.Input.Normalize()
	return err
}

// StructureRequest asks for a structure compliance verdict. The rubric
// only looks at the items.
type StructureRequest struct {
	Items []items.Item
}

// Bind fills the structure rubric.
func (r StructureRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := bindItems(p, r.Items)
	if err != nil {
		return nil, err
	}
	if p, err = p.BindJSON("categories", items.Labels()); err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[StructureVerdict]())
}

// ContentRequest asks for a content quality verdict.
type ContentRequest struct {
	Input evaluation.Input
}

// Bind fills the content rubric.
func (r ContentRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := bindSource(p, r.Input)
	if err != nil {
		return nil, err
	}
	if p, err = bindItems(p, r.Input.Items); err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[ContentVerdict]())
}

// Validate rejects inputs of unknown type.
func (r ContentRequest) Validate() error {
	_, err := r.Input.Normalize()
	return err
}

// bindSource fills input_type and the truncated input_source.
func bindSource(p *promptbuilder.Prompt, in evaluation.Input) (*promptbuilder.Prompt, error) {
	var err error
	// Only registry values reach the prompt verbatim.
	switch in.Type {
	case evaluation.InputImage:
		p, err = p.BindLiteral("input_type", "image")
	case evaluation.InputURL:
		p, err = p.BindLiteral("input_type", "url")
	default:
		p, err = p.BindLiteral("input_type", "text")
	}
	if err != nil {
		return nil, err
	}
	return p.BindJSON("input_source", evaluation.Truncate(in.Source, SourceLimit))
}

func bindItems(p *promptbuilder.Prompt, list []items.Item) (*promptbuilder.Prompt, error) {
	if list == nil {
		list = []items.Item{}
	}
	return p.BindJSON("items", list)
}
