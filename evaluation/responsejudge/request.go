/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responsejudge

import (
	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
	"github.com/Macrina/Listify-Agent/agents/schema"
)

// Context lists the resources that really exist, so the judge can tell
// correct references from invented ones.
type Context struct {
	CodebaseFiles  []string `json:"codebase_files,omitempty" yaml:"codebase_files,omitempty"`
	ValidCommands  []string `json:"valid_commands,omitempty" yaml:"valid_commands,omitempty"`
	ValidEndpoints []string `json:"valid_endpoints,omitempty" yaml:"valid_endpoints,omitempty"`
}

func (c *Context) empty() bool {
	return c == nil || len(c.CodebaseFiles)+len(c.ValidCommands)+len(c.ValidEndpoints) == 0
}

// ToneRequest asks for a tone rating.
type ToneRequest struct {
	Query    string
	Response string
}

// Bind fills the tone rubric.
func (r ToneRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := bindExchange(p, r.Query, r.Response)
	if err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[ToneVerdict]())
}

// CorrectnessRequest asks for a correctness rating.
type CorrectnessRequest struct {
	Query    string
	Response string
	Context  *Context
}

// Bind fills the correctness rubric.
func (r CorrectnessRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := bindExchange(p, r.Query, r.Response)
	if err != nil {
		return nil, err
	}
	if p, err = bindContext(p, r.Context); err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[CorrectnessVerdict]())
}

// ToolCallingRequest asks for a tool calling rating.
type ToolCallingRequest struct {
	Query    string
	Response string
	Tools    []string
}

// Bind fills the tool calling rubric.
func (r ToolCallingRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := bindExchange(p, r.Query, r.Response)
	if err != nil {
		return nil, err
	}
	if len(r.Tools) == 0 {
		p, err = p.BindLiteral("tools", "(not listed)")
	} else {
		p, err = p.BindJSON("tools", r.Tools)
	}
	if err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[ToolCallingVerdict]())
}

// HallucinationRequest asks whether a response invents resources.
type HallucinationRequest struct {
	Response string
	Context  *Context
}

// Bind fills the hallucination rubric.
func (r HallucinationRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := p.BindJSON("response", r.Response)
	if err != nil {
		return nil, err
	}
	if p, err = bindContext(p, r.Context); err != nil {
		return nil, err
	}
	return p.BindJSON("schema", schema.For[HallucinationVerdict]())
}

func bindExchange(p *promptbuilder.Prompt, query, response string) (*promptbuilder.Prompt, error) {
	p, err := p.BindJSON("query", query)
	if err != nil {
		return nil, err
	}
	return p.BindJSON("response", response)
}

// bindContext renders the resource lists as YAML.
func bindContext(p *promptbuilder.Prompt, c *Context) (*promptbuilder.Prompt, error) {
	if c.empty() {
		return p.BindLiteral("context", "(none supplied)")
	}
	return p.BindYAML("context", c)
}
