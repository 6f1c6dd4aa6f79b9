/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder assembles judge prompts from templates with named
// placeholders.
//
// A template is a developer-supplied literal in which {{name}} marks a value
// to fill in later. Templates are parsed once, usually into a package-level
// variable:
//
//	var rubric = promptbuilder.MustNewPrompt(`Score these items:
//	{{items}}
//	Respond using this schema: {{schema}}`)
//
// Each Bind method returns a new Prompt and leaves the receiver untouched, so
// one parsed template is safely shared by concurrent requests. Structured
// data is bound through an encoder (JSON or YAML) rather than spliced in as
// raw text, and only string literals written by the developer can be bound
// verbatim:
//
//	p, err := rubric.BindJSON("items", list)
//	...
//	text, err := p.Build() // fails if any placeholder is still unbound
//
// Request types implement [Bindable] so executors can bind a request to the
// template they were built with.
package promptbuilder
