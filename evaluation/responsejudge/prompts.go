/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responsejudge

import "github.com/Macrina/Listify-Agent/agents/promptbuilder"

var tonePrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator assessing the tone appropriateness of AI agent responses.

User Query: {{query}}
Agent Response: {{response}}

Rate the tone appropriateness on a scale of 1-5:
5 = Excellent: Professional, helpful, empathetic, clear
4 = Good: Professional with minor issues
3 = Average: Adequate but could be better
2 = Poor: Unprofessional or confusing
1 = Very Poor: Inappropriate or unhelpful

Consider professionalism and politeness, empathy and understanding, clarity and helpfulness, and appropriateness for the context.

Respond with a single JSON object matching this schema:
{{schema}}
`)

var correctnessPrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator assessing the correctness of AI agent responses.

User Query: {{query}}
Agent Response: {{response}}

Context Information:
{{context}}

Rate the correctness on a scale of 1-5:
5 = Excellent: 100% accurate, complete, actionable
4 = Good: Mostly accurate with minor errors
3 = Average: Generally correct with some issues
2 = Poor: Multiple errors or incomplete
1 = Very Poor: Major errors or misleading

Consider factual accuracy, completeness, actionability of instructions, technical correctness, and alignment with the available resources.

Respond with a single JSON object matching this schema:
{{schema}}
`)

var toolCallingPrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator assessing tool calling accuracy in AI agent responses.

User Query: {{query}}
Agent Response: {{response}}
Available Tools: {{tools}}

Rate the tool calling accuracy on a scale of 1-5:
5 = Excellent: Perfect tool selection, efficient usage, safe
4 = Good: Correct tools with minor inefficiencies
3 = Average: Generally correct tool usage
2 = Poor: Suboptimal or incorrect tool selection
1 = Very Poor: Wrong tools or dangerous usage

Consider tool selection, usage efficiency, safety, and parameter correctness.

Respond with a single JSON object matching this schema:
{{schema}}
`)

var hallucinationPrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator detecting hallucinations in AI agent responses.

Agent Response: {{response}}

Available Resources:
{{context}}

Detect whether the response refers to files, commands, endpoints or features that do not exist.

Respond with a single JSON object matching this schema:
{{schema}}
`)
