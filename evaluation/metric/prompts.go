/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metric

import "github.com/Macrina/Listify-Agent/agents/promptbuilder"

var accuracyPrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator assessing the accuracy of list item extraction from {{input_type}} input.

Input Source:
{{input_source}}

Extracted Items:
{{items}}

Expected Items:
{{expected}}

Evaluate whether the extraction correctly identified and extracted ALL relevant list items from the input.

Consider:
1. **Completeness**: Are all visible or mentioned items extracted? None missing?
2. **Correctness**: Are item names accurately extracted, without typos, truncations or misinterpretations?
3. **Categorization**: Are categories appropriately assigned based on item content?
4. **False Positives**: Are there any items that do not exist in the input?
5. **Parsing Quality**: Are items properly structured and meaningful?

Score the extraction accuracy from 0.0 to 1.0:
- 1.0 = Perfect: All items extracted accurately, correctly categorized, no errors
- 0.8-0.9 = Excellent: Nearly all items extracted, minor issues
- 0.6-0.7 = Good: Most items extracted, some missing or incorrect
- 0.4-0.5 = Fair: Many items extracted but significant issues
- 0.0-0.3 = Poor: Major extraction errors, many missing items

Respond with a single JSON object matching this schema:
{{schema}}
`)

var structurePrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator assessing data structure compliance of extracted list items.

Extracted Items:
{{items}}

Required Structure:
- Each item MUST have these fields:
  * item_name (string, required): the main text or title of the item
  * category (string, required): one of the valid categories
  * quantity (string or null, optional): any number or quantity mentioned
  * notes (string or null, optional): additional details or context
  * explanation (string, optional): short explanation of the item

Valid Categories:
{{categories}}

Evaluate compliance from 0.0 to 1.0:
- 1.0 = Perfect: All items have all required fields, valid categories only
- 0.8-0.9 = Excellent: Minor issues (missing optional fields)
- 0.6-0.7 = Good: Some missing required fields or invalid categories
- 0.4-0.5 = Fair: Multiple compliance issues
- 0.0-0.3 = Poor: Major structural problems

Check for:
1. **Required Fields**: Do all items have item_name and category?
2. **Field Types**: Are data types correct (strings, nulls)?
3. **Valid Categories**: Are only allowed categories used?
4. **Field Completeness**: Are all mandatory fields present?

Report missing fields by zero-based item index. For each invalid category name the valid category it should be.

Respond with a single JSON object matching this schema:
{{schema}}
`)

var contentPrompt = promptbuilder.MustNewPrompt(`You are an expert evaluator assessing the relevance and quality of extracted list items from {{input_type}} input.

Input Source:
{{input_source}}

Extracted Items:
{{items}}

Evaluate whether the extracted items are:
1. **Relevant**: Actually present in or related to the input
2. **Useful**: Valuable to the user rather than noise
3. **Meaningful**: Explanations add context and help understand the item
4. **Well-Categorized**: Categories accurately reflect item purpose
5. **Complete**: Item names are descriptive enough to be actionable

Score content quality from 0.0 to 1.0:
- 1.0 = Perfect: All items highly relevant, useful, well explained
- 0.8-0.9 = Excellent: Mostly high quality, minor issues
- 0.6-0.7 = Good: Generally useful but some quality concerns
- 0.4-0.5 = Fair: Many items lack relevance or quality
- 0.0-0.3 = Poor: Low relevance, poor explanations, not useful

Also score relevance, usefulness, explanation quality and categorization accuracy, each from 0.0 to 1.0.

Respond with a single JSON object matching this schema:
{{schema}}
`)
