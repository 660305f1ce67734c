package llm

import (
	"encoding/json"
	"fmt"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
)

// Suggestion is one model-generated feature idea.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ParseSuggestions parses a model response into an ordered list of
// suggestions. The response must contain a JSON array whose elements each
// carry a string "title" and "description"; anything else fails with a
// malformed-output error. There is no repair or re-prompt loop.
func ParseSuggestions(content string) ([]Suggestion, error) {
	raw := extractJSONArray(content)
	if raw == "" {
		return nil, apierror.Newf(apierror.KindMalformedOutput,
			"model response contains no JSON array")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, apierror.Newf(apierror.KindMalformedOutput,
			"model response is not a valid JSON array: %v", err)
	}

	suggestions := make([]Suggestion, 0, len(elements))
	for i, element := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(element, &fields); err != nil {
			return nil, apierror.Newf(apierror.KindMalformedOutput,
				"element %d is not a JSON object: %v", i, err)
		}

		title, err := stringField(fields, "title")
		if err != nil {
			return nil, apierror.Newf(apierror.KindMalformedOutput, "element %d: %v", i, err)
		}
		description, err := stringField(fields, "description")
		if err != nil {
			return nil, apierror.Newf(apierror.KindMalformedOutput, "element %d: %v", i, err)
		}

		suggestions = append(suggestions, Suggestion{Title: title, Description: description})
	}

	return suggestions, nil
}

// stringField decodes a required string field from a decoded JSON object.
func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %q field", key)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fmt.Errorf("field %q is not a string", key)
	}

	return value, nil
}
