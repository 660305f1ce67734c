package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
)

func TestParseSuggestions(t *testing.T) {
	t.Run("plain JSON array", func(t *testing.T) {
		content := `[{"title":"Password reset","description":"Allow users to reset a forgotten password."}]`

		suggestions, err := ParseSuggestions(content)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "Password reset", suggestions[0].Title)
		assert.Equal(t, "Allow users to reset a forgotten password.", suggestions[0].Description)
	})

	t.Run("preserves order", func(t *testing.T) {
		content := `[
			{"title": "Login", "description": "Sign in with email."},
			{"title": "Signup", "description": "Create an account."}
		]`

		suggestions, err := ParseSuggestions(content)
		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "Login", suggestions[0].Title)
		assert.Equal(t, "Signup", suggestions[1].Title)
	})

	t.Run("markdown code fence", func(t *testing.T) {
		content := "Here are the features:\n```json\n[{\"title\": \"Search\", \"description\": \"Find designs quickly.\"}]\n```\n"

		suggestions, err := ParseSuggestions(content)
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "Search", suggestions[0].Title)
	})

	t.Run("trailing comma tolerated", func(t *testing.T) {
		content := `[{"title": "Search", "description": "Find designs quickly."},]`

		suggestions, err := ParseSuggestions(content)
		require.NoError(t, err)
		assert.Len(t, suggestions, 1)
	})

	t.Run("empty array", func(t *testing.T) {
		suggestions, err := ParseSuggestions("[]")
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("not JSON at all", func(t *testing.T) {
		_, err := ParseSuggestions("I could not find any features in this design.")
		require.Error(t, err)
		assert.Equal(t, apierror.KindMalformedOutput, apierror.KindOf(err))
	})

	t.Run("JSON object instead of array", func(t *testing.T) {
		_, err := ParseSuggestions(`{"title": "x", "description": "y"}`)
		require.Error(t, err)
		assert.Equal(t, apierror.KindMalformedOutput, apierror.KindOf(err))
	})

	t.Run("element missing title", func(t *testing.T) {
		_, err := ParseSuggestions(`[{"description": "no title here"}]`)
		require.Error(t, err)
		assert.Equal(t, apierror.KindMalformedOutput, apierror.KindOf(err))
	})

	t.Run("element missing description", func(t *testing.T) {
		_, err := ParseSuggestions(`[{"title": "no description here"}]`)
		require.Error(t, err)
		assert.Equal(t, apierror.KindMalformedOutput, apierror.KindOf(err))
	})

	t.Run("non-string title", func(t *testing.T) {
		_, err := ParseSuggestions(`[{"title": 42, "description": "numeric title"}]`)
		require.Error(t, err)
		assert.Equal(t, apierror.KindMalformedOutput, apierror.KindOf(err))
	})

	t.Run("element not an object", func(t *testing.T) {
		_, err := ParseSuggestions(`["just a string"]`)
		require.Error(t, err)
		assert.Equal(t, apierror.KindMalformedOutput, apierror.KindOf(err))
	})
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bare array",
			content: `[{"a": 1}]`,
			want:    `[{"a": 1}]`,
		},
		{
			name:    "array with surrounding prose",
			content: "Sure! Here you go: [{\"a\": 1}] Hope that helps.",
			want:    `[{"a": 1}]`,
		},
		{
			name:    "fenced array wins over fallback",
			content: "```json\n[{\"a\": 1}]\n```",
			want:    `[{"a": 1}]`,
		},
		{
			name:    "no array present",
			content: "no structured data here",
			want:    "",
		},
		{
			name:    "line comment stripped",
			content: "[\n{\"a\": 1} // the first\n]",
			want:    "[\n{\"a\": 1}\n]",
		},
		{
			name:    "url inside string survives",
			content: `[{"url": "http://example.com"}]`,
			want:    `[{"url": "http://example.com"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.content))
		})
	}
}
