package figmasuggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
)

func TestRunMissingConfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "missing access token",
			opts: Options{File: "ABC123", CompletionKey: "sk-test"},
		},
		{
			name: "missing file",
			opts: Options{AccessToken: "figd_token", CompletionKey: "sk-test"},
		},
		{
			name: "missing completion key",
			opts: Options{AccessToken: "figd_token", File: "ABC123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Fails during validation, before any network call is attempted.
			_, err := Run(context.Background(), tt.opts)
			require.Error(t, err)
			assert.Equal(t, apierror.KindConfigurationMissing, apierror.KindOf(err))
		})
	}
}

func TestRunRejectsInvalidFileReference(t *testing.T) {
	_, err := Run(context.Background(), Options{
		AccessToken:   "figd_token",
		File:          "https://www.example.com/file/ABC123",
		CompletionKey: "sk-test",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract file key")
}
