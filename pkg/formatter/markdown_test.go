package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hellenic-development/figma-suggest/pkg/extractor"
	"github.com/hellenic-development/figma-suggest/pkg/llm"
)

func TestToMarkdown(t *testing.T) {
	dc := extractor.NewDesignContext()
	dc.PageNames = []string{"Page 1"}
	dc.FrameNames = []string{"Login", "Signup"}
	dc.Components["10:1"] = extractor.Definition{Name: "Button/Primary", Description: "Primary call to action"}
	dc.Styles["20:1"] = extractor.StyleInfo{Name: "Brand/Blue", Kind: "fill"}
	dc.Annotations = []string{"Make the CTA bigger"}

	suggestions := []llm.Suggestion{
		{Title: "Password reset", Description: "Allow users to reset a forgotten password."},
	}

	md := ToMarkdown(dc, suggestions, "My Design")

	assert.Contains(t, md, "# Feature Suggestions - My Design")
	assert.Contains(t, md, "- **Password reset**: Allow users to reset a forgotten password.")
	assert.Contains(t, md, "- Login\n- Signup")
	assert.Contains(t, md, "- Button/Primary: Primary call to action")
	assert.Contains(t, md, "- Brand/Blue (fill)")
	assert.Contains(t, md, "> Make the CTA bigger")
}

func TestToMarkdownEmpty(t *testing.T) {
	md := ToMarkdown(extractor.NewDesignContext(), nil, "Empty File")

	assert.Contains(t, md, "# Feature Suggestions - Empty File")
	assert.Contains(t, md, "_No suggestions were generated._")
	assert.NotContains(t, md, "### Pages")
}
