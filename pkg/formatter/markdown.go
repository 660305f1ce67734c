// Package formatter renders the extracted design context and the generated
// feature suggestions as a markdown report.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hellenic-development/figma-suggest/pkg/extractor"
	"github.com/hellenic-development/figma-suggest/pkg/llm"
)

// ToMarkdown transforms the extracted design context and the model's feature
// suggestions into a markdown document, ready to drop into a product
// requirements draft.
func ToMarkdown(dc *extractor.DesignContext, suggestions []llm.Suggestion, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Feature Suggestions - %s\n\n", fileName))
	sb.WriteString("Generated from the Figma file's structure and a completion model.\n\n")

	sb.WriteString("## Suggested Features\n\n")
	if len(suggestions) == 0 {
		sb.WriteString("_No suggestions were generated._\n\n")
	}
	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", s.Title, s.Description))
	}
	if len(suggestions) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("## Design Context\n\n")

	if len(dc.PageNames) > 0 {
		sb.WriteString("### Pages\n\n")
		for _, name := range dc.PageNames {
			sb.WriteString(fmt.Sprintf("- %s\n", name))
		}
		sb.WriteString("\n")
	}

	if len(dc.FrameNames) > 0 {
		sb.WriteString("### Frames\n\n")
		for _, name := range dc.FrameNames {
			sb.WriteString(fmt.Sprintf("- %s\n", name))
		}
		sb.WriteString("\n")
	}

	if len(dc.Components) > 0 {
		sb.WriteString("### Components\n\n")
		writeDefinitions(&sb, dc.Components)
	}

	if len(dc.ComponentSets) > 0 {
		sb.WriteString("### Component Sets\n\n")
		writeDefinitions(&sb, dc.ComponentSets)
	}

	if len(dc.Styles) > 0 {
		sb.WriteString("### Styles\n\n")
		ids := sortedKeys(dc.Styles)
		for _, id := range ids {
			style := dc.Styles[id]
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", style.Name, style.Kind))
		}
		sb.WriteString("\n")
	}

	if len(dc.Annotations) > 0 {
		sb.WriteString("### Designer Comments\n\n")
		for _, a := range dc.Annotations {
			sb.WriteString(fmt.Sprintf("> %s\n\n", a))
		}
	}

	if len(dc.Layers) > 0 {
		sb.WriteString(fmt.Sprintf("### Layers\n\n%d layers extracted.\n", len(dc.Layers)))
	}

	return sb.String()
}

// writeDefinitions renders a definition table sorted by ID for stable output.
func writeDefinitions(sb *strings.Builder, defs map[string]extractor.Definition) {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		def := defs[id]
		if def.Description != "" {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", def.Name, def.Description))
		} else {
			sb.WriteString(fmt.Sprintf("- %s\n", def.Name))
		}
	}
	sb.WriteString("\n")
}

func sortedKeys(m map[string]extractor.StyleInfo) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
