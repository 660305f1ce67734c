package llm

import (
	"fmt"
	"strings"
)

// systemPrompt frames the model's role for feature generation.
const systemPrompt = "You are a helpful product manager."

// framesInstruction asks the model for feature suggestions from a plain list
// of design section names.
const framesInstruction = "The following is a list of design sections extracted from a Figma file. " +
	"For each section, suggest a concise feature title and a short description (one sentence) " +
	"suitable for inclusion in a product requirements document. " +
	"Respond with a JSON array where each element has 'title' and 'description' fields.\n" +
	"\nDesign sections:\n%s\n"

// contextInstruction asks the model for feature suggestions from the full
// structured design context.
const contextInstruction = "The following is a structured summary of a design file, extracted from Figma: " +
	"pages, frames, layers, component and style definitions, and designer comments. " +
	"Based on this design, suggest the features the product should provide, each with a concise title " +
	"and a short description (one sentence) suitable for inclusion in a product requirements document. " +
	"Respond with a JSON array where each element has 'title' and 'description' fields.\n" +
	"\nDesign summary (JSON):\n%s\n"

// FramesPrompt builds the chat messages for the name-only variant: the frame
// names are formatted as a bullet list inside the instruction template.
func FramesPrompt(frameNames []string) []Message {
	var sb strings.Builder
	for _, name := range frameNames {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(framesInstruction, strings.TrimRight(sb.String(), "\n"))},
	}
}

// ContextPrompt builds the chat messages for the rich variant, embedding the
// serialized design context.
func ContextPrompt(contextJSON string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(contextInstruction, contextJSON)},
	}
}
