// Package figmasuggest turns a Figma design file into a list of feature
// suggestions. It fetches the file via the Figma API, extracts a bounded
// design context (frame names, or the full page/layer/component/style
// summary), prompts an OpenAI-compatible completion API, and parses the
// model's JSON reply into ordered {title, description} pairs.
//
// The CLI lives in cmd/figma-suggest; this root package exposes the same
// pipeline as a Go API so that callers can embed it in their own tools
// without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmasuggest:
//
//	import "github.com/hellenic-development/figma-suggest" // package figmasuggest
//
// # Quick start
//
//	result, err := figmasuggest.Run(context.Background(), figmasuggest.Options{
//	    AccessToken:   os.Getenv("FIGMA_TOKEN"),
//	    File:          "https://www.figma.com/design/ABC123/My-Design",
//	    CompletionKey: os.Getenv("OPENAI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range result.Suggestions {
//	    fmt.Printf("%s: %s\n", s.Title, s.Description)
//	}
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Context variants
//
// By default only top-level frame names are sent to the model. Set
// [Options.RichContext] to include every layer (with truncated text
// content), component and style definitions, and their references; set
// [Options.IncludeComments] to add the file's comments as annotations.
//
// # Failure model
//
// The pipeline is a single pass with no retries: every fetch, parse, or
// configuration failure is terminal and is classified via the
// pkg/apierror kinds so callers can pattern-match on the cause.
package figmasuggest
