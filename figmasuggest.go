package figmasuggest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hellenic-development/figma-suggest/pkg/apierror"
	"github.com/hellenic-development/figma-suggest/pkg/extractor"
	"github.com/hellenic-development/figma-suggest/pkg/figma"
	"github.com/hellenic-development/figma-suggest/pkg/formatter"
	"github.com/hellenic-development/figma-suggest/pkg/llm"
)

// Options configures a pipeline run.
type Options struct {
	// AccessToken is the Figma personal access token.
	AccessToken string

	// File is the Figma file key or a full figma.com file URL.
	File string

	// CompletionKey is the API key for the chat-completions endpoint.
	CompletionKey string

	// Model, Temperature, and MaxTokens tune the completion request.
	// Zero values use the defaults (gpt-4, 0.2, 512).
	Model       string
	Temperature float64
	MaxTokens   int

	// RichContext switches from the name-only variant (top-level frame
	// names) to the full design context: pages, layers, components,
	// styles, and references.
	RichContext bool

	// IncludeComments fetches file comments and adds them to the context
	// as annotations. Only meaningful with RichContext.
	IncludeComments bool

	// MaxTextLength truncates layer text content in the rich context.
	// Zero uses extractor.DefaultMaxTextLength.
	MaxTextLength int

	// Logger receives progress messages. A nil Logger means silent operation.
	Logger Logger
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the pipeline output.
type Result struct {
	FileName    string
	Context     *extractor.DesignContext
	Suggestions []llm.Suggestion
	Markdown    string
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the pipeline: fetch the Figma file, extract a bounded design
// context, prompt the completion API, and parse the suggestions. Exactly one
// request goes to each API (plus an optional comments fetch); any failure is
// terminal for the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}

	fileKey, err := figma.ExtractFileKey(opts.File)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}

	client := figma.NewClient(opts.AccessToken)

	opts.logInfo("Fetching file %s from Figma...", fileKey)
	fileResp, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, err
	}
	opts.logInfo("File: %s", fileResp.Name)

	var dc *extractor.DesignContext
	var messages []llm.Message

	if opts.RichContext {
		opts.logInfo("Extracting design context...")
		dc = extractor.Extract(fileResp, extractor.Options{MaxTextLength: opts.MaxTextLength})

		if opts.IncludeComments {
			opts.logInfo("Fetching comments...")
			commentsResp, err := client.GetComments(ctx, fileKey)
			if err != nil {
				return nil, err
			}
			dc.Annotations = extractor.CommentAnnotations(commentsResp.Comments)
			opts.logInfo("Found %d annotation(s)", len(dc.Annotations))
		}

		if len(dc.Layers) == 0 && len(dc.FrameNames) == 0 {
			opts.logWarn("No layers were found in the Figma document")
			return emptyResult(dc, fileResp.Name), nil
		}

		contextJSON, err := json.Marshal(dc)
		if err != nil {
			return nil, fmt.Errorf("serialize design context: %w", err)
		}
		messages = llm.ContextPrompt(string(contextJSON))
	} else {
		opts.logInfo("Extracting frame names...")
		dc = extractor.NewDesignContext()
		dc.FrameNames = extractor.FrameNames(fileResp)

		if len(dc.FrameNames) == 0 {
			opts.logWarn("No frames were found in the Figma document")
			return emptyResult(dc, fileResp.Name), nil
		}
		opts.logInfo("Found %d top-level frame(s)", len(dc.FrameNames))

		messages = llm.FramesPrompt(dc.FrameNames)
	}

	caller := llm.NewClient(opts.CompletionKey, completionOptions(opts)...)

	opts.logInfo("Requesting feature suggestions from the model...")
	content, err := caller.Complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	suggestions, err := llm.ParseSuggestions(content)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Parsed %d suggestion(s)", len(suggestions))

	return &Result{
		FileName:    fileResp.Name,
		Context:     dc,
		Suggestions: suggestions,
		Markdown:    formatter.ToMarkdown(dc, suggestions, fileResp.Name),
	}, nil
}

// validate fails with a configuration error before any network call when a
// required option is absent.
func validate(opts Options) error {
	if opts.AccessToken == "" {
		return apierror.Newf(apierror.KindConfigurationMissing, "Figma access token is required")
	}
	if opts.File == "" {
		return apierror.Newf(apierror.KindConfigurationMissing, "Figma file key or URL is required")
	}
	if opts.CompletionKey == "" {
		return apierror.Newf(apierror.KindConfigurationMissing, "completion API key is required")
	}
	return nil
}

func completionOptions(opts Options) []llm.Option {
	var llmOpts []llm.Option
	if opts.Model != "" {
		llmOpts = append(llmOpts, llm.WithModel(opts.Model))
	}
	if opts.Temperature > 0 {
		llmOpts = append(llmOpts, llm.WithTemperature(opts.Temperature))
	}
	if opts.MaxTokens > 0 {
		llmOpts = append(llmOpts, llm.WithMaxTokens(opts.MaxTokens))
	}
	return llmOpts
}

func emptyResult(dc *extractor.DesignContext, fileName string) *Result {
	return &Result{
		FileName:    fileName,
		Context:     dc,
		Suggestions: []llm.Suggestion{},
		Markdown:    formatter.ToMarkdown(dc, nil, fileName),
	}
}
