package main

import (
	"context"
	"fmt"
	"os"

	figmasuggest "github.com/hellenic-development/figma-suggest"
	"github.com/hellenic-development/figma-suggest/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	fileRef       string
	accessToken   string
	completionKey string
	model         string
	richContext   bool
	withComments  bool
	outputFile    string
	quiet         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-suggest",
		Short: "Generate feature suggestions from a Figma file",
		Long: "A tool that extracts the structure of a Figma design file and asks a completion " +
			"model for feature titles and descriptions suitable for a product requirements document",
		Run: run,
	}

	rootCmd.Flags().StringVarP(&fileRef, "file", "f", "", "Figma file key or URL (defaults to FIGMA_FILE_KEY)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (defaults to FIGMA_TOKEN)")
	rootCmd.Flags().StringVarP(&completionKey, "api-key", "k", "", "Completion API key (defaults to OPENAI_API_KEY)")
	rootCmd.Flags().StringVarP(&model, "model", "m", "", "Completion model name")
	rootCmd.Flags().BoolVar(&richContext, "rich", false, "Send the full design context (layers, components, styles) instead of frame names only")
	rootCmd.Flags().BoolVar(&withComments, "comments", false, "Include file comments as annotations (implies --rich)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write a markdown report to this file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-suggest version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n💡 Figma Feature Suggester")
	cyan.Println("===========================")
	cyan.Println()

	// Flags override the environment; anything still missing fails before
	// a single network call is made.
	cfg, _ := config.Load()
	if accessToken != "" {
		cfg.FigmaToken = accessToken
	}
	if fileRef != "" {
		cfg.FigmaFileKey = fileRef
	}
	if completionKey != "" {
		cfg.OpenAIKey = completionKey
	}
	if model != "" {
		cfg.Model = model
	}
	if err := cfg.Validate(); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts := figmasuggest.Options{
		AccessToken:     cfg.FigmaToken,
		File:            cfg.FigmaFileKey,
		CompletionKey:   cfg.OpenAIKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxTokens:       cfg.MaxTokens,
		RichContext:     richContext || withComments,
		IncludeComments: withComments,
	}
	if !quiet {
		opts.Logger = &cliLogger{}
	}

	result, err := figmasuggest.Run(context.Background(), opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Display the extracted context.
	dc := result.Context
	cyan.Println("\n📐 Extracted Context:")
	if len(dc.FrameNames) > 0 {
		fmt.Printf("  • Frames: %d\n", len(dc.FrameNames))
		for _, name := range dc.FrameNames {
			fmt.Printf("      - %s\n", name)
		}
	}
	if len(dc.PageNames) > 0 {
		fmt.Printf("  • Pages: %d\n", len(dc.PageNames))
	}
	if len(dc.Layers) > 0 {
		fmt.Printf("  • Layers: %d\n", len(dc.Layers))
	}
	if len(dc.Components) > 0 || len(dc.ComponentSets) > 0 {
		fmt.Printf("  • Components: %d (+%d sets)\n", len(dc.Components), len(dc.ComponentSets))
	}
	if len(dc.Styles) > 0 {
		fmt.Printf("  • Styles: %d\n", len(dc.Styles))
	}
	if len(dc.Annotations) > 0 {
		fmt.Printf("  • Annotations: %d\n", len(dc.Annotations))
	}

	// Display the suggestions.
	cyan.Println("\n✨ Suggested Features:")
	if len(result.Suggestions) == 0 {
		fmt.Println("  (none)")
	}
	for _, s := range result.Suggestions {
		green.Printf("  • %s", s.Title)
		fmt.Printf(": %s\n", s.Description)
	}
	fmt.Println()

	if outputFile != "" {
		green.Printf("💾 Writing report to %s... ", outputFile)
		if err := os.WriteFile(outputFile, []byte(result.Markdown), 0644); err != nil {
			red.Printf("✗\n")
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Println("✓")
	}
}

// cliLogger implements figmasuggest.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
