package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarkariportal/backend/internal/llm"
	"github.com/sarkariportal/backend/internal/parsing"
)

var (
	parseInputFile string
	parseUseModel  bool
	parseAPIKey    string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a notification text file into a draft post",
	Long:  "Parse a raw notification text file into draft post JSON, using either the offline rule-based extractor or the model-assisted one.",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to notification text file (required)")
	parseCmd.Flags().BoolVar(&parseUseModel, "model", false, "Use the model-assisted extractor")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	rawText, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := context.Background()

	var extractor parsing.TextExtractor
	if parseUseModel {
		apiKey := parseAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		extractor = parsing.NewModelExtractor(client)
	} else {
		extractor = parsing.NewRuleExtractor()
	}

	result, err := extractor.Extract(ctx, string(rawText))
	if err != nil {
		return fmt.Errorf("failed to parse notification: %w", err)
	}

	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warning)
	}

	jsonBytes, err := json.MarshalIndent(result.Draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))

	return nil
}
