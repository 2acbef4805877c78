package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarkariportal/backend/internal/importer"
	"github.com/sarkariportal/backend/internal/store"
)

var (
	importInputFile   string
	importDatabaseURL string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-create posts from a CSV file",
	Long:  "Bulk-create posts from a CSV file with the columns [title, department, lastDate, applyUrl, notificationUrl]. Sparse rows are skipped; failed rows are logged and the batch continues.",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to CSV file (required)")
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	_ = importCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	databaseURL := importDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	file, err := os.Open(importInputFile)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	rows, err := importer.ReadCSV(file)
	if err != nil {
		return fmt.Errorf("failed to read CSV: %w", err)
	}

	ctx := context.Background()
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	result, err := importer.ImportBatch(ctx, db, rows)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Created %d posts from %d rows\n", result.Created, len(rows))
	return nil
}
