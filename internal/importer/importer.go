// Package importer converts delimited bulk-upload rows into portal posts
// with deterministic defaults, one independent create per accepted row.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/sarkariportal/backend/internal/types"
)

// Creator is the slice of the store the importer needs.
type Creator interface {
	CreatePost(ctx context.Context, job types.Job) (*types.Job, error)
}

// Result summarizes one batch import. Skipped rows and failed creates are
// simply absent from the count.
type Result struct {
	Created int         `json:"created"`
	Records []types.Job `json:"records"`
}

// ReadCSV reads all data rows from a bulk-upload file, dropping the
// header row.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// RowToJob maps positional columns [title, department, lastDate, applyUrl,
// notificationUrl] into a publishable record. The second return is false
// when the row has fewer than two populated columns.
func RowToJob(cols []string, postDate string) (types.Job, bool) {
	populated := 0
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			populated++
		}
	}
	if populated < 2 {
		return types.Job{}, false
	}

	lastDate := colOr(cols, 2, "TBA")

	return types.Job{
		Title:      colOr(cols, 0, "Untitled CSV Post"),
		Department: colOr(cols, 1, "N/A"),
		Type:       types.TypeJob,
		PostDate:   postDate,
		LastDate:   lastDate,
		ShortInfo:  "Bulk uploaded via CSV.",

		VacancyDetails: []types.VacancyRow{
			{PostName: "See Notification", TotalPost: "N/A", Eligibility: "As per rules"},
		},
		ApplicationFee:      []types.FeeRow{{Category: "General", Fee: "0"}},
		ImportantDates:      []types.DateEntry{{Label: "Last Date", Date: lastDate}},
		AgeLimit:            []types.AgeLimitRow{},
		SelectionProcess:    []string{},
		PhysicalEligibility: []types.PhysicalRow{},
		Links: []types.Link{
			{Label: "Apply Online", URL: colOr(cols, 3, "#")},
			{Label: "Official Notification", URL: colOr(cols, 4, "#")},
		},
		ApplyOnlineURL:  colOr(cols, 3, "#"),
		NotificationURL: colOr(cols, 4, "#"),
	}, true
}

// ImportBatch converts rows and creates each accepted record. A failed
// create is logged and skipped; the batch never aborts.
func ImportBatch(ctx context.Context, creator Creator, rows [][]string) (Result, error) {
	postDate := time.Now().Format("02/01/2006")
	result := Result{Records: []types.Job{}}

	for i, cols := range rows {
		job, ok := RowToJob(cols, postDate)
		if !ok {
			continue
		}

		created, err := creator.CreatePost(ctx, job)
		if err != nil {
			log.Printf("[importer] row %d (%q) failed: %v", i+1, job.Title, err)
			continue
		}

		result.Created++
		result.Records = append(result.Records, *created)
	}

	return result, nil
}

func colOr(cols []string, i int, fallback string) string {
	if i < len(cols) {
		if v := strings.TrimSpace(cols[i]); v != "" {
			return v
		}
	}
	return fallback
}
