package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkariportal/backend/internal/types"
)

type fakeCreator struct {
	created []types.Job
	failOn  map[string]error
	nextID  int
}

func (f *fakeCreator) CreatePost(_ context.Context, job types.Job) (*types.Job, error) {
	if err, ok := f.failOn[job.Title]; ok {
		return nil, err
	}
	f.nextID++
	job.ID = string(rune('0' + f.nextID))
	f.created = append(f.created, job)
	return &job, nil
}

func TestReadCSVDropsHeader(t *testing.T) {
	csvBody := "Title,Department,Last Date,Apply URL,Notification URL\n" +
		"SSC CGL 2026,SSC,25/01/2026,https://example.gov/apply,https://example.gov/notice.pdf\n" +
		"Railway ALP 2026,RRB,,,\n"

	rows, err := ReadCSV(strings.NewReader(csvBody))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SSC CGL 2026", rows[0][0])
	assert.Equal(t, "Railway ALP 2026", rows[1][0])
}

func TestReadCSVHeaderOnly(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("Title,Department\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRowToJobDefaults(t *testing.T) {
	job, ok := RowToJob([]string{"SSC CGL 2026", "SSC"}, "01/09/2026")
	require.True(t, ok)

	assert.Equal(t, "SSC CGL 2026", job.Title)
	assert.Equal(t, "SSC", job.Department)
	assert.Equal(t, types.TypeJob, job.Type)
	assert.Equal(t, "01/09/2026", job.PostDate)
	assert.Equal(t, "TBA", job.LastDate)
	assert.Equal(t, "Bulk uploaded via CSV.", job.ShortInfo)

	require.Len(t, job.VacancyDetails, 1)
	assert.Equal(t, types.VacancyRow{PostName: "See Notification", TotalPost: "N/A", Eligibility: "As per rules"}, job.VacancyDetails[0])
	require.Len(t, job.ApplicationFee, 1)
	assert.Equal(t, types.FeeRow{Category: "General", Fee: "0"}, job.ApplicationFee[0])
	require.Len(t, job.ImportantDates, 1)
	assert.Equal(t, types.DateEntry{Label: "Last Date", Date: "TBA"}, job.ImportantDates[0])

	assert.Equal(t, []types.Link{
		{Label: "Apply Online", URL: "#"},
		{Label: "Official Notification", URL: "#"},
	}, job.Links)
	assert.Empty(t, job.AgeLimit)
	assert.Empty(t, job.SelectionProcess)
}

func TestRowToJobFullRow(t *testing.T) {
	cols := []string{"UP Police 2026", "UP Police", "15/10/2026", "https://example.gov/apply", "https://example.gov/notice.pdf"}
	job, ok := RowToJob(cols, "01/09/2026")
	require.True(t, ok)

	assert.Equal(t, "15/10/2026", job.LastDate)
	assert.Equal(t, "15/10/2026", job.ImportantDates[0].Date)
	assert.Equal(t, "https://example.gov/apply", job.Links[0].URL)
	assert.Equal(t, "https://example.gov/notice.pdf", job.Links[1].URL)
	assert.Equal(t, "https://example.gov/apply", job.ApplyOnlineURL)
	assert.Equal(t, "https://example.gov/notice.pdf", job.NotificationURL)
}

func TestRowToJobSkipsSparseRows(t *testing.T) {
	tests := []struct {
		name string
		cols []string
	}{
		{"empty row", nil},
		{"single column", []string{"Only Title"}},
		{"one populated of many", []string{"Only Title", "", " ", ""}},
		{"all blank", []string{"", "  ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := RowToJob(tt.cols, "01/09/2026")
			assert.False(t, ok)
		})
	}
}

func TestImportBatchSkipsSparseRow(t *testing.T) {
	rows := [][]string{
		{"SSC CGL 2026", "SSC", "25/01/2026"},
		{"Only Title"},
		{"Railway ALP 2026", "RRB"},
	}

	creator := &fakeCreator{}
	result, err := ImportBatch(context.Background(), creator, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "SSC CGL 2026", result.Records[0].Title)
	assert.Equal(t, "Railway ALP 2026", result.Records[1].Title)
}

func TestImportBatchContinuesPastFailures(t *testing.T) {
	rows := [][]string{
		{"First Post", "Dept A"},
		{"Broken Post", "Dept B"},
		{"Third Post", "Dept C"},
	}

	creator := &fakeCreator{failOn: map[string]error{"Broken Post": errors.New("db down")}}
	result, err := ImportBatch(context.Background(), creator, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Len(t, creator.created, 2)
	assert.Equal(t, "First Post", creator.created[0].Title)
	assert.Equal(t, "Third Post", creator.created[1].Title)
}

func TestImportBatchEmpty(t *testing.T) {
	creator := &fakeCreator{}
	result, err := ImportBatch(context.Background(), creator, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Created)
	assert.NotNil(t, result.Records)
}
