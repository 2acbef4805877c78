package parsing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkariportal/backend/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

const modelInput = "UP Police Constable Recruitment 2026 notification released, apply online before the last date."

func TestModelExtractorSuccess(t *testing.T) {
	client := &fakeClient{response: `{
		"title": "UP Police Constable Recruitment 2026",
		"department": "Uttar Pradesh Police",
		"type": "job",
		"shortInfo": "UP Police invites online applications for Constable posts.",
		"importantDates": [{"label": "Last Date", "date": "15/10/2026"}]
	}`}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), modelInput)
	require.NoError(t, err)

	assert.Empty(t, result.Warning)
	assert.Equal(t, "UP Police Constable Recruitment 2026", result.Draft.Title)
	assert.Equal(t, "job", result.Draft.Type)
	require.Len(t, result.Draft.ImportantDates, 1)
	assert.Equal(t, "15/10/2026", result.Draft.ImportantDates[0].Date)
}

func TestModelExtractorWarnsOnMissingRequiredFields(t *testing.T) {
	client := &fakeClient{response: `{"department": "Uttar Pradesh Police"}`}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), modelInput)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warning)
	assert.Equal(t, "Uttar Pradesh Police", result.Draft.Department)
}

func TestModelExtractorWarnsOnSchemaViolation(t *testing.T) {
	// Parseable JSON with a property the schema rejects: still a success,
	// but flagged for review.
	client := &fakeClient{response: `{
		"title": "UP Police Constable Recruitment 2026",
		"shortInfo": "UP Police invites online applications.",
		"salary": "as per 7th CPC"
	}`}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), modelInput)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warning)
	assert.Equal(t, "UP Police Constable Recruitment 2026", result.Draft.Title)
}

func TestModelExtractorClearsUnknownType(t *testing.T) {
	client := &fakeClient{response: `{
		"title": "UP Board Syllabus 2026",
		"shortInfo": "Updated syllabus published for the coming session.",
		"type": "syllabus"
	}`}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), modelInput)
	require.NoError(t, err)

	assert.Empty(t, result.Draft.Type)
	assert.NotEmpty(t, result.Warning)
}

func TestModelExtractorServiceFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), modelInput)
	assert.Nil(t, result)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestModelExtractorMalformedResponse(t *testing.T) {
	client := &fakeClient{response: "I could not parse that notification, sorry."}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), modelInput)
	assert.Nil(t, result)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestModelExtractorGateRunsBeforeService(t *testing.T) {
	client := &fakeClient{response: "{}"}

	extractor := NewModelExtractor(client)
	result, err := extractor.Extract(context.Background(), "too short")
	assert.Nil(t, result)

	var insuff *InsufficientInputError
	assert.ErrorAs(t, err, &insuff)
	assert.Zero(t, client.calls)
}
