package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkariportal/backend/internal/importer"
)

func TestHandleBulkImport(t *testing.T) {
	csvBody := "Title,Department,Last Date,Apply URL,Notification URL\n" +
		"SSC CGL 2026,SSC,25/01/2026,https://ssc.gov.in/apply,https://ssc.gov.in/notice.pdf\n" +
		"Sparse Row,,,,\n" +
		"Railway ALP 2026,RRB,,,\n"

	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/bulk", strings.NewReader(csvBody))
	w := httptest.NewRecorder()

	s.handleBulkImport(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result importer.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "SSC CGL 2026", result.Records[0].Title)
	assert.Equal(t, "25/01/2026", result.Records[0].LastDate)
	assert.Len(t, s.store.posts, 2)
}

func TestHandleBulkImport_HeaderOnly(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/bulk",
		strings.NewReader("Title,Department\n"))
	w := httptest.NewRecorder()

	s.handleBulkImport(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result importer.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Zero(t, result.Created)
}
