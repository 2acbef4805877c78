package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parseNotice = `Staff Selection Commission CGL Recruitment 2026

Staff Selection Commission has released the Combined Graduate Level notification for graduates across India. Online applications are open on the official website.

Important Dates
Application Start Date: 01/12/2025
Last Date for Apply Online: 25/01/2026`

func TestHandleParseRules_Success(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(map[string]string{"rawText": parseNotice})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/parse-job-rules", strings.NewReader(string(body)))
	w := httptest.NewRecorder()

	s.handleParseRules(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ParsedData)
	assert.Equal(t, "Staff Selection Commission CGL Recruitment 2026", resp.ParsedData.Title)
	assert.Len(t, resp.ParsedData.ImportantDates, 2)
	assert.Empty(t, resp.Warning)
}

func TestHandleParseRules_ShortInput(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse-job-rules",
		strings.NewReader(`{"rawText": "too short"}`))
	w := httptest.NewRecorder()

	s.handleParseRules(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleParseRules_MissingText(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse-job-rules", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	s.handleParseRules(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleParseModel_NotConfigured(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parse-job",
		strings.NewReader(`{"rawText": "anything"}`))
	w := httptest.NewRecorder()

	s.handleParseModel(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
