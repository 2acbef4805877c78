package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkariportal/backend/internal/types"
)

func validPostBody() string {
	return `{
		"title": "SSC CGL 2026",
		"department": "Staff Selection Commission",
		"type": "job",
		"postDate": "01/09/2026",
		"shortInfo": "Combined Graduate Level recruitment 2026.",
		"importantDates": [{"label": "Last Date for Apply Online", "date": "25/01/2026"}],
		"applyOnlineUrl": "https://ssc.gov.in/apply",
		"notificationUrl": "https://ssc.gov.in/notice.pdf"
	}`
}

func TestHandleCreatePost_Success(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(validPostBody()))
	w := httptest.NewRecorder()

	s.handleCreatePost(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created types.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "1", created.ID)

	// Publish-time derivations ran before the store saw the record.
	assert.Equal(t, "25/01/2026", created.LastDate)
	require.Len(t, created.Links, 2)
	assert.Equal(t, types.Link{Label: "Official Notification", URL: "https://ssc.gov.in/notice.pdf"}, created.Links[0])
	assert.Equal(t, types.Link{Label: "Apply Online", URL: "https://ssc.gov.in/apply"}, created.Links[1])
	assert.NotNil(t, created.SelectionProcess)
}

func TestHandleCreatePost_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	s.handleCreatePost(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.store.posts, "nothing is persisted on a rejected request")
}

func TestHandleCreatePost_MissingRequiredField(t *testing.T) {
	body := `{
		"title": "SSC CGL 2026",
		"department": "SSC",
		"type": "job",
		"postDate": "01/09/2026",
		"applyOnlineUrl": "https://ssc.gov.in/apply",
		"notificationUrl": "https://ssc.gov.in/notice.pdf"
	}`
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleCreatePost(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.store.posts)
}

func TestHandleCreatePost_NotPublishable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"missing notification url",
			`{"title": "T", "department": "D", "type": "job", "postDate": "01/09/2026",
			  "shortInfo": "Info.", "applyOnlineUrl": "https://example.gov/apply"}`,
		},
		{
			"missing primary url for result",
			`{"title": "T", "department": "D", "type": "result", "postDate": "01/09/2026",
			  "shortInfo": "Info.", "notificationUrl": "https://example.gov/notice.pdf"}`,
		},
		{
			"unknown type",
			`{"title": "T", "department": "D", "type": "syllabus", "postDate": "01/09/2026",
			  "shortInfo": "Info.", "applyOnlineUrl": "https://example.gov/apply",
			  "notificationUrl": "https://example.gov/notice.pdf"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			s.handleCreatePost(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, s.store.posts)
		})
	}
}

func TestHandleListPosts_InvalidType(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts?type=syllabus", nil)
	w := httptest.NewRecorder()

	s.handleListPosts(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListPosts_Empty(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	w := httptest.NewRecorder()

	s.handleListPosts(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListPostsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Posts)
	assert.Zero(t, resp.Count)
}

func TestHandleGetPost_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/not-a-number", nil)
	req.SetPathValue("id", "not-a-number")
	w := httptest.NewRecorder()

	s.handleGetPost(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetPost_NotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/42", nil)
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	s.handleGetPost(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpdatePost_NotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/posts/42", strings.NewReader(validPostBody()))
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	s.handleUpdatePost(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDeletePost(t *testing.T) {
	s := newTestServer(t)
	s.store.posts[7] = types.Job{ID: "7", Title: "To Delete"}
	s.store.nextID = 7

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/7", nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	s.handleDeletePost(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// A second delete of the same id is a clean 404.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/posts/7", nil)
	req.SetPathValue("id", "7")
	s.handleDeletePost(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetSections(t *testing.T) {
	s := newTestServer(t)
	s.store.posts[3] = types.Job{
		ID:             "3",
		Title:          "UP Police Constable 2026",
		Type:           types.TypeJob,
		LastDate:       "15/10/2026",
		AgeLimitHTML:   `<table class="styled"><tr><td>General</td><td>18-25</td></tr></table>`,
		ImportantDates: []types.DateEntry{{Label: "Last Date", Date: "15/10/2026"}},
		Links: []types.Link{
			{Label: "Apply Online Portal", URL: "https://uppbpb.gov.in/apply"},
			{Label: "Download Notification", URL: "https://uppbpb.gov.in/notice.pdf"},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/posts/3/sections", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	s.handleGetSections(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SectionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "html", string(resp.Sections["ageLimit"].Mode))
	assert.Contains(t, resp.Sections["ageLimit"].HTML, `class="styled"`)
	assert.Equal(t, "structured", string(resp.Sections["importantDates"].Mode))
	assert.Equal(t, "omit", string(resp.Sections["vacancyDetails"].Mode))

	assert.Equal(t, "Apply Online", resp.PrimaryAction.Label)
	assert.Equal(t, "https://uppbpb.gov.in/apply", resp.PrimaryAction.URL)
	assert.Equal(t, "https://uppbpb.gov.in/notice.pdf", resp.NotificationLink.URL)
}
