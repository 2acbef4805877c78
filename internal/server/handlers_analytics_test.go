package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarkariportal/backend/internal/analytics"
	"github.com/sarkariportal/backend/internal/types"
)

type fakeTracker struct {
	stats   *analytics.Stats
	err     error
	tracked []string
}

func (f *fakeTracker) Track(_ context.Context, page, postID, sessionID string) {
	f.tracked = append(f.tracked, page+"/"+postID+"/"+sessionID)
}

func (f *fakeTracker) CollectStats(context.Context) (*analytics.Stats, error) {
	return f.stats, f.err
}

func TestHandleTrack_WithoutTracker(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track",
		strings.NewReader(`{"page": "home"}`))
	w := httptest.NewRecorder()

	s.handleTrack(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleTrack_RecordsView(t *testing.T) {
	s := newTestServer(t)
	tracker := &fakeTracker{}
	s.tracker = tracker

	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track",
		strings.NewReader(`{"page": "post", "postId": "3", "sessionId": "sess-1"}`))
	w := httptest.NewRecorder()

	s.handleTrack(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, tracker.tracked, 1)
	assert.Equal(t, "post/3/sess-1", tracker.tracked[0])
}

func TestHandleStats_NotConfigured(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	w := httptest.NewRecorder()

	s.handleStats(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleStats_JoinsPostTitles(t *testing.T) {
	s := newTestServer(t)
	s.store.posts[3] = types.Job{ID: "3", Title: "UP Police Constable 2026"}
	s.tracker = &fakeTracker{stats: &analytics.Stats{
		TotalViews: 10,
		PageViews:  map[string]int64{"home": 7},
		PostViews:  map[string]int64{"3": 5, "99": 2},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	w := httptest.NewRecorder()

	s.handleStats(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.TotalViews)

	require.Len(t, resp.TopPosts, 2)
	// Sorted by views, titles joined where the post still exists.
	assert.Equal(t, TopPost{ID: "3", Title: "UP Police Constable 2026", Views: 5}, resp.TopPosts[0])
	assert.Equal(t, TopPost{ID: "99", Title: "99", Views: 2}, resp.TopPosts[1])
}
