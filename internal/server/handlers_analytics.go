package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/sarkariportal/backend/internal/analytics"
	"github.com/sarkariportal/backend/internal/types"
)

// StatsResponse decorates the raw counters with post titles for the
// dashboard.
type StatsResponse struct {
	*analytics.Stats
	TopPosts []TopPost `json:"topPosts"`
}

// TopPost is one per-post view counter joined with its title.
type TopPost struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// handleTrack records one page view. Always 204: tracking must never break
// the visitor path, even when analytics is down or unconfigured.
func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	if s.tracker != nil {
		var req types.TrackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			s.tracker.Track(r.Context(), req.Page, req.PostID, req.SessionID)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStats returns the dashboard aggregate
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.tracker == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Analytics is not configured")
		return
	}

	stats, err := s.tracker.CollectStats(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Analytics error: "+err.Error())
		return
	}

	topPosts, err := s.joinPostTitles(r, stats)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, StatsResponse{
		Stats:    stats,
		TopPosts: topPosts,
	})
}

// joinPostTitles resolves the per-post counters against stored titles.
// Counters for posts that were deleted keep their id as the title.
func (s *Server) joinPostTitles(r *http.Request, stats *analytics.Stats) ([]TopPost, error) {
	var ids []int64
	for idStr := range stats.PostViews {
		if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	titles, err := s.store.GetPostTitles(r.Context(), ids)
	if err != nil {
		return nil, err
	}

	topPosts := []TopPost{}
	for idStr, views := range stats.PostViews {
		title := idStr
		if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
			if t, ok := titles[id]; ok {
				title = t
			}
		}
		topPosts = append(topPosts, TopPost{ID: idStr, Title: title, Views: views})
	}

	sort.Slice(topPosts, func(i, j int) bool { return topPosts[i].Views > topPosts[j].Views })
	return topPosts, nil
}
