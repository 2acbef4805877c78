package server

import (
	"encoding/json"
	"net/http"

	"github.com/sarkariportal/backend/internal/render"
	"github.com/sarkariportal/backend/internal/store"
	"github.com/sarkariportal/backend/internal/types"
)

// ListPostsResponse represents the response for listing posts
type ListPostsResponse struct {
	Posts  []types.Job `json:"posts"`
	Count  int         `json:"count"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// handleListPosts lists posts with optional filters and pagination
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 100, 500)
	offset := parseQueryInt(r, "offset", 0, 0)

	opts := store.ListOptions{
		Type:          r.URL.Query().Get("type"),
		Qualification: r.URL.Query().Get("qualification"),
		State:         r.URL.Query().Get("state"),
		Limit:         limit,
		Offset:        offset,
	}

	if opts.Type != "" && !types.ValidType(opts.Type) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid post type")
		return
	}

	posts, err := s.store.ListPosts(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if posts == nil {
		posts = []types.Job{}
	}

	s.jsonResponse(w, http.StatusOK, ListPostsResponse{
		Posts:  posts,
		Count:  len(posts),
		Limit:  limit,
		Offset: offset,
	})
}

// handleGetPost retrieves a post by its ID
func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if post == nil {
		s.errorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, post)
}

// decodePost decodes and validates a post payload, then applies the
// publish-time derivations. Nothing is persisted when an error is returned.
func (s *Server) decodePost(r *http.Request) (*types.Job, error) {
	var job types.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		return nil, err
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := job.ValidatePublishable(); err != nil {
		return nil, err
	}

	store.Normalize(&job)
	return &job, nil
}

// handleCreatePost persists a new post
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	job, err := s.decodePost(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.CreatePost(r.Context(), *job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdatePost replaces a post by its ID
func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	job, err := s.decodePost(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.store.UpdatePost(r.Context(), id, *job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeletePost removes a post by its ID
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	deleted, err := s.store.DeletePost(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SectionsResponse carries the resolved render plan for one post.
type SectionsResponse struct {
	Sections         map[string]render.SectionPlan `json:"sections"`
	PrimaryAction    render.Action                 `json:"primaryAction"`
	NotificationLink render.Action                 `json:"notificationLink"`
}

// handleGetSections returns the per-section render plan for a post
func (s *Server) handleGetSections(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := s.store.GetPost(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if post == nil {
		s.errorResponse(w, http.StatusNotFound, "Post not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, SectionsResponse{
		Sections:         render.Sections(post),
		PrimaryAction:    render.PrimaryAction(post),
		NotificationLink: render.NotificationLink(post),
	})
}

