package server

import (
	"encoding/json"
	"net/http"

	"github.com/sarkariportal/backend/internal/parsing"
	"github.com/sarkariportal/backend/internal/types"
)

// ParseResponse represents the response of both parse endpoints. The draft
// is staged into the admin form; nothing is persisted here.
type ParseResponse struct {
	ParsedData *types.JobDraft `json:"parsedData"`
	Warning    string          `json:"warning,omitempty"`
}

// handleParseRules extracts a draft using the rule-based parser
func (s *Server) handleParseRules(w http.ResponseWriter, r *http.Request) {
	s.handleParse(w, r, s.rules)
}

// handleParseModel extracts a draft using the model-assisted parser
func (s *Server) handleParseModel(w http.ResponseWriter, r *http.Request) {
	if s.model == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Model-assisted parsing is not configured")
		return
	}
	s.handleParse(w, r, s.model)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request, extractor parsing.TextExtractor) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := extractor.Extract(r.Context(), req.RawText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		ParsedData: result.Draft,
		Warning:    result.Warning,
	})
}
