package server

import (
	"net/http"

	"github.com/sarkariportal/backend/internal/importer"
)

// handleBulkImport creates posts from a CSV request body
func (s *Server) handleBulkImport(w http.ResponseWriter, r *http.Request) {
	rows, err := importer.ReadCSV(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid CSV: "+err.Error())
		return
	}

	result, err := importer.ImportBatch(r.Context(), s.store, rows)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Import failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
