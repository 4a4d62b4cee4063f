package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"lessongest/internal/book"
)

// handleListBooks lists all parsed books with their counts.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	recs := s.orchestrator.Store().List()
	books := make([]any, 0, len(recs))
	for _, rec := range recs {
		books = append(books, rec)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"books": books})
}

// handleGetBook returns the full structured document.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	rec := s.orchestrator.Store().Get(chi.URLParam(r, "docID"))
	if rec == nil {
		jsonError(w, "book not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := rec.Document.Encode(w); err != nil {
		s.log.Error("encode book", "doc_id", rec.ID, "error", err)
	}
}

// handleGetLesson returns a single lesson by its two-digit id.
func (s *Server) handleGetLesson(w http.ResponseWriter, r *http.Request) {
	rec := s.orchestrator.Store().Get(chi.URLParam(r, "docID"))
	if rec == nil {
		jsonError(w, "book not found", http.StatusNotFound)
		return
	}

	lessonID := chi.URLParam(r, "lessonID")
	for i := range rec.Document.Lessons {
		if rec.Document.Lessons[i].ID == lessonID {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(rec.Document.Lessons[i])
			return
		}
	}
	jsonError(w, "lesson not found", http.StatusNotFound)
}

// handleDictionary returns core dictionary entries, optionally filtered by a
// case-insensitive substring match against either language.
func (s *Server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	rec := s.orchestrator.Store().Get(chi.URLParam(r, "docID"))
	if rec == nil {
		jsonError(w, "book not found", http.StatusNotFound)
		return
	}

	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	entries := rec.Document.CoreDictionary
	if q != "" {
		filtered := make([]book.DictEntry, 0)
		for _, e := range entries {
			if strings.Contains(strings.ToLower(e.Croatian), q) ||
				strings.Contains(strings.ToLower(e.English), q) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":   len(entries),
		"entries": entries,
	})
}

// handleDeleteBook removes a parsed book from the store.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.orchestrator.Store().Delete(docID) {
		jsonError(w, "book not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
