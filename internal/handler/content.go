package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/apperror"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/repository"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/service"
)

// maxDocumentSize caps a PUT body at 2MB. The largest real document
// (the profile) is a few tens of kilobytes.
const maxDocumentSize = 2 << 20

// ContentHandler serves the per-domain content documents: the public
// read endpoint, the whole-document admin save, and the revision list.
type ContentHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

func NewContentHandler(content *service.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		content: content,
		logger:  logger,
	}
}

// saveMessage matches the wording the admin UI shows after a save.
func saveMessage(domain repository.Domain) string {
	switch domain {
	case repository.DomainGeneral:
		return "Content data saved successfully!"
	case repository.DomainProfile:
		return "Profile data saved successfully!"
	case repository.DomainClassroom:
		return "Classroom data saved successfully!"
	case repository.DomainBrainPop:
		return "BrainPop data saved successfully!"
	case repository.DomainTechieBites:
		return "TechieBites data saved successfully!"
	case repository.DomainTimePass:
		return "TimePass data saved successfully!"
	default:
		return "Data saved successfully!"
	}
}

// failMessage is the counterpart wording for a save that failed for
// reasons other than validation.
func failMessage(domain repository.Domain) string {
	name := string(domain)
	if domain == repository.DomainGeneral {
		name = "content"
	}
	return fmt.Sprintf("Failed to save %s data.", name)
}

// parseDomain resolves the {domain} URL parameter.
func parseDomain(r *http.Request) (repository.Domain, error) {
	raw := chi.URLParam(r, "domain")
	domain, ok := repository.ParseDomain(raw)
	if !ok {
		return "", apperror.NotFound("domain", raw)
	}
	return domain, nil
}

// HandleGet returns the normalized document for a domain.
//
// HTTP: GET /api/content/{domain}
func (h *ContentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	domain, err := parseDomain(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.Get(r.Context(), domain)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

type saveResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// HandlePut replaces a domain's document wholesale. The body is the
// full document; validation failures return 400 with every problem
// listed and nothing stored.
//
// HTTP: PUT /api/admin/content/{domain}
func (h *ContentHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	domain, err := parseDomain(r)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		writeError(w, apperror.ValidationFailed("body", "request body too large or unreadable"))
		return
	}

	doc, err := h.content.Put(r.Context(), domain, body)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			h.logger.Error("document save failed",
				slog.String("domain", string(domain)),
				slog.String("error", err.Error()),
			)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "internal_error",
				Message: failMessage(domain),
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saveResponse{
		Message: saveMessage(domain),
		Data:    doc,
	})
}

type revisionResponse struct {
	ID      string `json:"id"`
	SavedAt string `json:"savedAt"`
}

// HandleRevisions lists a domain's saved versions, newest first. Data
// itself is not returned here; a revision's payload is large and the
// admin UI only needs the timeline.
//
// HTTP: GET /api/admin/content/{domain}/revisions?limit=N
func (h *ContentHandler) HandleRevisions(w http.ResponseWriter, r *http.Request) {
	domain, err := parseDomain(r)
	if err != nil {
		writeError(w, err)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, apperror.ValidationFailed("limit", "limit must be a positive integer"))
			return
		}
		limit = n
	}

	revs, err := h.content.Revisions(r.Context(), domain, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]revisionResponse, 0, len(revs))
	for _, rev := range revs {
		out = append(out, revisionResponse{
			ID:      rev.ID,
			SavedAt: rev.SavedAt.UTC().Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"revisions": out})
}
