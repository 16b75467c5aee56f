package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/apperror"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/model"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/service"
)

// ItemHandler exposes the collection editing dialogs over HTTP: one
// commit (add or edit) and one confirmed delete per collection. Every
// operation loads the whole document, applies the change, and persists
// the whole document back.
type ItemHandler struct {
	content *service.ContentService
	logger  *slog.Logger
}

func NewItemHandler(content *service.ContentService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		content: content,
		logger:  logger,
	}
}

// commitRequest wraps a draft item with the slot it targets.
// Index -1 (or omitted) appends; 0-based otherwise.
type commitRequest struct {
	Index *int            `json:"index,omitempty"`
	Item  json.RawMessage `json:"item"`
}

// decodeCommit parses the commit envelope and the draft into item.
func decodeCommit(r *http.Request, item interface{}) (int, error) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, apperror.ValidationFailed("body", "request body must be valid JSON")
	}
	if len(req.Item) == 0 {
		return 0, apperror.ValidationFailed("item", "item is required")
	}
	if err := json.Unmarshal(req.Item, item); err != nil {
		return 0, apperror.ValidationFailed("item", "item must be a valid JSON object")
	}
	index := -1
	if req.Index != nil {
		index = *req.Index
	}
	return index, nil
}

// deleteParams parses the {index} path parameter and the confirm query
// flag. A delete without confirm=true is rejected before it reaches the
// service.
func deleteParams(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, apperror.ValidationFailed("index", "index must be an integer")
	}
	if r.URL.Query().Get("confirm") != "true" {
		return 0, apperror.ValidationFailed("confirm", "deletion requires confirm=true")
	}
	return index, nil
}

// HandleCommitCourse adds or replaces a classroom course.
//
// HTTP: POST /api/admin/classroom/courses
func (h *ItemHandler) HandleCommitCourse(w http.ResponseWriter, r *http.Request) {
	var course model.Course
	index, err := decodeCommit(r, &course)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.CommitCourse(r.Context(), index, course)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleDeleteCourse removes a course after explicit confirmation.
//
// HTTP: DELETE /api/admin/classroom/courses/{index}?confirm=true
func (h *ItemHandler) HandleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	index, err := deleteParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.DeleteCourse(r.Context(), index, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleCommitCategory adds or replaces a brainpop category.
//
// HTTP: POST /api/admin/brainpop/categories
func (h *ItemHandler) HandleCommitCategory(w http.ResponseWriter, r *http.Request) {
	var category model.Category
	index, err := decodeCommit(r, &category)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.CommitCategory(r.Context(), index, category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleDeleteCategory removes a brainpop category and its quizzes.
//
// HTTP: DELETE /api/admin/brainpop/categories/{index}?confirm=true
func (h *ItemHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	index, err := deleteParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.DeleteCategory(r.Context(), index, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// categoryIndex parses the {categoryIndex} path parameter for the
// quiz routes.
func categoryIndex(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "categoryIndex"))
	if err != nil {
		return 0, apperror.ValidationFailed("categoryIndex", "category index must be an integer")
	}
	return n, nil
}

// HandleCommitQuiz adds or replaces a quiz within one category.
//
// HTTP: POST /api/admin/brainpop/categories/{categoryIndex}/quizzes
func (h *ItemHandler) HandleCommitQuiz(w http.ResponseWriter, r *http.Request) {
	catIdx, err := categoryIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var quiz model.Quiz
	index, err := decodeCommit(r, &quiz)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.CommitQuiz(r.Context(), catIdx, index, quiz)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleDeleteQuiz removes a quiz from one category.
//
// HTTP: DELETE /api/admin/brainpop/categories/{categoryIndex}/quizzes/{index}?confirm=true
func (h *ItemHandler) HandleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	catIdx, err := categoryIndex(r)
	if err != nil {
		writeError(w, err)
		return
	}
	index, err := deleteParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.DeleteQuiz(r.Context(), catIdx, index, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleCommitPost adds or replaces a techiebites article.
//
// HTTP: POST /api/admin/techiebites/posts
func (h *ItemHandler) HandleCommitPost(w http.ResponseWriter, r *http.Request) {
	var post model.Post
	index, err := decodeCommit(r, &post)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.CommitPost(r.Context(), index, post)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleDeletePost removes an article.
//
// HTTP: DELETE /api/admin/techiebites/posts/{index}?confirm=true
func (h *ItemHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	index, err := deleteParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.DeletePost(r.Context(), index, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleCommitEntry adds or replaces a timepass entry.
//
// HTTP: POST /api/admin/timepass/entries
func (h *ItemHandler) HandleCommitEntry(w http.ResponseWriter, r *http.Request) {
	var entry model.Entry
	index, err := decodeCommit(r, &entry)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.CommitEntry(r.Context(), index, entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// HandleDeleteEntry removes a timepass entry.
//
// HTTP: DELETE /api/admin/timepass/entries/{index}?confirm=true
func (h *ItemHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	index, err := deleteParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.content.DeleteEntry(r.Context(), index, true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
