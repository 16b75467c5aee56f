// Package service contains the business logic between the HTTP handlers
// and the repository: loading documents into their full default shape,
// validating before save, and running the collection editing flows.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/apperror"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/editor"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/model"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/repository"
)

// ContentService loads, validates, and saves the per-domain content
// documents. Every save goes through full-document validation, so a
// document in the store is always complete and well-formed.
type ContentService struct {
	repo   repository.ContentRepository
	logger *slog.Logger
}

func NewContentService(repo repository.ContentRepository, logger *slog.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
	}
}

// newDocument returns a fresh zero document for a domain.
func newDocument(domain repository.Domain) (model.Document, error) {
	switch domain {
	case repository.DomainProfile:
		return &model.ProfileDocument{}, nil
	case repository.DomainClassroom:
		return &model.ClassroomDocument{}, nil
	case repository.DomainBrainPop:
		return &model.BrainPopDocument{}, nil
	case repository.DomainTechieBites:
		return &model.TechieBitesDocument{}, nil
	case repository.DomainTimePass:
		return &model.TimePassDocument{}, nil
	case repository.DomainGeneral:
		return &model.GeneralDocument{}, nil
	default:
		return nil, apperror.NotFound("domain", string(domain))
	}
}

// load fills doc from the store and normalizes it. An absent row, or a
// stored document that decodes to nothing (a bare "{}"), is reported as
// NotFound: the editors must never start from silently-empty data.
func (s *ContentService) load(ctx context.Context, domain repository.Domain, doc model.Document) error {
	raw, found, err := s.repo.Load(ctx, domain)
	if err != nil {
		s.logger.Error("failed to load document",
			slog.String("domain", string(domain)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("loading %s document: %w", domain, err)
	}
	if !found {
		return apperror.NotFound("document", string(domain))
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("decoding %s document: %w", domain, err)
	}
	if doc.IsEmpty() {
		return apperror.NotFound("document", string(domain))
	}

	doc.Normalize()
	return nil
}

// save normalizes and validates doc, then replaces the stored document.
func (s *ContentService) save(ctx context.Context, domain repository.Domain, doc model.Document) error {
	doc.Normalize()
	if errs := doc.Validate(); len(errs) > 0 {
		return apperror.ValidationErrors(errs)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w", domain, err)
	}
	if err := s.repo.Save(ctx, domain, raw); err != nil {
		s.logger.Error("failed to save document",
			slog.String("domain", string(domain)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("saving %s document: %w", domain, err)
	}

	s.logger.Info("document saved", slog.String("domain", string(domain)))
	return nil
}

// Get loads the document for a domain.
func (s *ContentService) Get(ctx context.Context, domain repository.Domain) (model.Document, error) {
	doc, err := newDocument(domain)
	if err != nil {
		return nil, err
	}
	if err := s.load(ctx, domain, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Put decodes a full replacement document and saves it.
func (s *ContentService) Put(ctx context.Context, domain repository.Domain, raw []byte) (model.Document, error) {
	doc, err := newDocument(domain)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, apperror.ValidationFailed("body", "request body must be a valid JSON document")
	}
	if err := s.save(ctx, domain, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Revisions lists a domain's saved versions, newest first.
func (s *ContentService) Revisions(ctx context.Context, domain repository.Domain, limit int) ([]repository.Revision, error) {
	if _, err := newDocument(domain); err != nil {
		return nil, err
	}
	revs, err := s.repo.Revisions(ctx, domain, limit)
	if err != nil {
		s.logger.Error("failed to list revisions",
			slog.String("domain", string(domain)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing %s revisions: %w", domain, err)
	}
	return revs, nil
}

// Typed accessors. The collection operations below need the concrete
// document types, and tests read better against them.

func (s *ContentService) Profile(ctx context.Context) (*model.ProfileDocument, error) {
	doc := &model.ProfileDocument{}
	if err := s.load(ctx, repository.DomainProfile, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) Classroom(ctx context.Context) (*model.ClassroomDocument, error) {
	doc := &model.ClassroomDocument{}
	if err := s.load(ctx, repository.DomainClassroom, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) BrainPop(ctx context.Context) (*model.BrainPopDocument, error) {
	doc := &model.BrainPopDocument{}
	if err := s.load(ctx, repository.DomainBrainPop, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) TechieBites(ctx context.Context) (*model.TechieBitesDocument, error) {
	doc := &model.TechieBitesDocument{}
	if err := s.load(ctx, repository.DomainTechieBites, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) TimePass(ctx context.Context) (*model.TimePassDocument, error) {
	doc := &model.TimePassDocument{}
	if err := s.load(ctx, repository.DomainTimePass, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) General(ctx context.Context) (*model.GeneralDocument, error) {
	doc := &model.GeneralDocument{}
	if err := s.load(ctx, repository.DomainGeneral, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) SaveProfile(ctx context.Context, doc *model.ProfileDocument) error {
	return s.save(ctx, repository.DomainProfile, doc)
}

func (s *ContentService) SaveClassroom(ctx context.Context, doc *model.ClassroomDocument) error {
	return s.save(ctx, repository.DomainClassroom, doc)
}

func (s *ContentService) SaveBrainPop(ctx context.Context, doc *model.BrainPopDocument) error {
	return s.save(ctx, repository.DomainBrainPop, doc)
}

func (s *ContentService) SaveTechieBites(ctx context.Context, doc *model.TechieBitesDocument) error {
	return s.save(ctx, repository.DomainTechieBites, doc)
}

func (s *ContentService) SaveTimePass(ctx context.Context, doc *model.TimePassDocument) error {
	return s.save(ctx, repository.DomainTimePass, doc)
}

func (s *ContentService) SaveGeneral(ctx context.Context, doc *model.GeneralDocument) error {
	return s.save(ctx, repository.DomainGeneral, doc)
}

// commitItem runs one add-or-edit dialog round against a collection.
// index < 0 means add; otherwise the item at index is replaced.
func commitItem[T editor.Cloner[T]](items []T, index int, draft T, finalize func(T) T, validate func(T) []string) ([]T, error) {
	sess := editor.NewSession(finalize, validate)
	if index < 0 {
		sess.BeginAdd(draft)
	} else {
		if err := sess.BeginEdit(items, index); err != nil {
			return nil, apperror.ValidationFailed("index",
				fmt.Sprintf("no item at index %d", index))
		}
		sess.SetDraft(draft)
	}

	out, err := sess.Commit(items)
	if err != nil {
		var verr *editor.ValidationError
		if errors.As(err, &verr) {
			return nil, apperror.ValidationErrors(verr.Problems)
		}
		return nil, err
	}
	return out, nil
}

// deleteItem removes items[index] when confirmed is true, and leaves the
// collection untouched otherwise.
func deleteItem[T editor.Cloner[T]](items []T, index int, confirmed bool) ([]T, bool, error) {
	sess := editor.NewSession[T](nil, nil)
	if err := sess.RequestDelete(items, index); err != nil {
		return nil, false, apperror.ValidationFailed("index",
			fmt.Sprintf("no item at index %d", index))
	}
	out, removed := sess.ResolveDelete(items, func() bool { return confirmed })
	return out, removed, nil
}

// CommitCourse adds or replaces a classroom course and persists the
// updated document. index < 0 appends.
func (s *ContentService) CommitCourse(ctx context.Context, index int, course model.Course) (*model.ClassroomDocument, error) {
	doc, err := s.Classroom(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := commitItem(doc.Courses, index, course, model.Course.Finalize, model.Course.Validate)
	if err != nil {
		return nil, err
	}
	doc.Courses = courses
	if err := s.SaveClassroom(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteCourse removes a course once confirmed. An unconfirmed request
// leaves the document untouched and saves nothing.
func (s *ContentService) DeleteCourse(ctx context.Context, index int, confirmed bool) (*model.ClassroomDocument, error) {
	doc, err := s.Classroom(ctx)
	if err != nil {
		return nil, err
	}
	courses, removed, err := deleteItem(doc.Courses, index, confirmed)
	if err != nil {
		return nil, err
	}
	if !removed {
		s.logger.Info("course delete declined", slog.Int("index", index))
		return doc, nil
	}
	doc.Courses = courses
	if err := s.SaveClassroom(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) CommitCategory(ctx context.Context, index int, category model.Category) (*model.BrainPopDocument, error) {
	doc, err := s.BrainPop(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := commitItem(doc.Categories, index, category, model.Category.Finalize, model.Category.Validate)
	if err != nil {
		return nil, err
	}
	doc.Categories = categories
	if err := s.SaveBrainPop(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) DeleteCategory(ctx context.Context, index int, confirmed bool) (*model.BrainPopDocument, error) {
	doc, err := s.BrainPop(ctx)
	if err != nil {
		return nil, err
	}
	categories, removed, err := deleteItem(doc.Categories, index, confirmed)
	if err != nil {
		return nil, err
	}
	if !removed {
		s.logger.Info("category delete declined", slog.Int("index", index))
		return doc, nil
	}
	doc.Categories = categories
	if err := s.SaveBrainPop(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CommitQuiz adds or replaces a quiz inside one brainpop category.
func (s *ContentService) CommitQuiz(ctx context.Context, categoryIndex, index int, quiz model.Quiz) (*model.BrainPopDocument, error) {
	doc, err := s.BrainPop(ctx)
	if err != nil {
		return nil, err
	}
	if categoryIndex < 0 || categoryIndex >= len(doc.Categories) {
		return nil, apperror.ValidationFailed("categoryIndex",
			fmt.Sprintf("no category at index %d", categoryIndex))
	}
	quizzes, err := commitItem(doc.Categories[categoryIndex].Quizzes, index, quiz, model.Quiz.Finalize, model.Quiz.Validate)
	if err != nil {
		return nil, err
	}
	doc.Categories[categoryIndex].Quizzes = quizzes
	if err := s.SaveBrainPop(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) DeleteQuiz(ctx context.Context, categoryIndex, index int, confirmed bool) (*model.BrainPopDocument, error) {
	doc, err := s.BrainPop(ctx)
	if err != nil {
		return nil, err
	}
	if categoryIndex < 0 || categoryIndex >= len(doc.Categories) {
		return nil, apperror.ValidationFailed("categoryIndex",
			fmt.Sprintf("no category at index %d", categoryIndex))
	}
	quizzes, removed, err := deleteItem(doc.Categories[categoryIndex].Quizzes, index, confirmed)
	if err != nil {
		return nil, err
	}
	if !removed {
		s.logger.Info("quiz delete declined",
			slog.Int("category", categoryIndex), slog.Int("index", index))
		return doc, nil
	}
	doc.Categories[categoryIndex].Quizzes = quizzes
	if err := s.SaveBrainPop(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) CommitPost(ctx context.Context, index int, post model.Post) (*model.TechieBitesDocument, error) {
	doc, err := s.TechieBites(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := commitItem(doc.Posts, index, post, model.Post.Finalize, model.Post.Validate)
	if err != nil {
		return nil, err
	}
	doc.Posts = posts
	if err := s.SaveTechieBites(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) DeletePost(ctx context.Context, index int, confirmed bool) (*model.TechieBitesDocument, error) {
	doc, err := s.TechieBites(ctx)
	if err != nil {
		return nil, err
	}
	posts, removed, err := deleteItem(doc.Posts, index, confirmed)
	if err != nil {
		return nil, err
	}
	if !removed {
		s.logger.Info("post delete declined", slog.Int("index", index))
		return doc, nil
	}
	doc.Posts = posts
	if err := s.SaveTechieBites(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) CommitEntry(ctx context.Context, index int, entry model.Entry) (*model.TimePassDocument, error) {
	doc, err := s.TimePass(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := commitItem(doc.Entries, index, entry, model.Entry.Finalize, model.Entry.Validate)
	if err != nil {
		return nil, err
	}
	doc.Entries = entries
	if err := s.SaveTimePass(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *ContentService) DeleteEntry(ctx context.Context, index int, confirmed bool) (*model.TimePassDocument, error) {
	doc, err := s.TimePass(ctx)
	if err != nil {
		return nil, err
	}
	entries, removed, err := deleteItem(doc.Entries, index, confirmed)
	if err != nil {
		return nil, err
	}
	if !removed {
		s.logger.Info("entry delete declined", slog.Int("index", index))
		return doc, nil
	}
	doc.Entries = entries
	if err := s.SaveTimePass(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
