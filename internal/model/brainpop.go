package model

import (
	"fmt"
	"strings"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/validate"
)

// QuizTypeOptions are the formats offered by the quiz editor's type select.
var QuizTypeOptions = []string{
	"Scrambled Words",
	"Crossword",
	"Visual Puzzle",
	"Coding Puzzle",
	"Mixed Quiz",
	"Multiple Choice",
	"Word Search",
}

const defaultQuizType = "Multiple Choice"

// BrainPopDocument is the quiz micro-site: categories of external quizzes.
type BrainPopDocument struct {
	Title       string     `json:"title"`
	Tagline     string     `json:"tagline"`
	Author      string     `json:"author"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
}

// Category groups quizzes under a kebab-case id derived from its title.
type Category struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Quizzes []Quiz `json:"quizzes"`
}

// Quiz is one externally-hosted quiz (Google Forms and similar).
type Quiz struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

func DefaultBrainPopDocument() *BrainPopDocument {
	return &BrainPopDocument{
		Title:      "BrainPop",
		Categories: []Category{},
	}
}

func DefaultCategory() Category {
	return Category{Quizzes: []Quiz{}}
}

func DefaultQuiz() Quiz {
	return Quiz{Type: defaultQuizType}
}

func (d *BrainPopDocument) IsEmpty() bool { return isZero(d) }

func (d *BrainPopDocument) Normalize() {
	if d.Title == "" {
		d.Title = "BrainPop"
	}
	d.Categories = ensure(d.Categories)
	for i := range d.Categories {
		c := &d.Categories[i]
		c.Quizzes = ensure(c.Quizzes)
		for j := range c.Quizzes {
			if c.Quizzes[j].Type == "" {
				c.Quizzes[j].Type = defaultQuizType
			}
		}
	}
}

// Clone returns a deep copy safe to edit as a dialog draft.
func (c Category) Clone() Category {
	out := c
	out.Quizzes = append([]Quiz{}, c.Quizzes...)
	return out
}

func (q Quiz) Clone() Quiz { return q }

// Validate checks the document fields, then every category and quiz,
// prefixing child errors so the flattened list stays traceable.
func (d *BrainPopDocument) Validate() []string {
	var errs []string

	if !validate.Required(d.Title) {
		errs = append(errs, "Title is required")
	}
	if !validate.Required(d.Tagline) {
		errs = append(errs, "Tagline is required")
	}
	if !validate.Required(d.Author) {
		errs = append(errs, "Author is required")
	}
	if !validate.Required(d.Description) {
		errs = append(errs, "Description is required")
	}
	if len(d.Categories) == 0 {
		errs = append(errs, "At least one category is required")
	}

	for i, c := range d.Categories {
		if catErrs := c.Validate(); len(catErrs) > 0 {
			errs = append(errs, fmt.Sprintf("Category %d (%s): %s",
				i+1, orUntitled(c.Title), strings.Join(catErrs, ", ")))
		}
		for j, q := range c.Quizzes {
			if quizErrs := q.Validate(); len(quizErrs) > 0 {
				errs = append(errs, fmt.Sprintf("Category %q - Quiz %d (%s): %s",
					c.Title, j+1, orUntitled(q.Title), strings.Join(quizErrs, ", ")))
			}
		}
	}

	return errs
}

func (c Category) Validate() []string {
	var errs []string

	if !validate.Required(c.ID) {
		errs = append(errs, "Category ID is required")
	} else if !validate.Slug(c.ID) {
		errs = append(errs, `Category ID must be in kebab-case format (e.g., "c-programming")`)
	}
	if !validate.Required(c.Title) {
		errs = append(errs, "Category title is required")
	}

	return errs
}

func (q Quiz) Validate() []string {
	var errs []string

	if !validate.Required(q.ID) {
		errs = append(errs, "Quiz ID is required")
	} else if !validate.Slug(q.ID) {
		errs = append(errs, `Quiz ID must be in kebab-case format (e.g., "scrambled-words-1")`)
	}
	if !validate.Required(q.Title) {
		errs = append(errs, "Quiz title is required")
	}
	if !validate.Required(q.Description) {
		errs = append(errs, "Description is required")
	}
	if !validate.Required(q.URL) {
		errs = append(errs, "URL is required")
	} else if !validate.URL(q.URL) {
		errs = append(errs, "URL must be a valid URL starting with http:// or https://")
	}
	if !validate.Required(q.Type) {
		errs = append(errs, "Quiz type is required")
	}

	return errs
}

// Finalize trims text fields and derives a missing id from the title,
// matching what the category dialog does on save. An explicitly set id is
// never overwritten.
func (c Category) Finalize() Category {
	out := c.Clone()
	out.Title = strings.TrimSpace(out.Title)
	if out.ID == "" {
		out.ID = validate.Slugify(out.Title)
	}
	if out.Quizzes == nil {
		out.Quizzes = []Quiz{}
	}
	return out
}

func (q Quiz) Finalize() Quiz {
	out := q
	out.Title = strings.TrimSpace(out.Title)
	out.Description = strings.TrimSpace(out.Description)
	out.URL = strings.TrimSpace(out.URL)
	out.Type = strings.TrimSpace(out.Type)
	if out.ID == "" {
		out.ID = validate.Slugify(out.Title)
	}
	return out
}
