package model

import (
	"fmt"
	"strings"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/validate"
)

// Course editor option sets.
var (
	IconOptions         = []string{"Code2", "Code", "Binary", "Calculator"}
	MaterialTypeOptions = []string{"Video", "PDF", "GitHub", "PPT"}
)

const defaultCourseIcon = "Code2"

// ClassroomDocument is the course-catalog micro-site.
type ClassroomDocument struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	GitHubLink  string   `json:"githubLink"`
	GitHubNote  string   `json:"githubNote"`
	Courses     []Course `json:"courses"`
}

// Course is one catalog entry with its topics, materials, and quizzes.
type Course struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Summary     string       `json:"summary"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Topics      []string     `json:"topics"`
	Materials   []Material   `json:"materials"`
	Quizzes     []CourseQuiz `json:"quizzes"`
	Link        string       `json:"link"`
}

// Material is one learning resource attached to a course.
type Material struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// CourseQuiz is an external quiz linked from a course page.
type CourseQuiz struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func DefaultClassroomDocument() *ClassroomDocument {
	return &ClassroomDocument{
		Title:   "Classroom",
		Courses: []Course{},
	}
}

func DefaultCourse() Course {
	return Course{
		Icon:      defaultCourseIcon,
		Topics:    []string{},
		Materials: []Material{},
		Quizzes:   []CourseQuiz{},
	}
}

func (d *ClassroomDocument) IsEmpty() bool { return isZero(d) }

func (d *ClassroomDocument) Normalize() {
	if d.Title == "" {
		d.Title = "Classroom"
	}
	d.Courses = ensure(d.Courses)
	for i := range d.Courses {
		c := &d.Courses[i]
		if c.Icon == "" {
			c.Icon = defaultCourseIcon
		}
		c.Topics = ensure(c.Topics)
		c.Materials = ensure(c.Materials)
		c.Quizzes = ensure(c.Quizzes)
	}
}

// Clone returns a deep copy safe to edit as a dialog draft.
func (c Course) Clone() Course {
	out := c
	out.Topics = append([]string{}, c.Topics...)
	out.Materials = append([]Material{}, c.Materials...)
	out.Quizzes = append([]CourseQuiz{}, c.Quizzes...)
	return out
}

func (d *ClassroomDocument) Validate() []string {
	var errs []string

	if !validate.Required(d.Title) {
		errs = append(errs, "Title is required")
	}
	if !validate.Required(d.Description) {
		errs = append(errs, "Description is required")
	}
	if d.GitHubLink != "" && !validate.URL(d.GitHubLink) {
		errs = append(errs, "GitHub Link must be a valid URL")
	}

	for i, c := range d.Courses {
		if courseErrs := c.Validate(); len(courseErrs) > 0 {
			label := c.Title
			if strings.TrimSpace(label) == "" {
				label = fmt.Sprintf("%d", i+1)
			}
			errs = append(errs, fmt.Sprintf("Course %q: %s", label, strings.Join(courseErrs, ", ")))
		}
	}

	return errs
}

func (c Course) Validate() []string {
	var errs []string

	if !validate.Required(c.ID) {
		errs = append(errs, "Course ID is required")
	}
	if !validate.Required(c.Title) {
		errs = append(errs, "Course Title is required")
	}
	if !validate.Required(c.Slug) {
		errs = append(errs, "Course Slug is required")
	} else if !validate.Slug(c.Slug) {
		errs = append(errs, `Course Slug must be lowercase with hyphens (e.g., "c-for-beginners")`)
	}
	if !validate.Required(c.Summary) {
		errs = append(errs, "Course Summary is required")
	}
	if !validate.Required(c.Description) {
		errs = append(errs, "Course Description is required")
	}
	if !validate.Required(c.Icon) {
		errs = append(errs, "Course Icon is required")
	}
	if c.Link != "" && !validate.URL(c.Link) {
		errs = append(errs, "Course Link must be a valid URL")
	}

	for i, m := range c.Materials {
		if !validate.Required(m.Title) {
			errs = append(errs, fmt.Sprintf("Material #%d: Title is required", i+1))
		}
		if !validate.Required(m.Type) {
			errs = append(errs, fmt.Sprintf("Material #%d: Type is required", i+1))
		}
		if !validate.Required(m.URL) {
			errs = append(errs, fmt.Sprintf("Material #%d: URL is required", i+1))
		} else if !validate.URL(m.URL) {
			errs = append(errs, fmt.Sprintf("Material #%d: URL must be valid", i+1))
		}
	}

	for i, q := range c.Quizzes {
		if !validate.Required(q.Title) {
			errs = append(errs, fmt.Sprintf("Quiz #%d: Title is required", i+1))
		}
		if !validate.Required(q.URL) {
			errs = append(errs, fmt.Sprintf("Quiz #%d: URL is required", i+1))
		} else if !validate.URL(q.URL) {
			errs = append(errs, fmt.Sprintf("Quiz #%d: URL must be valid", i+1))
		}
	}

	return errs
}

// Finalize trims the headline fields and derives missing identifiers from
// the title. Both id and slug can be auto-filled; values the admin typed
// are kept as-is.
func (c Course) Finalize() Course {
	out := c.Clone()
	out.Title = strings.TrimSpace(out.Title)
	out.Summary = strings.TrimSpace(out.Summary)
	if out.Slug == "" {
		out.Slug = validate.Slugify(out.Title)
	}
	if out.ID == "" {
		out.ID = out.Slug
	}
	if out.Icon == "" {
		out.Icon = defaultCourseIcon
	}
	return out
}
