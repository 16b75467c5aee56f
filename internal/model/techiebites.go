package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/validate"
)

// PostCategoryOptions are the article categories offered by the editor.
var PostCategoryOptions = []string{
	"Artificial Intelligence",
	"Career Development",
	"Cybersecurity",
	"Digital Tools",
	"Electric Vehicles",
	"Fun with Math",
	"Hardware",
	"Language & Communication",
	"Programming",
	"Technology Trends",
}

const defaultPostCategory = "Technology Trends"

// TechieBitesDocument is the article micro-site.
type TechieBitesDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Posts       []Post `json:"posts"`
}

// Post is one article. Date is stored as an ISO day (2006-01-02).
type Post struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
	Author   string `json:"author"`
}

func DefaultTechieBitesDocument() *TechieBitesDocument {
	return &TechieBitesDocument{
		Title: "TechieBites",
		Posts: []Post{},
	}
}

func DefaultPost() Post {
	return Post{
		Date:     time.Now().Format("2006-01-02"),
		Category: defaultPostCategory,
	}
}

func (d *TechieBitesDocument) IsEmpty() bool { return isZero(d) }

func (d *TechieBitesDocument) Normalize() {
	if d.Title == "" {
		d.Title = "TechieBites"
	}
	d.Posts = ensure(d.Posts)
	for i := range d.Posts {
		p := &d.Posts[i]
		if p.Date == "" {
			p.Date = time.Now().Format("2006-01-02")
		}
		if p.Category == "" {
			p.Category = defaultPostCategory
		}
	}
}

func (p Post) Clone() Post { return p }

func (d *TechieBitesDocument) Validate() []string {
	var errs []string

	if !validate.Required(d.Title) {
		errs = append(errs, "Title is required")
	}
	if !validate.Required(d.Description) {
		errs = append(errs, "Description is required")
	}

	for i, p := range d.Posts {
		if postErrs := p.Validate(); len(postErrs) > 0 {
			errs = append(errs, fmt.Sprintf("Post %d (%s): %s",
				i+1, orUntitled(p.Title), strings.Join(postErrs, ", ")))
		}
	}

	return errs
}

func (p Post) Validate() []string {
	var errs []string

	if !validate.Required(p.ID) {
		errs = append(errs, "Post ID is required")
	} else if !validate.Slug(p.ID) {
		errs = append(errs, `Post ID must be in kebab-case format (e.g., "my-article-title")`)
	}
	if !validate.Required(p.Title) {
		errs = append(errs, "Post title is required")
	}
	if !validate.Required(p.Date) {
		errs = append(errs, "Date is required")
	} else if !validate.Date(p.Date) {
		errs = append(errs, "Date must be a valid date")
	}
	if !validate.Required(p.Excerpt) {
		errs = append(errs, "Excerpt is required")
	}
	if !validate.Required(p.Content) {
		errs = append(errs, "Content is required")
	}
	if !validate.Required(p.Category) {
		errs = append(errs, "Category is required")
	}

	return errs
}

// Finalize trims text fields and derives a missing id from the title.
func (p Post) Finalize() Post {
	out := p
	out.Title = strings.TrimSpace(out.Title)
	out.Excerpt = strings.TrimSpace(out.Excerpt)
	out.Author = strings.TrimSpace(out.Author)
	if out.ID == "" {
		out.ID = validate.Slugify(out.Title)
	}
	return out
}
