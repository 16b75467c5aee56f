package model

import (
	"fmt"
	"strings"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/validate"
)

// TimePass editor option sets.
var (
	TimePassCategoryOptions = []string{"Fun with numbers", "Puzzle Games"}
	TimePassTypeOptions     = []string{"Math Trick", "Puzzle Game"}
)

const (
	defaultEntryCategory = "Puzzle Games"
	defaultEntryType     = "Puzzle Game"
)

// TimePassDocument is the puzzles-and-tricks micro-site.
type TimePassDocument struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Entries     []Entry `json:"entries"`
}

// Entry is one puzzle or math trick, optionally with YouTube videos.
type Entry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Content  string  `json:"content"`
	Featured bool    `json:"featured"`
	Videos   []Video `json:"videos"`
}

// Video is a YouTube link attached to an entry.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func DefaultTimePassDocument() *TimePassDocument {
	return &TimePassDocument{
		Title:   "TimePass",
		Entries: []Entry{},
	}
}

func DefaultEntry() Entry {
	return Entry{
		Category: defaultEntryCategory,
		Type:     defaultEntryType,
		Videos:   []Video{},
	}
}

func (d *TimePassDocument) IsEmpty() bool { return isZero(d) }

func (d *TimePassDocument) Normalize() {
	if d.Title == "" {
		d.Title = "TimePass"
	}
	d.Entries = ensure(d.Entries)
	for i := range d.Entries {
		e := &d.Entries[i]
		if e.Category == "" {
			e.Category = defaultEntryCategory
		}
		if e.Type == "" {
			e.Type = defaultEntryType
		}
		e.Videos = ensure(e.Videos)
	}
}

// Clone returns a deep copy safe to edit as a dialog draft.
func (e Entry) Clone() Entry {
	out := e
	out.Videos = append([]Video{}, e.Videos...)
	return out
}

func (d *TimePassDocument) Validate() []string {
	var errs []string

	if !validate.Required(d.Title) {
		errs = append(errs, "Title is required")
	}
	if !validate.Required(d.Description) {
		errs = append(errs, "Description is required")
	}

	for i, e := range d.Entries {
		if entryErrs := e.Validate(); len(entryErrs) > 0 {
			errs = append(errs, fmt.Sprintf("Entry %d (%s): %s",
				i+1, orUntitled(e.Title), strings.Join(entryErrs, ", ")))
		}
	}

	return errs
}

func (e Entry) Validate() []string {
	var errs []string

	if !validate.Required(e.ID) {
		errs = append(errs, "Entry ID is required")
	} else if !validate.Slug(e.ID) {
		errs = append(errs, `Entry ID must be in kebab-case format (e.g., "my-puzzle-title")`)
	}
	if !validate.Required(e.Title) {
		errs = append(errs, "Entry title is required")
	}
	if !validate.Required(e.Category) {
		errs = append(errs, "Category is required")
	}
	if !validate.Required(e.Type) {
		errs = append(errs, "Type is required")
	}
	if !validate.Required(e.Content) {
		errs = append(errs, "Content is required")
	}

	for i, v := range e.Videos {
		if !validate.Required(v.Title) {
			errs = append(errs, fmt.Sprintf("Video %d: Title is required", i+1))
		}
		if !validate.Required(v.URL) {
			errs = append(errs, fmt.Sprintf("Video %d: URL is required", i+1))
		} else if !validate.YouTubeURL(v.URL) {
			errs = append(errs, fmt.Sprintf("Video %d: Must be a valid YouTube URL", i+1))
		}
	}

	return errs
}

// Finalize trims text fields and derives a missing id from the title.
func (e Entry) Finalize() Entry {
	out := e.Clone()
	out.Title = strings.TrimSpace(out.Title)
	if out.ID == "" {
		out.ID = validate.Slugify(out.Title)
	}
	if out.Videos == nil {
		out.Videos = []Video{}
	}
	return out
}
