package validate

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "C Programming", "c-programming"},
		{"collapses separator runs", "  C++   Programming!! 101 ", "c-programming-101"},
		{"already a slug", "scrambled-words-1", "scrambled-words-1"},
		{"mixed case", "Fun With Numbers", "fun-with-numbers"},
		{"no alphanumerics yields empty", "!!! ???", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	// Same input must always produce the same output.
	for i := 0; i < 3; i++ {
		if got := Slugify("#1: Scrambled Words in C Language"); got != "1-scrambled-words-in-c-language" {
			t.Fatalf("Slugify() = %q on run %d", got, i)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"c-programming", true},
		{"a", true},
		{"quiz-1", true},
		{"C Programming", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Slug(tt.slug); got != tt.want {
			t.Errorf("Slug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://a.b", true},
		{"http://example.com/path?q=1", true},
		{"", true}, // optional by default
		{"ftp://x.com", false},
		{"not a url", false},
		{"https://", false}, // scheme without host
	}

	for _, tt := range tests {
		if got := URL(tt.url); got != tt.want {
			t.Errorf("URL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://youtu.be/abc123", true},
		{"https://www.youtube.com/watch?v=abc123", true},
		{"https://vimeo.com/abc123", false},
		{"https://example.com/video", false},
		{"ftp://youtube.com/x", false},
		{"", false}, // video URLs are required
	}

	for _, tt := range tests {
		if got := YouTubeURL(tt.url); got != tt.want {
			t.Errorf("YouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"prof@university.edu", true},
		{"first.last@dept.example.co.uk", true},
		{"", true}, // optional by default
		{"missing-at.example.com", false},
		{"no domain@x", false},
		{"two@@example.com", false},
	}

	for _, tt := range tests {
		if got := Email(tt.email); got != tt.want {
			t.Errorf("Email(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-15", true},
		{"2024-02-29", true}, // leap day
		{"2023-02-29", false},
		{"not-a-date", false},
		{"2024-13-01", false},
		{"", false},
		{"2024-06-01T10:30:00Z", true}, // RFC 3339 from older documents
	}

	for _, tt := range tests {
		if got := Date(tt.date); got != tt.want {
			t.Errorf("Date(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	current := time.Now().Year()

	tests := []struct {
		year int
		want bool
	}{
		{1900, true},
		{current, true},
		{current + 10, true},
		{current + 11, false},
		{1899, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := Year(tt.year); got != tt.want {
			t.Errorf("Year(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}
