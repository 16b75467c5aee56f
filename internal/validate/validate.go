// Package validate holds the field-class checks shared by every content
// editor: required text, kebab-case slugs, http(s) URLs, YouTube URLs,
// emails, calendar dates, and years. All functions are pure, so document
// validators stay deterministic and order-stable.
//
// URL-typed and email-typed fields are optional by default: the empty
// string is valid, and required-ness is a separate check at the entity
// level. Slug and date checks treat empty as invalid because their callers
// only invoke them on required fields.
package validate

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// slugPattern accepts kebab-case identifiers: lowercase alphanumeric runs
// joined by single hyphens, no leading or trailing hyphen.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// nonAlnumRun matches every maximal run of characters that cannot appear
// in a slug. Slugify collapses each run to one hyphen.
var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// emailPattern is the conventional local@domain.tld shape, intentionally
// loose rather than RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MinYear and the +10 headroom on MaxYear bound achievement years.
	MinYear         = 1900
	maxYearHeadroom = 10
)

// Required reports whether s contains any non-whitespace content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Slug reports whether s is a valid kebab-case identifier.
// The empty string is not a valid slug.
func Slug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify derives a candidate identifier from a human title: lowercase,
// every run of non-alphanumeric characters becomes a single hyphen, and
// leading/trailing hyphens are stripped.
//
// The result can be empty (title with no alphanumeric characters); callers
// must treat that as a required-field failure, not a usable id.
func Slugify(title string) string {
	s := nonAlnumRun.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// URL reports whether s is an absolute http or https URL.
// The empty string is valid: URL fields are optional unless the entity
// validator also requires them.
func URL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// YouTubeURL reports whether s is a valid http(s) URL pointing at YouTube
// (youtube.com or the youtu.be short host). Empty is not accepted here;
// the only callers are video entries whose URL is required.
func YouTubeURL(s string) bool {
	if s == "" {
		return false
	}
	return URL(s) && (strings.Contains(s, "youtube.com") || strings.Contains(s, "youtu.be"))
}

// Email reports whether s looks like local@domain.tld.
// The empty string is valid: email fields are optional by default.
func Email(s string) bool {
	if s == "" {
		return true
	}
	return emailPattern.MatchString(s)
}

// Date reports whether s parses to a real calendar date. The editors write
// ISO dates (2006-01-02) but older documents carry RFC 3339 timestamps,
// so both are accepted.
func Date(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Year reports whether y falls in [1900, currentYear+10].
func Year(y int) bool {
	return y >= MinYear && y <= time.Now().Year()+maxYearHeadroom
}
