package model

import "encoding/json"

// GeneralDocument holds sitewide settings that don't belong to any one
// micro-site: site metadata, navigation, statistics, theme, footer. The
// sections and features maps are free-form and passed through untouched.
type GeneralDocument struct {
	Site         Site                       `json:"site"`
	Personal     SitePersonal               `json:"personal"`
	About        SiteAbout                  `json:"about"`
	Navigation   Navigation                 `json:"navigation"`
	Sections     map[string]json.RawMessage `json:"sections"`
	Statistics   Statistics                 `json:"statistics"`
	Features     map[string]json.RawMessage `json:"features"`
	Testimonials []Testimonial              `json:"testimonials"`
	Contact      Contact                    `json:"contact"`
	SEO          SiteSEO                    `json:"seo"`
	Theme        Theme                      `json:"theme"`
	Footer       Footer                     `json:"footer"`
}

type Site struct {
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Founded     string `json:"founded"`
	LastUpdated string `json:"lastUpdated"`
}

type SitePersonal struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Tagline     string `json:"tagline"`
	Photo       string `json:"photo"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	GitHub      string `json:"github"`
	YouTube     string `json:"youtube"`
}

type SiteAbout struct {
	Biography           string   `json:"biography"`
	Mission             string   `json:"mission"`
	Experience          string   `json:"experience"`
	Specialization      []string `json:"specialization"`
	ProfessionalJourney []string `json:"professionalJourney"`
}

type Navigation struct {
	Main []NavItem `json:"main"`
}

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Statistics struct {
	TeachingExperience string `json:"teachingExperience"`
	InstitutionsServed int    `json:"institutionsServed"`
	Courses            int    `json:"courses"`
	VideoTutorials     string `json:"videoTutorials"`
	Articles           int    `json:"articles"`
	Quizzes            int    `json:"quizzes"`
	GitHubRepos        string `json:"githubRepos"`
	StudentsReached    string `json:"studentsReached"`
}

type Testimonial struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Text string `json:"text"`
}

type Contact struct {
	Email        string `json:"email"`
	Institution  string `json:"institution"`
	Department   string `json:"department"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
}

type SiteSEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Author      string   `json:"author"`
	OGImage     string   `json:"ogImage"`
	TwitterCard string   `json:"twitterCard"`
}

type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

type Footer struct {
	Copyright string    `json:"copyright"`
	Links     []NavItem `json:"links"`
}

func DefaultGeneralDocument() *GeneralDocument {
	return &GeneralDocument{
		About: SiteAbout{
			Specialization:      []string{},
			ProfessionalJourney: []string{},
		},
		Navigation:   Navigation{Main: []NavItem{}},
		Sections:     map[string]json.RawMessage{},
		Features:     map[string]json.RawMessage{},
		Testimonials: []Testimonial{},
		SEO:          SiteSEO{Keywords: []string{}},
		Footer:       Footer{Links: []NavItem{}},
	}
}

func (d *GeneralDocument) IsEmpty() bool { return isZero(d) }

func (d *GeneralDocument) Normalize() {
	d.About.Specialization = compact(ensure(d.About.Specialization))
	d.About.ProfessionalJourney = compact(ensure(d.About.ProfessionalJourney))
	d.Navigation.Main = ensure(d.Navigation.Main)
	if d.Sections == nil {
		d.Sections = map[string]json.RawMessage{}
	}
	if d.Features == nil {
		d.Features = map[string]json.RawMessage{}
	}
	d.Testimonials = ensure(d.Testimonials)
	d.SEO.Keywords = compact(ensure(d.SEO.Keywords))
	d.Footer.Links = ensure(d.Footer.Links)
}

// Validate is intentionally permissive: the general document is sitewide
// plumbing edited rarely, and every field may legitimately be blank while
// the site is being assembled.
func (d *GeneralDocument) Validate() []string { return nil }
