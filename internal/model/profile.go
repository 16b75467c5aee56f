package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/validate"
)

// Profile editor option sets.
var (
	CourseLevelOptions   = []string{"Undergraduate", "Postgraduate", "Undergraduate/Postgraduate"}
	ProjectStatusOptions = []string{"Ongoing", "Completed", "Planned"}
)

const (
	defaultCourseLevel   = "Undergraduate"
	defaultProjectStatus = "Ongoing"
)

// ProfileDocument carries everything rendered on the main portfolio pages:
// personal info, social links, the about section, education and position
// history, research, teaching, achievements, content channels, and SEO.
type ProfileDocument struct {
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	SocialLinks     SocialLinks     `json:"socialLinks"`
	About           About           `json:"about"`
	Education       []Education     `json:"education"`
	Positions       []Position      `json:"positions"`
	Research        Research        `json:"research"`
	Teaching        Teaching        `json:"teaching"`
	Achievements    []Achievement   `json:"achievements"`
	ContentCreation ContentCreation `json:"contentCreation"`
	SEO             SEO             `json:"seo"`
}

type PersonalInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Designation string `json:"designation"`
	Institution string `json:"institution"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Photo       string `json:"photo"`
	Tagline     string `json:"tagline"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Office      string `json:"office"`
	OfficeHours string `json:"officeHours"`
}

type SocialLinks struct {
	Website   string `json:"website"`
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

type About struct {
	Biography  string   `json:"biography"`
	Mission    string   `json:"mission"`
	Experience string   `json:"experience"`
	Highlights []string `json:"highlights"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Focus       string `json:"focus"`
}

type Position struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Period      string `json:"period"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Research struct {
	Interests []string          `json:"interests"`
	Overview  string            `json:"overview"`
	Areas     []string          `json:"areas"`
	Projects  []ResearchProject `json:"projects"`
}

type ResearchProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Funding     string `json:"funding"`
}

type Teaching struct {
	Philosophy      string           `json:"philosophy"`
	Courses         []TeachingCourse `json:"courses"`
	TeachingMethods []string         `json:"teachingMethods"`
	Students        StudentCounts    `json:"students"`
}

type TeachingCourse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

type StudentCounts struct {
	Current   DegreeCounts `json:"current"`
	Graduated DegreeCounts `json:"graduated"`
	Reach     string       `json:"reach"`
}

type DegreeCounts struct {
	PhD     int `json:"phd"`
	Masters int `json:"masters"`
}

type Achievement struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         int    `json:"year"`
	Description  string `json:"description"`
}

type ContentCreation struct {
	Blog    BlogChannel    `json:"blog"`
	GitHub  GitHubChannel  `json:"github"`
	YouTube YouTubeChannel `json:"youtube"`
}

type BlogChannel struct {
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Sections    []string `json:"sections"`
}

type GitHubChannel struct {
	URL          string   `json:"url"`
	Repositories []string `json:"repositories"`
	Description  string   `json:"description"`
}

type YouTubeChannel struct {
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Content     []string `json:"content"`
}

// SEO keywords are stored as one comma-joined string, the way the editor
// presents them.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

func DefaultProfileDocument() *ProfileDocument {
	return &ProfileDocument{
		About:     About{Highlights: []string{}},
		Education: []Education{},
		Positions: []Position{},
		Research: Research{
			Interests: []string{},
			Areas:     []string{},
			Projects:  []ResearchProject{},
		},
		Teaching: Teaching{
			Courses:         []TeachingCourse{},
			TeachingMethods: []string{},
		},
		Achievements: []Achievement{},
		ContentCreation: ContentCreation{
			Blog:    BlogChannel{Sections: []string{}},
			GitHub:  GitHubChannel{Repositories: []string{}},
			YouTube: YouTubeChannel{Content: []string{}},
		},
	}
}

func DefaultEducation() Education { return Education{} }

func DefaultPosition() Position { return Position{} }

func DefaultResearchProject() ResearchProject {
	return ResearchProject{Status: defaultProjectStatus}
}

func DefaultTeachingCourse() TeachingCourse {
	return TeachingCourse{Level: defaultCourseLevel}
}

func DefaultAchievement() Achievement {
	return Achievement{Year: time.Now().Year()}
}

func (d *ProfileDocument) IsEmpty() bool { return isZero(d) }

func (d *ProfileDocument) Normalize() {
	d.About.Highlights = compact(ensure(d.About.Highlights))
	d.Education = ensure(d.Education)
	d.Positions = ensure(d.Positions)

	d.Research.Interests = compact(ensure(d.Research.Interests))
	d.Research.Areas = compact(ensure(d.Research.Areas))
	d.Research.Projects = ensure(d.Research.Projects)
	for i := range d.Research.Projects {
		if d.Research.Projects[i].Status == "" {
			d.Research.Projects[i].Status = defaultProjectStatus
		}
	}

	d.Teaching.Courses = ensure(d.Teaching.Courses)
	for i := range d.Teaching.Courses {
		if d.Teaching.Courses[i].Level == "" {
			d.Teaching.Courses[i].Level = defaultCourseLevel
		}
	}
	d.Teaching.TeachingMethods = compact(ensure(d.Teaching.TeachingMethods))

	d.Achievements = ensure(d.Achievements)
	for i := range d.Achievements {
		if d.Achievements[i].Year == 0 {
			d.Achievements[i].Year = time.Now().Year()
		}
	}

	d.ContentCreation.Blog.Sections = compact(ensure(d.ContentCreation.Blog.Sections))
	d.ContentCreation.GitHub.Repositories = compact(ensure(d.ContentCreation.GitHub.Repositories))
	d.ContentCreation.YouTube.Content = compact(ensure(d.ContentCreation.YouTube.Content))
}

func (e Education) Clone() Education             { return e }
func (p Position) Clone() Position               { return p }
func (p ResearchProject) Clone() ResearchProject { return p }
func (c TeachingCourse) Clone() TeachingCourse   { return c }
func (a Achievement) Clone() Achievement         { return a }

func (d *ProfileDocument) Validate() []string {
	var errs []string

	if !validate.Required(d.PersonalInfo.Name) {
		errs = append(errs, "Name is required")
	}
	if !validate.Required(d.PersonalInfo.Email) {
		errs = append(errs, "Email is required")
	} else if !validate.Email(d.PersonalInfo.Email) {
		errs = append(errs, "Invalid email format")
	}

	if !validate.URL(d.SocialLinks.Website) {
		errs = append(errs, "Invalid website URL")
	}
	if !validate.URL(d.SocialLinks.GitHub) {
		errs = append(errs, "Invalid GitHub URL")
	}
	if !validate.URL(d.SocialLinks.LinkedIn) {
		errs = append(errs, "Invalid LinkedIn URL")
	}
	if !validate.URL(d.SocialLinks.YouTube) {
		errs = append(errs, "Invalid YouTube URL")
	}

	if !validate.Required(d.About.Biography) {
		errs = append(errs, "Biography is required")
	}

	if !validate.Required(d.SEO.Title) {
		errs = append(errs, "SEO title is required")
	}
	if !validate.Required(d.SEO.Description) {
		errs = append(errs, "SEO description is required")
	}

	errs = appendChildErrors(errs, "Education", d.Education, func(e Education) string { return e.Degree })
	errs = appendChildErrors(errs, "Position", d.Positions, func(p Position) string { return p.Title })
	errs = appendChildErrors(errs, "Project", d.Research.Projects, func(p ResearchProject) string { return p.Title })
	errs = appendChildErrors(errs, "Course", d.Teaching.Courses, func(c TeachingCourse) string { return c.Name })
	errs = appendChildErrors(errs, "Achievement", d.Achievements, func(a Achievement) string { return a.Title })

	return errs
}

// appendChildErrors validates each item of a profile child collection and
// appends its errors under a "Type N (label)" prefix.
func appendChildErrors[T interface{ Validate() []string }](errs []string, kind string, items []T, label func(T) string) []string {
	for i, item := range items {
		if itemErrs := item.Validate(); len(itemErrs) > 0 {
			errs = append(errs, fmt.Sprintf("%s %d (%s): %s",
				kind, i+1, orUntitled(label(item)), strings.Join(itemErrs, ", ")))
		}
	}
	return errs
}

func (e Education) Validate() []string {
	var errs []string
	if !validate.Required(e.Degree) {
		errs = append(errs, "Degree is required")
	}
	if !validate.Required(e.Institution) {
		errs = append(errs, "Institution is required")
	}
	return errs
}

func (p Position) Validate() []string {
	var errs []string
	if !validate.Required(p.Title) {
		errs = append(errs, "Position title is required")
	}
	if !validate.Required(p.Institution) {
		errs = append(errs, "Institution is required")
	}
	if !validate.Required(p.Description) {
		errs = append(errs, "Description is required")
	}
	return errs
}

func (p ResearchProject) Validate() []string {
	var errs []string
	if !validate.Required(p.Title) {
		errs = append(errs, "Project title is required")
	}
	if !validate.Required(p.Description) {
		errs = append(errs, "Project description is required")
	}
	return errs
}

func (c TeachingCourse) Validate() []string {
	var errs []string
	if !validate.Required(c.Code) {
		errs = append(errs, "Course code is required")
	}
	if !validate.Required(c.Name) {
		errs = append(errs, "Course name is required")
	}
	if !validate.Required(c.Description) {
		errs = append(errs, "Course description is required")
	}
	return errs
}

func (a Achievement) Validate() []string {
	var errs []string
	if !validate.Required(a.Title) {
		errs = append(errs, "Achievement title is required")
	}
	if !validate.Required(a.Organization) {
		errs = append(errs, "Organization is required")
	}
	if !validate.Year(a.Year) {
		errs = append(errs, "Invalid year")
	}
	return errs
}

func (e Education) Finalize() Education {
	e.Degree = strings.TrimSpace(e.Degree)
	e.Institution = strings.TrimSpace(e.Institution)
	return e
}

func (p Position) Finalize() Position {
	p.Title = strings.TrimSpace(p.Title)
	p.Institution = strings.TrimSpace(p.Institution)
	return p
}

func (p ResearchProject) Finalize() ResearchProject {
	p.Title = strings.TrimSpace(p.Title)
	if p.Status == "" {
		p.Status = defaultProjectStatus
	}
	return p
}

func (c TeachingCourse) Finalize() TeachingCourse {
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	if c.Level == "" {
		c.Level = defaultCourseLevel
	}
	return c
}

func (a Achievement) Finalize() Achievement {
	a.Title = strings.TrimSpace(a.Title)
	a.Organization = strings.TrimSpace(a.Organization)
	return a
}
