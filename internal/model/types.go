// Package model defines shared data structures.
package model

import "strings"

// Region identifies one of the navigable page sections.
type Region string

// Regions in page order.
const (
	RegionHome       Region = "home"
	RegionAbout      Region = "about"
	RegionExperience Region = "experience"
	RegionProjects   Region = "projects"
	RegionContact    Region = "contact"
)

// Regions lists every region in page order.
var Regions = []Region{RegionHome, RegionAbout, RegionExperience, RegionProjects, RegionContact}

// Index returns the position of r in Regions, or -1 when r is not a region.
func (r Region) Index() int {
	for i, candidate := range Regions {
		if candidate == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the enumerated regions.
func (r Region) Valid() bool {
	return r.Index() >= 0
}

// ParseRegion resolves a region name, ignoring case and surrounding space.
func ParseRegion(name string) (Region, bool) {
	r := Region(strings.ToLower(strings.TrimSpace(name)))
	return r, r.Valid()
}

// Span locates a rendered region within the page, in lines.
type Span struct {
	Region Region
	Top    int
	Height int
}

// Bottom returns the first line after the span.
func (s Span) Bottom() int {
	return s.Top + s.Height
}

// Config defines viewer settings.
type Config struct {
	Dark      bool
	Particles int
	Mouse     bool
	Threshold float64
	LogFile   string
}

// Skill is a labeled proficiency rendered as a progress bar.
type Skill struct {
	Name  string
	Icon  string
	Level int
}

// Project is a showcased piece of work.
type Project struct {
	Title       string
	Date        string
	Description string
	Tech        []string
	Gradient    string
	Icon        string
}

// Status marks whether an experience entry is ongoing.
type Status string

// Experience statuses.
const (
	StatusCurrent   Status = "current"
	StatusCompleted Status = "completed"
)

// ExperienceEntry is a position held.
type ExperienceEntry struct {
	Title        string
	Organization string
	Period       string
	Description  string
	Icon         string
	Status       Status
}

// Certification is a completed course or credential.
type Certification struct {
	Name     string
	Provider string
	Icon     string
}

// Education is a completed or ongoing degree.
type Education struct {
	Degree      string
	Institution string
	Details     string
}

// Achievement is an award or recognition.
type Achievement struct {
	Title  string
	Issuer string
}

// LinkKind classifies an outbound link.
type LinkKind string

// Link kinds.
const (
	LinkMail     LinkKind = "mail"
	LinkPhone    LinkKind = "phone"
	LinkGitHub   LinkKind = "github"
	LinkLinkedIn LinkKind = "linkedin"
)

// Link is an outbound address shown on the page.
type Link struct {
	Kind  LinkKind
	Label string
	URL   string
}

// Profile holds the biographical header.
type Profile struct {
	Name     string
	Initials string
	Role     string
	Location string
	Summary  string
	Bio      string
}
