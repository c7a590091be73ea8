// Package content loads the structured page document authored in the CMS.
// The CMS owns storage and versioning; this package only decodes an exported
// document, applies defaults, and validates its shape.
package content

import (
	"errors"
	"fmt"
	"time"
)

// DefaultIntervalMs is the rotation delay used when a section does not set one.
const DefaultIntervalMs = 4000

// Names of the rotating sections.
const (
	SectionClients   = "clients"
	SectionSolutions = "solutions"
)

// ErrInvalid marks validation failures.
var ErrInvalid = errors.New("invalid content")

// Document is one exported page of site content.
type Document struct {
	Header    Header   `yaml:"header" toml:"header" json:"header"`
	Hero      Hero     `yaml:"hero" toml:"hero" json:"hero"`
	Team      Team     `yaml:"team" toml:"team" json:"team"`
	Projects  Projects `yaml:"projects" toml:"projects" json:"projects"`
	Clients   Rotating `yaml:"clients" toml:"clients" json:"clients"`
	Solutions Rotating `yaml:"solutions" toml:"solutions" json:"solutions"`
	Contact   Contact  `yaml:"contact" toml:"contact" json:"contact"`
	Footer    Footer   `yaml:"footer" toml:"footer" json:"footer"`
}

// Link is a labelled href.
type Link struct {
	Label string `yaml:"label" toml:"label" json:"label"`
	Href  string `yaml:"href" toml:"href" json:"href"`
}

// Header is the top navigation bar.
type Header struct {
	Brand string `yaml:"brand" toml:"brand" json:"brand"`
	Nav   []Link `yaml:"nav" toml:"nav" json:"nav"`
}

// Hero is the opening banner.
type Hero struct {
	Headline string `yaml:"headline" toml:"headline" json:"headline"`
	Tagline  string `yaml:"tagline" toml:"tagline" json:"tagline"`
	CTA      Link   `yaml:"cta" toml:"cta" json:"cta"`
}

// Member is one person on the team.
type Member struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Role string `yaml:"role" toml:"role" json:"role"`
	Bio  string `yaml:"bio" toml:"bio" json:"bio"`
}

// Team lists the people section.
type Team struct {
	Title   string   `yaml:"title" toml:"title" json:"title"`
	Members []Member `yaml:"members" toml:"members" json:"members"`
}

// Project is a completed or ongoing build.
type Project struct {
	Name     string `yaml:"name" toml:"name" json:"name"`
	Location string `yaml:"location" toml:"location" json:"location"`
	Year     int    `yaml:"year" toml:"year" json:"year"`
	Status   string `yaml:"status" toml:"status" json:"status"`
	Summary  string `yaml:"summary" toml:"summary" json:"summary"`
}

// Projects is the project showcase strip.
type Projects struct {
	Title string    `yaml:"title" toml:"title" json:"title"`
	Items []Project `yaml:"items" toml:"items" json:"items"`
}

// Item is one entry of a rotating section. Content is forwarded to
// presentation as-is.
type Item struct {
	Name    string `yaml:"name" toml:"name" json:"name"`
	Company string `yaml:"company" toml:"company" json:"company"`
	Logo    string `yaml:"logo" toml:"logo" json:"logo"`
	Summary string `yaml:"summary" toml:"summary" json:"summary"`
	Body    string `yaml:"body" toml:"body" json:"body"`
	Link    string `yaml:"link" toml:"link" json:"link"`
}

// Rotating is a section whose active item advances on a timer.
type Rotating struct {
	Title      string `yaml:"title" toml:"title" json:"title"`
	IntervalMs *int   `yaml:"interval_ms" toml:"interval_ms" json:"interval_ms,omitempty"`
	Enabled    *bool  `yaml:"enabled" toml:"enabled" json:"enabled,omitempty"`
	Items      []Item `yaml:"items" toml:"items" json:"items"`
}

// Interval returns the rotation delay, defaulting to DefaultIntervalMs.
func (r Rotating) Interval() time.Duration {
	if r.IntervalMs == nil || *r.IntervalMs <= 0 {
		return DefaultIntervalMs * time.Millisecond
	}
	return time.Duration(*r.IntervalMs) * time.Millisecond
}

// IsEnabled reports whether automatic rotation is on. Unset means enabled.
func (r Rotating) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Office is a contact location.
type Office struct {
	City    string `yaml:"city" toml:"city" json:"city"`
	Address string `yaml:"address" toml:"address" json:"address"`
	Phone   string `yaml:"phone" toml:"phone" json:"phone"`
}

// Contact is the contact block.
type Contact struct {
	Title   string   `yaml:"title" toml:"title" json:"title"`
	Email   string   `yaml:"email" toml:"email" json:"email"`
	Offices []Office `yaml:"offices" toml:"offices" json:"offices"`
}

// Footer closes the page.
type Footer struct {
	Copyright string   `yaml:"copyright" toml:"copyright" json:"copyright"`
	Companies []string `yaml:"companies" toml:"companies" json:"companies"`
	Links     []Link   `yaml:"links" toml:"links" json:"links"`
}

// Rotating returns the rotating section by name.
func (d *Document) Rotating(name string) (Rotating, bool) {
	switch name {
	case SectionClients:
		return d.Clients, true
	case SectionSolutions:
		return d.Solutions, true
	default:
		return Rotating{}, false
	}
}

// RotatingNames lists the rotating sections in page order.
func RotatingNames() []string {
	return []string{SectionClients, SectionSolutions}
}

// Validate reports every structural problem at once.
func (d *Document) Validate() error {
	var errs []error

	if d.Header.Brand == "" {
		errs = append(errs, fmt.Errorf("%w: header.brand is required", ErrInvalid))
	}
	for _, name := range RotatingNames() {
		r, _ := d.Rotating(name)
		if r.IntervalMs != nil && *r.IntervalMs <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s.interval_ms must be positive, got %d", ErrInvalid, name, *r.IntervalMs))
		}
		for i, item := range r.Items {
			if item.Name == "" {
				errs = append(errs, fmt.Errorf("%w: %s.items[%d].name is required", ErrInvalid, name, i))
			}
		}
	}
	for i, p := range d.Projects.Items {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%w: projects.items[%d].name is required", ErrInvalid, i))
		}
	}

	return errors.Join(errs...)
}
