package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Link is a labelled outbound or in-page link.
type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Skill is one highlight in the about section.
type Skill struct {
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}

// Contact is the call-to-action block at the bottom of the page.
type Contact struct {
	Heading string `json:"heading" yaml:"heading"`
	Blurb   string `json:"blurb" yaml:"blurb"`
	Label   string `json:"label" yaml:"label"`
	Href    string `json:"href" yaml:"href"`
}

// Site is the static copy surrounding the project grid.
type Site struct {
	Owner    string   `json:"owner" yaml:"owner"`
	Headline string   `json:"headline" yaml:"headline"`
	Tagline  string   `json:"tagline" yaml:"tagline"`
	About    []string `json:"about" yaml:"about"`
	Skills   []Skill  `json:"skills" yaml:"skills"`
	Nav      []Link   `json:"nav" yaml:"nav"`
	Contact  Contact  `json:"contact" yaml:"contact"`
	Social   []Link   `json:"social" yaml:"social"`
}

// Validate validates the site profile.
func (s Site) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Owner, validation.Required),
		validation.Field(&s.Nav, validation.Each(validation.By(validateLink))),
		validation.Field(&s.Social, validation.Each(validation.By(validateLink))),
	)
}

func validateLink(value interface{}) error {
	l, _ := value.(Link)
	return validation.ValidateStruct(&l,
		validation.Field(&l.Label, validation.Required),
		validation.Field(&l.Href, validation.Required),
	)
}
