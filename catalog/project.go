package catalog

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project is one immutable project record shown as a card and in the modal.
type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"long_description"`
	Tags            []string `json:"tags" yaml:"tags"`
	Images          []string `json:"images" yaml:"images"`
	Link            string   `json:"link,omitempty" yaml:"link"`
}

// Validate validates a single record.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Length(1, 64)),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Tags, validation.Each(validation.Required)),
		validation.Field(&p.Images, validation.Each(validation.Required)),
	)
}

// Body is the text shown in the modal: the long description when present,
// otherwise the summary.
func (p Project) Body() string {
	if p.LongDescription != "" {
		return p.LongDescription
	}
	return p.Description
}

// ImageCount returns the number of carousel images.
func (p Project) ImageCount() int {
	return len(p.Images)
}

// HasImages reports whether the carousel should be offered at all.
func (p Project) HasImages() bool {
	return len(p.Images) > 0
}

func (p Project) clone() Project {
	p.Tags = slices.Clone(p.Tags)
	p.Images = slices.Clone(p.Images)
	return p
}
