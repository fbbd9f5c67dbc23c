package models

import "gorm.io/datatypes"

// Project is one catalog row. Rows are read once at startup and never written
// by the server.
type Project struct {
	ID              string                      `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	Position        int                         `json:"position" db:"position" gorm:"not null;default:0;index:idx_project_position"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription string                      `json:"long_description" db:"long_description" gorm:"type:text"`
	Link            string                      `json:"link" db:"link" gorm:"type:text"`
	Images          datatypes.JSONSlice[string] `json:"images" db:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Tags            []ProjectTag                `json:"tags,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TagValues returns the tag strings in display order. Tags must already be
// sorted by Position.
func (p Project) TagValues() []string {
	values := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		values = append(values, t.Value)
	}
	return values
}
