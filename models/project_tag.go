package models

import "github.com/google/uuid"

// ProjectTag is one tag of a project. The same value may appear more than once.
type ProjectTag struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID string    `json:"project_id" db:"project_id" gorm:"type:text;not null;index:idx_project_tag_project_id;constraint:OnDelete:CASCADE"`
	Position  int       `json:"position" db:"position" gorm:"not null;default:0"`
	Value     string    `json:"value" db:"value" gorm:"type:text;not null"`
}
