package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseFile is a documented, curated incident published by moderators or
// admins. Unlike reports these are always public and never anonymous.
type CaseFile struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	DateOfIncident *time.Time `json:"date_of_incident,omitempty"`
	SourceURL      string     `gorm:"size:512" json:"source_url,omitempty"`
	ImageURL       string     `gorm:"size:512" json:"image_url,omitempty"`
	AuthorID       uuid.UUID  `gorm:"type:uuid;not null" json:"author_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
