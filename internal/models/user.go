package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Role is one of member, moderator, admin.
// Students carry a university affiliation and year of study; everyone
// else records a profession instead.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"size:20;default:'member';index" json:"role"`
	City         string     `gorm:"size:100" json:"city"`
	IsStudent    bool       `gorm:"default:true" json:"is_student"`
	UniversityID *uuid.UUID `gorm:"type:uuid;index" json:"university_id,omitempty"`
	YearOfStudy  string     `gorm:"size:50" json:"year_of_study,omitempty"`
	Profession   string     `gorm:"size:100" json:"profession,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
