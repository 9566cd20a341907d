package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	UniversityStatusPending  = "pending"
	UniversityStatusApproved = "approved"
)

// University is shared reference data owned by no single user. Names are
// stored normalized (trimmed, lower-cased) and unique; records created
// implicitly from free-text input start as pending and stay out of
// public listings until an admin approves them.
type University struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Location  string         `gorm:"size:255" json:"location"`
	Contacts  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"contacts"`
	Status    string         `gorm:"size:20;not null;default:'approved';index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UniversityContacts is the shape stored in the Contacts JSON column.
type UniversityContacts struct {
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	CounsellingPhone string `json:"counselling_phone,omitempty"`
	Email            string `json:"email,omitempty"`
}
