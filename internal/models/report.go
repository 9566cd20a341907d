package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusVerified = "verified"
)

// Report is an incident report. AuthorID is always set: creation
// requires authentication, and the Anonymous flag only masks the author
// in responses, never in permission checks.
type Report struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string         `gorm:"size:255" json:"title"`
	Body         string         `gorm:"type:text;not null" json:"body"`
	UniversityID uuid.UUID      `gorm:"type:uuid;not null;index" json:"university_id"`
	AuthorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Anonymous    bool           `gorm:"default:false" json:"anonymous"`
	IsPublic     bool           `gorm:"default:true;index" json:"is_public"`
	Media        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"media"`
	Status       string         `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	University University `gorm:"foreignKey:UniversityID" json:"-"`
	Author     User       `gorm:"foreignKey:AuthorID" json:"-"`
}

// MediaItem is one attachment reference stored in the Media JSON column.
// The platform stores URLs only; the bytes live elsewhere.
type MediaItem struct {
	URL  string `json:"url"`
	Kind string `json:"kind"` // "image" or "file"
}

// ReportLike is one user's like on one report. The unique index gives
// the set semantics: a user is a member at most once, and concurrent
// toggles from one user resolve at the constraint.
type ReportLike struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_report_likes_report_user" json:"report_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_report_likes_report_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportFlag is one user's flag on one report. Unlike likes, flagging is
// one-way: a second flag from the same user is a conflict, and only an
// admin dismissal clears the set.
type ReportFlag struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_report_flags_report_user" json:"report_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_report_flags_report_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
