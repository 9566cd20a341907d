package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is one top-level entry in a report's discussion thread.
// Replies hang off the comment and share its lifecycle: deleting the
// comment (or the report above it) removes them.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportID  uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Anonymous bool      `gorm:"default:false" json:"anonymous"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author  User    `gorm:"foreignKey:AuthorID" json:"-"`
	Replies []Reply `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"replies"`
}

// Reply is owned exclusively by its parent comment; it has no identity
// outside it.
type Reply struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;index" json:"comment_id"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Anonymous bool      `gorm:"default:false" json:"anonymous"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
