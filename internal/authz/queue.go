package authz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationFilter is the role-scoped selection of private reports a
// caller may triage. It is a plain value so the selection rules can be
// tested without a database.
type ModerationFilter struct {
	// Empty means the caller sees nothing (guests). Not an error.
	Empty bool
	// UniversityID restricts to one university when set (moderators).
	UniversityID *uuid.UUID
	// AuthorID restricts to the caller's own reports when set (members).
	AuthorID *uuid.UUID
}

// QueueFor builds the moderation queue filter for a caller. Admins see
// every private report, moderators those of their university, members
// their own, guests none.
func QueueFor(caller Caller) ModerationFilter {
	switch caller.Role {
	case RoleAdmin:
		return ModerationFilter{}
	case RoleModerator:
		if caller.UniversityID == nil {
			return ModerationFilter{Empty: true}
		}
		return ModerationFilter{UniversityID: caller.UniversityID}
	case RoleMember:
		id := caller.ID
		return ModerationFilter{AuthorID: &id}
	default:
		return ModerationFilter{Empty: true}
	}
}

// Scope turns the filter into a GORM scope over the reports table.
func (f ModerationFilter) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Empty {
			return db.Where("1 = 0")
		}
		db = db.Where("is_public = ?", false)
		if f.UniversityID != nil {
			db = db.Where("university_id = ?", *f.UniversityID)
		}
		if f.AuthorID != nil {
			db = db.Where("author_id = ?", *f.AuthorID)
		}
		return db
	}
}
