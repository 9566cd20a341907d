package authz

import "github.com/google/uuid"

// Caller is the resolved identity for one request. It is built by the
// auth middleware from verified JWT claims and never persisted.
type Caller struct {
	ID            uuid.UUID
	Role          Role
	UniversityID  *uuid.UUID // moderator affiliation, nil otherwise
	Authenticated bool
}

// Anonymous is the caller for requests carrying no (or an invalid)
// credential. Read paths accept it; mutating paths reject it.
func Anonymous() Caller {
	return Caller{Role: RoleGuest}
}

// ModeratorOf reports whether the caller moderates the given university.
func (c Caller) ModeratorOf(universityID uuid.UUID) bool {
	return c.Role == RoleModerator && c.UniversityID != nil && *c.UniversityID == universityID
}
