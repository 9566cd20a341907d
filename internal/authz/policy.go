package authz

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
)

// CanViewReport decides read access for a single report. Public reports
// are visible to everyone. Private reports are visible to their author,
// to admins, and to moderators of the report's university.
//
// Callers must use the stored author id, never the masked projection:
// anonymity controls display only.
func CanViewReport(r *models.Report, caller Caller) bool {
	if r.IsPublic {
		return true
	}
	switch caller.Role {
	case RoleAdmin:
		return true
	case RoleModerator:
		if caller.ModeratorOf(r.UniversityID) {
			return true
		}
	}
	return caller.Authenticated && caller.ID == r.AuthorID
}

// CanMutate decides edit/delete access for any owned record (report,
// comment or reply). Only the owner and admins may mutate; moderators
// get no extra mutation rights.
func CanMutate(authorID uuid.UUID, caller Caller) bool {
	if !caller.Authenticated {
		return false
	}
	if caller.Role == RoleAdmin {
		return true
	}
	return caller.ID == authorID
}

// CanSeeAuthor decides whether the real author identity of an anonymous
// record may appear in a response: only the author themselves and admins
// see through the mask.
func CanSeeAuthor(authorID uuid.UUID, caller Caller) bool {
	if !caller.Authenticated {
		return false
	}
	return caller.Role == RoleAdmin || caller.ID == authorID
}
