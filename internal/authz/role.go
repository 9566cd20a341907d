// Package authz holds the caller identity model and the visibility
// policy rules. Every handler resolves a Caller first and passes it
// down; nothing in the service layer reads ambient request state.
package authz

// Role is the closed set of caller roles. Guest is the zero value so an
// unresolved caller defaults to the least privilege.
type Role int

const (
	RoleGuest Role = iota
	RoleMember
	RoleModerator
	RoleAdmin
)

// ParseRole maps the role string stored on the user record (and carried
// in JWT claims) to a Role. Unknown strings degrade to guest.
func ParseRole(s string) Role {
	switch s {
	case "member", "student":
		return RoleMember
	case "moderator":
		return RoleModerator
	case "admin":
		return RoleAdmin
	default:
		return RoleGuest
	}
}

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	default:
		return "guest"
	}
}
