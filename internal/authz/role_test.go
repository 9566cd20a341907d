package authz

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"member", RoleMember},
		{"student", RoleMember},
		{"moderator", RoleModerator},
		{"admin", RoleAdmin},
		{"", RoleGuest},
		{"superuser", RoleGuest},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	if RoleGuest.String() != "guest" || RoleAdmin.String() != "admin" {
		t.Fatal("unexpected role strings")
	}
	if got := ParseRole(RoleModerator.String()); got != RoleModerator {
		t.Fatalf("round trip = %v, want %v", got, RoleModerator)
	}
}
