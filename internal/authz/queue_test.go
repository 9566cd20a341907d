package authz

import (
	"testing"

	"github.com/google/uuid"
)

func TestQueueForAdmin(t *testing.T) {
	f := QueueFor(admin(uuid.New()))
	if f.Empty || f.UniversityID != nil || f.AuthorID != nil {
		t.Fatalf("admin filter should be unrestricted, got %+v", f)
	}
}

func TestQueueForModerator(t *testing.T) {
	universityID := uuid.New()
	f := QueueFor(moderator(uuid.New(), universityID))
	if f.Empty {
		t.Fatal("affiliated moderator should see a queue")
	}
	if f.UniversityID == nil || *f.UniversityID != universityID {
		t.Fatalf("UniversityID = %v, want %v", f.UniversityID, universityID)
	}
	if f.AuthorID != nil {
		t.Fatal("moderator filter should not restrict by author")
	}
}

func TestQueueForModeratorWithoutAffiliation(t *testing.T) {
	f := QueueFor(Caller{ID: uuid.New(), Role: RoleModerator, Authenticated: true})
	if !f.Empty {
		t.Fatal("moderator without a university should see nothing")
	}
}

func TestQueueForMember(t *testing.T) {
	id := uuid.New()
	f := QueueFor(member(id))
	if f.Empty {
		t.Fatal("member should see own private reports")
	}
	if f.AuthorID == nil || *f.AuthorID != id {
		t.Fatalf("AuthorID = %v, want %v", f.AuthorID, id)
	}
}

func TestQueueForGuest(t *testing.T) {
	if f := QueueFor(Anonymous()); !f.Empty {
		t.Fatal("guest queue should be empty")
	}
}
