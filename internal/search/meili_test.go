package search

import "testing"

func TestSearchRequestOrdersTiesByRecency(t *testing.T) {
	req := searchRequest(20)

	if req.Filter != "isPublic = true" {
		t.Fatalf("filter = %v, want public-only", req.Filter)
	}
	if len(req.Sort) != 1 || req.Sort[0] != "createdAt:desc" {
		t.Fatalf("sort = %v, want [createdAt:desc]", req.Sort)
	}
	if req.Limit != 20 {
		t.Fatalf("limit = %d, want 20", req.Limit)
	}
}
