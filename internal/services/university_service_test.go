package services

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"University of Colombo", "university of colombo"},
		{"  University   of   Colombo  ", "university of colombo"},
		{"UNIVERSITY OF PERADENIYA", "university of peradeniya"},
		{"university of colombo", "university of colombo"},
		{"\tUniversity\nof Moratuwa", "university of moratuwa"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	in := "  University   Of  Jaffna "
	once := NormalizeName(in)
	if twice := NormalizeName(once); twice != once {
		t.Fatalf("second pass changed the name: %q -> %q", once, twice)
	}
}
