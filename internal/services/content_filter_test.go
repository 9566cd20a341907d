package services

import "testing"

func TestContentFilterCheck(t *testing.T) {
	f := NewContentFilter()

	tests := []struct {
		name   string
		text   string
		passes bool
	}{
		{"plain comment", "This matches what I saw during orientation.", true},
		{"two links allowed", "See https://a.example and https://b.example for coverage.", true},
		{"three links rejected", "https://a.example https://b.example https://c.example", false},
		{"www links count", "www.a.example www.b.example www.c.example spam", false},
		{"repeated character spam", "wooooooooooooow", false},
		{"short repeat passes", "soooo true", true},
		{"shouting rejected", "LISTEN EVERYONE MUST READ THIS RIGHT NOW PLEASE", false},
		{"acronyms pass", "The UGC and the NGOs responded quickly.", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := f.Check(tt.text)
			if (reason == "") != tt.passes {
				t.Fatalf("Check(%q) = %q, want passes=%v", tt.text, reason, tt.passes)
			}
		})
	}
}

func TestHasLongRun(t *testing.T) {
	if !hasLongRun("aaaaaaaaaa", 10) {
		t.Fatal("ten repeats should trip the run detector")
	}
	if hasLongRun("aaaaaaaaa", 10) {
		t.Fatal("nine repeats should pass")
	}
	if hasLongRun("abababababab", 10) {
		t.Fatal("alternating runes are not a run")
	}
}
