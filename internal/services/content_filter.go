package services

import (
	"regexp"
)

// ContentFilter applies lightweight spam heuristics to discussion
// bodies. Reports themselves are not filtered: describing an incident
// legitimately needs strong language, and moderation handles the rest
// through flags.
type ContentFilter struct {
	urlPattern     *regexp.Regexp
	allCapsPattern *regexp.Regexp
}

func NewContentFilter() *ContentFilter {
	return &ContentFilter{
		urlPattern:     regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`),
		allCapsPattern: regexp.MustCompile(`[A-Z]{5,}`),
	}
}

// Check returns an empty string when the text passes, or a
// human-readable rejection reason.
func (f *ContentFilter) Check(text string) string {
	if len(f.urlPattern.FindAllString(text, -1)) > 2 {
		return "comments may contain at most two links"
	}
	if hasLongRun(text, 10) {
		return "comment looks like spam"
	}
	if len(f.allCapsPattern.FindAllString(text, -1)) > 3 {
		return "please avoid excessive capital letters"
	}
	return ""
}

// hasLongRun reports whether any rune repeats n or more times in a row.
func hasLongRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
