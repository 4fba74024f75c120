// Package core contains the assistant's domain logic: directive
// classification, the task prioritization engine, the meeting planner and
// reflection heuristics, session state, and configuration.
package core

import "strings"

// Phrase sets that map free-text directives onto focus flags. Matching is
// plain substring containment on the lowercased directive.
var (
	locationPhrases   = []string{"los angeles", "in la"}
	reconnectPhrases  = []string{"haven't talked", "reconnect", "dormant", "re-engage"}
	disqualifyPhrases = []string{"disqualify", "too long", "pause outreach", "stop engaging"}
)

// Focus holds the flags derived from the active directives. Each flag
// remembers the first directive that triggered it so reasons can quote it
// back to the user.
type Focus struct {
	Location   bool
	Reconnect  bool
	Disqualify bool

	LocationDirective   string
	ReconnectDirective  string
	DisqualifyDirective string
}

// Any reports whether at least one focus flag is set.
func (f Focus) Any() bool {
	return f.Location || f.Reconnect || f.Disqualify
}

// ClassifyDirectives matches each directive against the known phrase sets.
// Categories are independent: a single directive may set zero, one, or
// several flags.
func ClassifyDirectives(directives []string) Focus {
	var focus Focus
	for _, directive := range directives {
		lowered := strings.ToLower(directive)
		if !focus.Location && containsAny(lowered, locationPhrases) {
			focus.Location = true
			focus.LocationDirective = directive
		}
		if !focus.Reconnect && containsAny(lowered, reconnectPhrases) {
			focus.Reconnect = true
			focus.ReconnectDirective = directive
		}
		if !focus.Disqualify && containsAny(lowered, disqualifyPhrases) {
			focus.Disqualify = true
			focus.DisqualifyDirective = directive
		}
	}
	return focus
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
