package core

import "testing"

func TestClassifyDirectives_Empty(t *testing.T) {
	focus := ClassifyDirectives(nil)
	if focus.Any() {
		t.Errorf("no directives should set no flags: %+v", focus)
	}
}

func TestClassifyDirectives_Categories(t *testing.T) {
	tests := []struct {
		directive  string
		location   bool
		reconnect  bool
		disqualify bool
	}{
		{"I'm in Los Angeles this week", true, false, false},
		{"I'll be in LA on Thursday", true, false, false},
		{"I haven't talked to some donors in a while", false, true, false},
		{"re-engage the dormant portfolio", false, true, false},
		{"disqualify anyone who has gone quiet", false, false, true},
		{"it's been too long, pause outreach where needed", false, false, true},
		{"review the gala budget", false, false, false},
	}
	for _, tt := range tests {
		focus := ClassifyDirectives([]string{tt.directive})
		if focus.Location != tt.location || focus.Reconnect != tt.reconnect || focus.Disqualify != tt.disqualify {
			t.Errorf("ClassifyDirectives(%q) = %+v", tt.directive, focus)
		}
	}
}

func TestClassifyDirectives_SingleDirectiveMultipleFlags(t *testing.T) {
	focus := ClassifyDirectives([]string{"I'm in Los Angeles and haven't talked to anyone there in too long"})
	if !focus.Location || !focus.Reconnect || !focus.Disqualify {
		t.Errorf("categories are independent, got %+v", focus)
	}
}

func TestClassifyDirectives_FirstTriggerRemembered(t *testing.T) {
	focus := ClassifyDirectives([]string{
		"I'm in Los Angeles",
		"visiting Los Angeles again next month",
	})
	if focus.LocationDirective != "I'm in Los Angeles" {
		t.Errorf("first triggering directive should stick, got %q", focus.LocationDirective)
	}
}
