package models

import "encoding/json"

// DonorStatus describes where a donor sits in the outreach lifecycle.
type DonorStatus string

const (
	StatusActive       DonorStatus = "active"
	StatusPaused       DonorStatus = "paused"
	StatusDisqualified DonorStatus = "disqualified"
	StatusInactive     DonorStatus = "inactive"
)

// Interaction is a single logged touchpoint with a donor. Immutable once
// created; owned by exactly one Donor.
type Interaction struct {
	Date  Date   `json:"date"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

// UnmarshalJSON applies the "meeting" default when no type is recorded.
func (i *Interaction) UnmarshalJSON(data []byte) error {
	type alias Interaction
	a := alias{Type: "meeting"}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*i = Interaction(a)
	return nil
}

// Donor is a donor or prospect record. The name is the unique key;
// lookups are case-insensitive. Donors are mutable: notes can be appended
// and the record re-serialized.
type Donor struct {
	Name                string        `json:"name"`
	GivingCapacity      string        `json:"giving_capacity"`
	Interests           []string      `json:"interests,omitempty"`
	PreferredContact    string        `json:"preferred_contact"`
	LastGiftDate        *Date         `json:"last_gift_date,omitempty"`
	LastGiftAmount      *float64      `json:"last_gift_amount,omitempty"`
	Interactions        []Interaction `json:"interactions,omitempty"`
	Notes               string        `json:"notes"`
	PrimaryCity         string        `json:"primary_city,omitempty"`
	TimeZone            string        `json:"time_zone,omitempty"`
	EngagementStage     string        `json:"engagement_stage,omitempty"`
	Status              DonorStatus   `json:"status,omitempty"`
	StrategicObjectives []string      `json:"strategic_objectives,omitempty"`
	OpenQuestions       []string      `json:"open_questions,omitempty"`
}

// UnmarshalJSON applies the record defaults for capacity and contact
// channel so sparse files stay usable.
func (d *Donor) UnmarshalJSON(data []byte) error {
	type alias Donor
	a := alias{
		GivingCapacity:   "unknown",
		PreferredContact: "email",
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = Donor(a)
	return nil
}

// Disengaged reports whether outreach to the donor is currently off:
// paused, disqualified, or inactive.
func (d *Donor) Disengaged() bool {
	switch d.Status {
	case StatusPaused, StatusDisqualified, StatusInactive:
		return true
	}
	return false
}

// LastInteractionDays returns the number of days between today and the
// most recent interaction. Interactions with zero dates are skipped. The
// second return is false when no dated interaction exists.
func (d *Donor) LastInteractionDays(today Date) (int, bool) {
	var latest Date
	for _, in := range d.Interactions {
		if in.Date.IsZero() {
			continue
		}
		if latest.IsZero() || in.Date.After(latest.Time) {
			latest = in.Date
		}
	}
	if latest.IsZero() {
		return 0, false
	}
	return today.DaysSince(latest), true
}

// AppendNote adds free text to the donor's notes, separating it from any
// existing text with a single space.
func (d *Donor) AppendNote(note string) {
	if d.Notes != "" && d.Notes[len(d.Notes)-1] != ' ' {
		d.Notes += " "
	}
	d.Notes += note
}
