package models

import "encoding/json"

// ScheduleEntry is one calendar item for the relationship manager. The
// Donor field is a weak reference by name; nothing guarantees it resolves
// against the donor file.
type ScheduleEntry struct {
	Start    DateTime `json:"start"`
	End      DateTime `json:"end"`
	Title    string   `json:"title"`
	Donor    string   `json:"donor,omitempty"`
	Location string   `json:"location,omitempty"`
	Notes    string   `json:"notes"`
}

// UnmarshalJSON applies the "Meeting" default title.
func (e *ScheduleEntry) UnmarshalJSON(data []byte) error {
	type alias ScheduleEntry
	a := alias{Title: "Meeting"}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = ScheduleEntry(a)
	return nil
}

// StartsOn reports whether the entry's start falls on the given date.
func (e ScheduleEntry) StartsOn(day Date) bool {
	return e.Start.Date().Equal(day.Time)
}
