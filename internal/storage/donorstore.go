// Package storage loads and saves the donor and schedule collections.
// Both files accept either a bare JSON array or an {"items": [...]}
// envelope; saves always write the envelope form.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stewardhq/steward/pkg/models"
)

// ErrDonorNotFound is returned by FindDonor when no donor matches.
var ErrDonorNotFound = errors.New("donor not found")

// envelope is the {"items": [...]} wrapper form.
type envelope struct {
	Items *json.RawMessage `json:"items"`
}

// readItems returns the raw record array from path, unwrapping the items
// envelope when present. Any other top-level shape is an error.
func readItems(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.RawMessage(data), nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if env.Items == nil {
		return nil, fmt.Errorf("unsupported JSON schema in %s: expected an array or an \"items\" envelope", path)
	}
	return *env.Items, nil
}

// LoadDonors reads the donor collection from a JSON file.
func LoadDonors(path string) ([]*models.Donor, error) {
	items, err := readItems(path)
	if err != nil {
		return nil, err
	}
	var donors []*models.Donor
	if err := json.Unmarshal(items, &donors); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return donors, nil
}

// LoadSchedule reads the schedule from a JSON file.
func LoadSchedule(path string) ([]models.ScheduleEntry, error) {
	items, err := readItems(path)
	if err != nil {
		return nil, err
	}
	var schedule []models.ScheduleEntry
	if err := json.Unmarshal(items, &schedule); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return schedule, nil
}

func saveItems(path string, items any) error {
	data, err := json.MarshalIndent(map[string]any{"items": items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SaveDonors writes the donor collection as a pretty-printed envelope.
func SaveDonors(path string, donors []*models.Donor) error {
	return saveItems(path, donors)
}

// SaveSchedule writes the schedule as a pretty-printed envelope.
func SaveSchedule(path string, schedule []models.ScheduleEntry) error {
	return saveItems(path, schedule)
}

// FindDonor locates a donor by case-insensitive exact name match.
func FindDonor(donors []*models.Donor, name string) (*models.Donor, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, d := range donors {
		if strings.ToLower(d.Name) == want {
			return d, nil
		}
	}
	return nil, fmt.Errorf("donor %q: %w", name, ErrDonorNotFound)
}
