package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stewardhq/steward/internal/storage"
	"github.com/stewardhq/steward/pkg/models"
)

// Session holds the mutable state of one assistant session: the loaded
// donor and schedule collections plus the active directives. It is
// single-owner and not safe for concurrent use. Mutations stay in memory
// until Commit writes them back to disk.
type Session struct {
	DataDir    string
	Donors     []*models.Donor
	Schedule   []models.ScheduleEntry
	Directives []string

	dirty bool
}

// NewSession loads donors.json and schedule.json from dataDir.
func NewSession(dataDir string) (*Session, error) {
	s := &Session{DataDir: dataDir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// DonorsPath returns the donor file path for this session.
func (s *Session) DonorsPath() string {
	return filepath.Join(s.DataDir, "donors.json")
}

// SchedulePath returns the schedule file path for this session.
func (s *Session) SchedulePath() string {
	return filepath.Join(s.DataDir, "schedule.json")
}

// Reload re-reads both data files, discarding in-memory edits and
// directives.
func (s *Session) Reload() error {
	donors, err := storage.LoadDonors(s.DonorsPath())
	if err != nil {
		return fmt.Errorf("loading donors: %w", err)
	}
	schedule, err := storage.LoadSchedule(s.SchedulePath())
	if err != nil {
		return fmt.Errorf("loading schedule: %w", err)
	}
	s.Donors = donors
	s.Schedule = schedule
	s.Directives = nil
	s.dirty = false
	return nil
}

// Donor finds a donor by case-insensitive name.
func (s *Session) Donor(name string) (*models.Donor, error) {
	return storage.FindDonor(s.Donors, name)
}

// AddDirective records a directive unless an identical one is already
// active. Reports whether the directive was added.
func (s *Session) AddDirective(directive string) bool {
	directive = strings.TrimSpace(directive)
	if directive == "" {
		return false
	}
	for _, existing := range s.Directives {
		if existing == directive {
			return false
		}
	}
	s.Directives = append(s.Directives, directive)
	return true
}

// ClearDirectives drops every active directive.
func (s *Session) ClearDirectives() {
	s.Directives = nil
}

// AppendNote appends free text to the named donor's notes.
func (s *Session) AppendNote(name, note string) error {
	donor, err := s.Donor(name)
	if err != nil {
		return err
	}
	donor.AppendNote(strings.TrimSpace(note))
	s.dirty = true
	return nil
}

// MarkDirty flags the session as having unsaved edits.
func (s *Session) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether in-memory edits have not been committed.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Commit writes both collections back to disk. This is the session's only
// file-write path; every other mutation stays in memory.
func (s *Session) Commit() error {
	if err := storage.SaveDonors(s.DonorsPath(), s.Donors); err != nil {
		return fmt.Errorf("saving donors: %w", err)
	}
	if err := storage.SaveSchedule(s.SchedulePath(), s.Schedule); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	s.dirty = false
	return nil
}
