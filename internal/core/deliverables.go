package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deliverable is one tracked commitment. Its keyword is scanned in donor
// notes (to pin tasks) and in meeting recaps (to flag misses).
type Deliverable struct {
	Keyword  string `yaml:"keyword"`
	Task     string `yaml:"task"`
	Reason   string `yaml:"reason"`
	FollowUp string `yaml:"follow_up"`
}

// CommitmentTable binds a trigger phrase to the deliverables it pins.
// When a donor's notes contain the trigger, one task per deliverable is
// emitted at the highest priority tier.
type CommitmentTable struct {
	Trigger      string        `yaml:"trigger"`
	Deliverables []Deliverable `yaml:"deliverables"`
}

// DefaultCommitments returns the built-in mentorship-pilot table.
func DefaultCommitments() CommitmentTable {
	return CommitmentTable{
		Trigger: "mentor background checks",
		Deliverables: []Deliverable{
			{
				Keyword: "mentor background checks",
				Task:    "Complete mentor background checks for the mentorship pilot",
				Reason: "%s tied a major pledge to seeing these background checks completed. " +
					"Finish the clearance paperwork and confirm every mentor is approved.",
				FollowUp: "Finalize and send the cleared mentor background checks so the donor knows the program is ready.",
			},
			{
				Keyword: "matching roster",
				Task:    "Finalize the mentor-mentee matching roster",
				Reason: "%s wants the matching roster to review pairings before signing the pledge. " +
					"Tighten the roster and flag any gaps in STEM representation.",
				FollowUp: "Share the complete mentor-mentee roster and highlight STEM pairings to honor the pledge conditions.",
			},
			{
				Keyword: "progress dashboard",
				Task:    "Publish the mentorship progress dashboard",
				Reason: "Without the updated dashboard %s can't verify impact. " +
					"Ship the metrics summary so the pledge can clear on time.",
				FollowUp: "Publish the mentorship progress dashboard and include it in your follow-up email.",
			},
		},
	}
}

// LoadCommitments reads a deliverables.yaml override. A missing file is
// not an error; the built-in table is returned instead.
func LoadCommitments(path string) (CommitmentTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCommitments(), nil
		}
		return CommitmentTable{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var table CommitmentTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return CommitmentTable{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if table.Trigger == "" || len(table.Deliverables) == 0 {
		return CommitmentTable{}, fmt.Errorf("parsing %s: trigger and deliverables are required", path)
	}
	return table, nil
}
