package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stewardhq/steward/pkg/models"
)

// MaxTasks caps the ranked to-do list.
const MaxTasks = 6

// Priority tiers. Lower is more urgent; tier is the primary sort key and
// insertion order breaks ties.
const (
	tierPinned     = 0
	tierPrep       = 1
	tierFocus      = 2
	tierDisqualify = 3
	tierFallback   = 5
)

// slotOrder is the fixed display-slot list handed out to tasks that do
// not carry a time of their own. When the list runs out, the last slot is
// reused; collisions with schedule-carried times are left as-is.
var slotOrder = []string{"08:00", "09:30", "10:45", "12:15", "14:00", "15:30", "16:45", "17:30"}

// locationAliases are the city substrings treated as "in the LA area".
var locationAliases = []string{"los angeles", "pasadena"}

// deferrableKeywords mark a schedule entry as optional in its notes.
var deferrableKeywords = []string{"optional", "if time", "can skip", "defer"}

// disengagementPhrases in donor notes signal the donor is cooling off.
var disengagementPhrases = []string{"prefers fewer", "not ready"}

// Ranker produces prioritized task lists from donors, the day's schedule,
// and free-text directives. It is a pure function of its inputs: no
// clocks, no I/O, no external calls.
type Ranker struct {
	commitments CommitmentTable
}

// NewRanker builds a Ranker around the given commitment table.
func NewRanker(commitments CommitmentTable) *Ranker {
	return &Ranker{commitments: commitments}
}

// RankTasks runs the default ranker. See Ranker.RankTasks.
func RankTasks(donors []*models.Donor, schedule []models.ScheduleEntry, today models.Date, directives []string) []models.Task {
	return NewRanker(DefaultCommitments()).RankTasks(donors, schedule, today, directives)
}

type candidate struct {
	task      models.Task
	tier      int
	fixedTime bool
}

type candidateList struct {
	items []candidate
	seen  map[string]bool
}

// add records a candidate unless an identically-worded task already
// exists; the first occurrence wins.
func (l *candidateList) add(tier int, task, reason string, related []string, fixedTime string) {
	if l.seen[task] {
		return
	}
	l.seen[task] = true
	c := candidate{
		task: models.Task{
			Task:          task,
			Time:          models.TimeFlex,
			Reason:        reason,
			RelatedDonors: related,
		},
		tier: tier,
	}
	if fixedTime != "" {
		c.task.Time = fixedTime
		c.fixedTime = true
	}
	l.items = append(l.items, c)
}

// RankTasks produces the ordered task list for today. Rule evaluation
// order is fixed: pinned commitments, schedule prep, location touchpoints,
// reconnects, disqualification reviews, then the fallback.
func (r *Ranker) RankTasks(donors []*models.Donor, schedule []models.ScheduleEntry, today models.Date, directives []string) []models.Task {
	focus := ClassifyDirectives(directives)
	list := &candidateList{seen: make(map[string]bool)}

	r.addPinnedCommitments(list, donors)
	r.addSchedulePrep(list, donors, schedule, today, focus)
	if focus.Location {
		r.addLocationTouchpoints(list, donors, focus)
	}
	if focus.Reconnect {
		r.addReconnects(list, donors, today, focus)
	}
	if focus.Disqualify {
		r.addDisqualifyReviews(list, donors, focus)
	}

	if len(list.items) == 0 {
		list.add(tierFallback,
			"Review donor database",
			"No directives matched specific actions today; scan the database for emerging opportunities.",
			nil, "")
	}

	ordered := sortByTier(list.items)
	if len(ordered) > MaxTasks {
		ordered = ordered[:MaxTasks]
	}
	if focus.Any() {
		ordered = keepDirectedTasks(ordered)
	}
	return assignSlots(ordered)
}

// addPinnedCommitments seeds tier-0 tasks for every donor whose notes
// mention the tracked trigger phrase, one task per deliverable.
func (r *Ranker) addPinnedCommitments(list *candidateList, donors []*models.Donor) {
	for _, donor := range donors {
		if !strings.Contains(strings.ToLower(donor.Notes), r.commitments.Trigger) {
			continue
		}
		for _, d := range r.commitments.Deliverables {
			list.add(tierPinned, d.Task, fmt.Sprintf(d.Reason, donor.Name), []string{donor.Name}, "")
		}
	}
}

// addSchedulePrep turns today's schedule entries into prep tasks. Entries
// referencing a paused, disqualified, or inactive donor are skipped.
// Undirected entries lose urgency when directives are active or when
// their notes mark them deferrable.
func (r *Ranker) addSchedulePrep(list *candidateList, donors []*models.Donor, schedule []models.ScheduleEntry, today models.Date, focus Focus) {
	for _, entry := range schedule {
		if !entry.StartsOn(today) {
			continue
		}
		if entry.Donor != "" {
			if donor := lookupDonor(donors, entry.Donor); donor != nil && donor.Disengaged() {
				continue
			}
			location := entry.Location
			if location == "" {
				location = "the scheduled venue"
			}
			agenda := entry.Notes
			if agenda == "" {
				agenda = "Review donor priorities."
			}
			reason := fmt.Sprintf("Prep for %s at %s. Use the agenda notes: %s", entry.Title, location, agenda)
			list.add(tierPrep, fmt.Sprintf("Prep briefing for %s", entry.Donor), reason, []string{entry.Donor}, entry.Start.Clock())
			continue
		}

		tier := tierPrep
		if focus.Any() {
			tier = tierDisqualify
		}
		if containsAny(strings.ToLower(entry.Notes), deferrableKeywords) {
			tier++
		}
		list.add(tier,
			fmt.Sprintf("Prepare for %s", entry.Title),
			"Gather the required program updates so every donor follow-up stays accurate.",
			nil, entry.Start.Clock())
	}
}

// addLocationTouchpoints emits tier-2 tasks for engaged donors in the LA
// area, quoting back the directive that asked for them.
func (r *Ranker) addLocationTouchpoints(list *candidateList, donors []*models.Donor, focus Focus) {
	for _, donor := range donors {
		if donor.Disengaged() {
			continue
		}
		if !containsAny(strings.ToLower(donor.PrimaryCity), locationAliases) {
			continue
		}
		reason := fmt.Sprintf("Directive: %q. %s can meet locally, so coordinate a coffee or site visit while you're in town.",
			focus.LocationDirective, donor.Name)
		list.add(tierFocus, fmt.Sprintf("Schedule Los Angeles touchpoint with %s", donor.Name), reason, []string{donor.Name}, "")
	}
}

// addReconnects emits tier-2 tasks for dormant relationships: a reconnect
// after a 60-day gap, an introduction when nothing is logged at all.
func (r *Ranker) addReconnects(list *candidateList, donors []*models.Donor, today models.Date, focus Focus) {
	for _, donor := range donors {
		gap, ok := donor.LastInteractionDays(today)
		switch {
		case ok && gap > 60:
			reason := fmt.Sprintf("Directive: %q. It's been %d days since the last touchpoint with %s; send a tailored update to restart the conversation.",
				focus.ReconnectDirective, gap, donor.Name)
			list.add(tierFocus, fmt.Sprintf("Reconnect with %s", donor.Name), reason, []string{donor.Name}, "")
		case !ok:
			reason := fmt.Sprintf("Directive: %q. There's no prior interaction logged, so send a welcome message to %s.",
				focus.ReconnectDirective, donor.Name)
			list.add(tierFocus, fmt.Sprintf("Introduce yourself to %s", donor.Name), reason, []string{donor.Name}, "")
		}
	}
}

// addDisqualifyReviews emits tier-3 pause-outreach tasks. The reason
// wording states which signal matched: lifecycle status, a disengagement
// phrase in the notes, or a stalled qualification stage.
func (r *Ranker) addDisqualifyReviews(list *candidateList, donors []*models.Donor, focus Focus) {
	for _, donor := range donors {
		var reason string
		switch {
		case donor.Status == models.StatusPaused || donor.Status == models.StatusDisqualified:
			reason = fmt.Sprintf("Directive: %q. Outreach to %s is already marked %s; confirm the pause and set a date to revisit.",
				focus.DisqualifyDirective, donor.Name, donor.Status)
		case containsAny(strings.ToLower(donor.Notes), disengagementPhrases):
			reason = fmt.Sprintf("Directive: %q. %s has signaled limited interest recently; review whether continued outreach adds value or if you should disqualify for now.",
				focus.DisqualifyDirective, donor.Name)
		case donor.EngagementStage == "qualification":
			reason = fmt.Sprintf("Directive: %q. %s has been stuck in qualification; decide whether the relationship is worth further cycles.",
				focus.DisqualifyDirective, donor.Name)
		default:
			continue
		}
		list.add(tierDisqualify, fmt.Sprintf("Pause outreach to %s", donor.Name), reason, []string{donor.Name}, "")
	}
}

// sortByTier orders candidates by tier, preserving insertion order within
// a tier.
func sortByTier(items []candidate) []candidate {
	ordered := make([]candidate, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].tier < ordered[j].tier
	})
	return ordered
}

// keepDirectedTasks applies the directive filter: every donor-specific
// task survives, but at most one task with no related donors (the
// highest-ranked one) is kept.
func keepDirectedTasks(items []candidate) []candidate {
	kept := make([]candidate, 0, len(items))
	generalKept := false
	for _, c := range items {
		if len(c.task.RelatedDonors) == 0 {
			if generalKept {
				continue
			}
			generalKept = true
		}
		kept = append(kept, c)
	}
	return kept
}

// assignSlots hands out display times. Schedule-carried times are kept;
// everything else takes the next slot from the fixed list, falling back
// to the last slot once the list is exhausted.
func assignSlots(items []candidate) []models.Task {
	tasks := make([]models.Task, 0, len(items))
	next := 0
	for _, c := range items {
		task := c.task
		if !c.fixedTime {
			idx := next
			if idx >= len(slotOrder) {
				idx = len(slotOrder) - 1
			}
			task.Time = slotOrder[idx]
			next++
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func lookupDonor(donors []*models.Donor, name string) *models.Donor {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, d := range donors {
		if strings.ToLower(d.Name) == want {
			return d
		}
	}
	return nil
}
