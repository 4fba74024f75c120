package core

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stewardhq/steward/pkg/models"
	"pgregory.net/rapid"
)

func genName(t *rapid.T, label string) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	n := rapid.IntRange(3, 10).Draw(t, label+"Len")
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rapid.IntRange(0, len(letters)-1).Draw(t, label+"Char")]
	}
	return string(b)
}

func genGenDonor(t *rapid.T, i int) *models.Donor {
	cities := []string{"Los Angeles", "Pasadena", "San Francisco", "Chicago", ""}
	statuses := []models.DonorStatus{models.StatusActive, models.StatusActive, models.StatusPaused, models.StatusInactive, ""}
	stages := []string{"", "qualification", "cultivation", "stewardship"}
	notes := []string{
		"",
		"Pledge depends on mentor background checks.",
		"Said she is not ready to commit this year.",
		"Loves robotics showcases.",
	}

	donor := &models.Donor{
		Name:            fmt.Sprintf("%s %s %d", genName(t, "first"), genName(t, "last"), i),
		PrimaryCity:     cities[rapid.IntRange(0, len(cities)-1).Draw(t, "city")],
		Status:          statuses[rapid.IntRange(0, len(statuses)-1).Draw(t, "status")],
		EngagementStage: stages[rapid.IntRange(0, len(stages)-1).Draw(t, "stage")],
		Notes:           notes[rapid.IntRange(0, len(notes)-1).Draw(t, "notes")],
	}
	if rapid.Bool().Draw(t, "hasInteraction") {
		daysAgo := rapid.IntRange(0, 200).Draw(t, "daysAgo")
		day := models.NewDate(2024, time.March, 25)
		donor.Interactions = []models.Interaction{{
			Date: models.Date{Time: day.AddDate(0, 0, -daysAgo)},
			Type: "meeting",
		}}
	}
	return donor
}

func genInputs(t *rapid.T) ([]*models.Donor, []models.ScheduleEntry, []string) {
	nDonors := rapid.IntRange(0, 12).Draw(t, "nDonors")
	donors := make([]*models.Donor, nDonors)
	for i := range donors {
		donors[i] = genGenDonor(t, i)
	}

	directivePool := []string{
		"I'm in Los Angeles this week",
		"I haven't talked to some donors in a while",
		"disqualify donors who have gone quiet",
		"review the gala budget",
	}
	nDirectives := rapid.IntRange(0, len(directivePool)).Draw(t, "nDirectives")
	directives := directivePool[:nDirectives]

	var schedule []models.ScheduleEntry
	nEntries := rapid.IntRange(0, 4).Draw(t, "nEntries")
	for i := 0; i < nEntries; i++ {
		entry := models.ScheduleEntry{
			Start: mustGenDateTime(fmt.Sprintf("2024-03-25T%02d:00:00", 8+i)),
			Title: fmt.Sprintf("Session %d %s", i, genName(t, "entry")),
		}
		if len(donors) > 0 && rapid.Bool().Draw(t, "entryHasDonor") {
			entry.Donor = donors[rapid.IntRange(0, len(donors)-1).Draw(t, "entryDonor")].Name
		}
		schedule = append(schedule, entry)
	}
	return donors, schedule, directives
}

func mustGenDateTime(s string) models.DateTime {
	dt, err := models.ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// Feature: steward, Property 1: Ranking Determinism
func TestRankTasksDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		donors, schedule, directives := genInputs(t)
		day := models.NewDate(2024, time.March, 25)

		first := RankTasks(donors, schedule, day, directives)
		second := RankTasks(donors, schedule, day, directives)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("same inputs produced different lists:\n%v\n%v", first, second)
		}
	})
}

// Feature: steward, Property 2: Task List Cap
func TestRankTasksNeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		donors, schedule, directives := genInputs(t)
		tasks := RankTasks(donors, schedule, models.NewDate(2024, time.March, 25), directives)
		if len(tasks) > MaxTasks {
			t.Fatalf("got %d tasks, cap is %d", len(tasks), MaxTasks)
		}
		if len(tasks) == 0 {
			t.Fatal("the list is never empty; the fallback task covers quiet days")
		}
	})
}

// Feature: steward, Property 3: Unique Task Descriptions
func TestRankTasksUniqueDescriptions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		donors, schedule, directives := genInputs(t)
		tasks := RankTasks(donors, schedule, models.NewDate(2024, time.March, 25), directives)
		seen := make(map[string]bool, len(tasks))
		for _, task := range tasks {
			if seen[task.Task] {
				t.Fatalf("duplicate task %q in %v", task.Task, taskNames(tasks))
			}
			seen[task.Task] = true
		}
	})
}

// Feature: steward, Property 4: Directive Filter Keeps At Most One General Task
func TestRankTasksGeneralTaskLimit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		donors, schedule, directives := genInputs(t)
		if ClassifyDirectives(directives).Any() {
			tasks := RankTasks(donors, schedule, models.NewDate(2024, time.March, 25), directives)
			general := 0
			for _, task := range tasks {
				if len(task.RelatedDonors) == 0 {
					general++
				}
			}
			if general > 1 {
				t.Fatalf("%d donor-less tasks survived directive filtering: %v", general, taskNames(tasks))
			}
		}
	})
}

// Feature: steward, Property 5: Every Task Carries A Valid Display Time
func TestRankTasksTimesAlwaysAssigned(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		donors, schedule, directives := genInputs(t)
		tasks := RankTasks(donors, schedule, models.NewDate(2024, time.March, 25), directives)
		for _, task := range tasks {
			if task.Time == "" || task.Time == models.TimeFlex {
				t.Fatalf("task %q left without a display time", task.Task)
			}
		}
	})
}
