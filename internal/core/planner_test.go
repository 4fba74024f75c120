package core

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stewardhq/steward/pkg/models"
)

func giftAmount(v float64) *float64 { return &v }

func TestPlanMeeting_InPersonFormat(t *testing.T) {
	donor := activeDonor("Alicia Gomez", "Los Angeles")
	donor.PreferredContact = "coffee"

	plan := PlanMeeting(donor, testDay, nil, "")
	if !strings.Contains(plan.MeetingFormat, "Coffee meeting with Alicia Gomez") {
		t.Errorf("unexpected format: %q", plan.MeetingFormat)
	}
	if !strings.Contains(plan.MeetingFormat, "Los Angeles") {
		t.Errorf("format should name the donor's city: %q", plan.MeetingFormat)
	}
}

func TestPlanMeeting_RemoteFormat(t *testing.T) {
	donor := activeDonor("Cara Lee", "San Francisco")
	donor.PreferredContact = "call"

	plan := PlanMeeting(donor, testDay, nil, "")
	if !strings.Contains(plan.MeetingFormat, "Video call with Cara Lee") {
		t.Errorf("unexpected format: %q", plan.MeetingFormat)
	}
}

func TestPlanMeeting_AsyncFormatFallback(t *testing.T) {
	donor := activeDonor("Priya Shah", "Chicago")
	donor.PreferredContact = "email"

	plan := PlanMeeting(donor, testDay, nil, "")
	if !strings.Contains(plan.MeetingFormat, "email update to Priya Shah") {
		t.Errorf("unexpected format: %q", plan.MeetingFormat)
	}
}

func TestPlanMeeting_Topics(t *testing.T) {
	donor := activeDonor("Alicia Gomez", "Los Angeles")
	donor.Interests = []string{"STEM education"}
	donor.Notes = "Certified sommelier who champions mentorship."

	plan := PlanMeeting(donor, testDay, []string{"Confirm the pledge timeline"}, "")
	want := []string{
		"Share impact metrics connected to their interest in STEM education",
		"Explore wine education experiences that match their sommelier interests",
		"Walk through mentorship pilot milestones and what comes next",
		"Confirm the pledge timeline",
	}
	if !reflect.DeepEqual(plan.DiscussionTopics, want) {
		t.Errorf("topics = %v, want %v", plan.DiscussionTopics, want)
	}
}

func TestPlanMeeting_TopicsDedupeAndFallback(t *testing.T) {
	donor := activeDonor("Alicia Gomez", "Los Angeles")
	donor.Interests = []string{"STEM education"}

	dup := "Share impact metrics connected to their interest in STEM education"
	plan := PlanMeeting(donor, testDay, []string{dup}, "")
	count := 0
	for _, topic := range plan.DiscussionTopics {
		if topic == dup {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate objective should collapse, got %v", plan.DiscussionTopics)
	}

	bare := activeDonor("Priya Shah", "Chicago")
	plan = PlanMeeting(bare, testDay, nil, "")
	if len(plan.DiscussionTopics) != 1 || !strings.Contains(plan.DiscussionTopics[0], "program wins") {
		t.Errorf("expected the generic fallback topic, got %v", plan.DiscussionTopics)
	}
}

func TestPlanMeeting_GiftIdeas(t *testing.T) {
	bare := activeDonor("Priya Shah", "Chicago")
	plan := PlanMeeting(bare, testDay, nil, "")
	if len(plan.GiftIdeas) != 1 {
		t.Fatalf("bare donor should get only the thank-you card, got %v", plan.GiftIdeas)
	}

	major := activeDonor("Alicia Gomez", "Los Angeles")
	major.Interests = []string{"STEM education", "mentorship"}
	major.LastGiftAmount = giftAmount(50000)
	plan = PlanMeeting(major, testDay, nil, "")
	if len(plan.GiftIdeas) != 3 {
		t.Fatalf("expected card + interest gift + impact report, got %v", plan.GiftIdeas)
	}
	if !strings.Contains(plan.GiftIdeas[1], "STEM education") {
		t.Errorf("interest gift should use the first interest: %q", plan.GiftIdeas[1])
	}

	threshold := activeDonor("Marcus Webb", "Los Angeles")
	threshold.LastGiftAmount = giftAmount(10000)
	plan = PlanMeeting(threshold, testDay, nil, "")
	if len(plan.GiftIdeas) != 2 {
		t.Errorf("a gift at the threshold counts as major, got %v", plan.GiftIdeas)
	}
}

func TestPlanMeeting_EventGuidance(t *testing.T) {
	donor := activeDonor("Alicia Gomez", "Los Angeles")

	plain := PlanMeeting(donor, testDay, nil, "")
	if plain.Event != "" || plain.EventSpecificTips != nil {
		t.Errorf("no event requested, got event %q tips %v", plain.Event, plain.EventSpecificTips)
	}
	if len(plain.PreMeetingPreparation) != 2 {
		t.Errorf("base plan has two prep steps, got %v", plain.PreMeetingPreparation)
	}

	gala := PlanMeeting(donor, models.NewDate(2024, time.April, 12), nil, "Spring Gala")
	if gala.Event != "Spring Gala" {
		t.Errorf("event = %q", gala.Event)
	}
	if len(gala.EventSpecificTips) != 3 {
		t.Errorf("expected three event tips, got %v", gala.EventSpecificTips)
	}
	if len(gala.PreMeetingPreparation) != 3 {
		t.Errorf("event plan adds one prep step, got %v", gala.PreMeetingPreparation)
	}
	for _, tip := range gala.EventSpecificTips[1:] {
		if !strings.Contains(tip, donor.Name) {
			t.Errorf("tip should be personalized: %q", tip)
		}
	}
}

func TestPlanMeeting_FollowUpPlanAlwaysSet(t *testing.T) {
	plan := PlanMeeting(activeDonor("Cara Lee", "San Francisco"), testDay, nil, "")
	if plan.FollowUpPlan == "" {
		t.Error("follow-up plan must never be empty")
	}
}
