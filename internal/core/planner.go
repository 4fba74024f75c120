package core

import (
	"fmt"
	"strings"

	"github.com/stewardhq/steward/pkg/models"
)

// majorGiftThreshold is the last-gift amount above which the plan adds a
// stewardship gesture sized to a major donor.
const majorGiftThreshold = 10_000

// contact channel groupings for choosing the meeting format.
var (
	inPersonChannels = []string{"in_person", "in person", "coffee", "lunch", "meeting"}
	remoteChannels   = []string{"call", "phone", "video", "zoom"}
)

// hobbyTopics maps recognized note keywords to a tailored discussion
// topic. Ordered so generated plans stay deterministic.
var hobbyTopics = []struct {
	keyword string
	topic   string
}{
	{"wine", "Explore wine education experiences that match their sommelier interests"},
	{"robotics", "Share highlights from the latest robotics showcase"},
	{"mentorship", "Walk through mentorship pilot milestones and what comes next"},
}

// PlanMeeting builds a fixed-shape meeting recommendation for a donor.
// objectives extends the discussion topics; a non-empty event appends
// event-specific guidance and one extra preparation step.
func PlanMeeting(donor *models.Donor, meetingDate models.Date, objectives []string, event string) models.MeetingPlan {
	plan := models.MeetingPlan{
		MeetingFormat:    meetingFormat(donor),
		DiscussionTopics: discussionTopics(donor, objectives),
		GiftIdeas:        giftIdeas(donor),
		PreMeetingPreparation: []string{
			"Revisit detailed notes and open questions",
			"Draft answers for any strategic objectives the donor has raised",
		},
		FollowUpPlan: "Send a recap within 24 hours summarizing agreed actions, attach relevant materials, and confirm next checkpoints.",
	}

	if event != "" {
		plan.Event = event
		plan.EventSpecificTips = []string{
			"Personalize the agenda with one high-impact story tied directly to the event theme so the conversation feels anchored.",
			fmt.Sprintf("Confirm logistics like guest list, dress code, and any moments where %s can speak or be recognized.", donor.Name),
			fmt.Sprintf("Bring a small keepsake that ties %s's passions to the event experience.", donor.Name),
		}
		plan.PreMeetingPreparation = append(plan.PreMeetingPreparation,
			"Draft talking points specific to the event so you can seamlessly transition from celebration to commitment.")
	}

	return plan
}

// meetingFormat keys off the preferred contact channel category:
// in-person-like, remote-like, or asynchronous.
func meetingFormat(donor *models.Donor) string {
	channel := strings.ToLower(donor.PreferredContact)
	city := donor.PrimaryCity
	if city == "" {
		city = "their city"
	}
	switch {
	case containsAny(channel, inPersonChannels):
		return fmt.Sprintf("Coffee meeting with %s at their preferred venue in %s", donor.Name, city)
	case containsAny(channel, remoteChannels):
		return fmt.Sprintf("Video call with %s, scheduled for their time zone", donor.Name)
	default:
		return fmt.Sprintf("Thoughtful email update to %s with a clear ask and an easy reply path", donor.Name)
	}
}

// discussionTopics seeds topics from interests, adds any recognized note
// keyword topics, then extends with the caller's objectives.
func discussionTopics(donor *models.Donor, objectives []string) []string {
	var topics []string
	for _, interest := range donor.Interests {
		topics = append(topics, fmt.Sprintf("Share impact metrics connected to their interest in %s", interest))
	}
	notes := strings.ToLower(donor.Notes)
	for _, h := range hobbyTopics {
		if strings.Contains(notes, h.keyword) {
			topics = append(topics, h.topic)
		}
	}
	topics = append(topics, objectives...)
	topics = dedupe(topics)
	if len(topics) == 0 {
		topics = []string{"Walk through recent program wins and invite their questions"}
	}
	return topics
}

// giftIdeas depends on interest presence and the last-gift threshold.
func giftIdeas(donor *models.Donor) []string {
	ideas := []string{"Bring a hand-written thank-you card referencing their recent support"}
	if len(donor.Interests) > 0 {
		ideas = append(ideas, fmt.Sprintf("Curate a small gift tied to their interest in %s", donor.Interests[0]))
	}
	if donor.LastGiftAmount != nil && *donor.LastGiftAmount >= majorGiftThreshold {
		ideas = append(ideas, "Prepare a personalized impact report acknowledging their recent major gift")
	}
	return ideas
}

// dedupe removes duplicates preserving first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
