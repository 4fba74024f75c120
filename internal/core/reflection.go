package core

import (
	"fmt"
	"strings"

	"github.com/stewardhq/steward/pkg/models"
)

// DefaultFollowUpHorizonDays is the reflection timeline window used when
// the caller does not supply one.
const DefaultFollowUpHorizonDays = 7

// questionKeywords are the recognized topics inside donor open questions.
// A question is re-suggested only when its keyword appears in the
// question but not in the meeting notes.
var questionKeywords = []string{"site visit", "daughter", "wine"}

// forgetPhrases in the meeting notes trigger a blanket follow-up and
// re-surface every open question.
var forgetPhrases = []string{"forgot", "didn't ask"}

// ReflectOnMeeting reviews meeting notes against the tracked deliverables
// and the donor's open questions, producing follow-up guidance.
// missedQuestions seeds the suggested-questions list. A non-positive
// horizon falls back to DefaultFollowUpHorizonDays.
func ReflectOnMeeting(donor *models.Donor, meetingNotes string, missedQuestions []string, horizonDays int, table CommitmentTable) models.MeetingReflection {
	if horizonDays <= 0 {
		horizonDays = DefaultFollowUpHorizonDays
	}
	notes := strings.ToLower(meetingNotes)

	var followUps []string
	var missed []string
	suggested := append([]string(nil), missedQuestions...)

	for _, d := range table.Deliverables {
		if strings.Contains(notes, d.Keyword) {
			continue
		}
		followUps = append(followUps, d.FollowUp)
		missed = append(missed, fmt.Sprintf("Missed the chance to confirm the %s; the pending pledge depends on seeing this handled.", d.Keyword))
	}

	for _, question := range donor.OpenQuestions {
		lowered := strings.ToLower(question)
		for _, keyword := range questionKeywords {
			if strings.Contains(lowered, keyword) && !strings.Contains(notes, keyword) {
				suggested = append(suggested, question)
			}
		}
	}

	if containsAny(notes, forgetPhrases) {
		followUps = append(followUps, "Send a rapid follow-up covering the topics you noted forgetting during the meeting.")
		suggested = append(suggested, donor.OpenQuestions...)
	}

	followUps = dedupe(followUps)
	missed = dedupe(missed)
	suggested = dedupe(suggested)

	if len(missed) == 0 {
		missed = []string{"No major gaps detected, but reinforce commitments in your recap."}
	}
	if len(followUps) == 0 {
		followUps = []string{"Send a thank-you email reiterating next steps within 24 hours."}
	}
	if suggested == nil {
		suggested = []string{}
	}

	return models.MeetingReflection{
		MissedOpportunities: missed,
		FollowUpActions:     followUps,
		SuggestedQuestions:  suggested,
		UpdatedTimeline: fmt.Sprintf("Complete the follow-ups within the next %d days to keep %s's pledge on track; block calendar time immediately so nothing slips.",
			horizonDays, donor.Name),
	}
}
