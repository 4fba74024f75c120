package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/internal/llm"
	"github.com/stewardhq/steward/pkg/models"
)

const todoSystemPrompt = "You are an assistant helping a nonprofit relationship manager prioritize " +
	"outreach. Always answer with valid JSON matching the schema: {\"tasks\": " +
	"[{\"task\": string, \"time\": string, \"reason\": string, \"related_donors\": [string]}]}. " +
	"Use the information provided to explain why each task matters."

const meetingSystemPrompt = "You advise nonprofit fundraisers on donor meetings. Always respond with valid " +
	"JSON matching the schema: {\"meeting_format\": string, \"discussion_topics\": " +
	"[string], \"gift_ideas\": [string], \"pre_meeting_preparation\": [string], " +
	"\"follow_up_plan\": string}."

const reflectionSystemPrompt = "You help nonprofit fundraisers debrief donor meetings. Always respond with valid " +
	"JSON matching the schema: {\"missed_opportunities\": [string], \"follow_up_actions\": " +
	"[string], \"suggested_questions\": [string], \"updated_timeline\": string}."

// completeJSON sends a system prompt plus an indented JSON payload as the
// user message and returns the raw response text.
func completeJSON(ctx context.Context, client llm.Client, system string, payload any) (string, error) {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: string(encoded)},
	}
	return client.Complete(ctx, messages, llm.CompleteOptions{ResponseFormat: llm.ResponseFormatJSON})
}

// decodeResponse parses a model response into out after checking that
// every required top-level key is present. Invalid JSON and missing keys
// are both reported as descriptive errors.
func decodeResponse(text string, out any, required ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return fmt.Errorf("model response was not valid JSON: %w", err)
	}
	var missing []string
	for _, key := range required {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("model response missing keys: %s", strings.Join(missing, ", "))
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("model response had unexpected shape: %w", err)
	}
	return nil
}

// GenerateDailyTodo builds the day's prioritized task list. The schedule
// is filtered to entries starting on today before it is sent.
func GenerateDailyTodo(ctx context.Context, client llm.Client, donors []*models.Donor, schedule []models.ScheduleEntry, today models.Date, directives []string) ([]models.Task, error) {
	var todaysSchedule []models.ScheduleEntry
	for _, entry := range schedule {
		if entry.StartsOn(today) {
			todaysSchedule = append(todaysSchedule, entry)
		}
	}

	payload := DailyTodoRequest{
		Request:    RequestDailyTodo,
		Date:       today,
		Schedule:   todaysSchedule,
		Donors:     donors,
		Directives: directives,
		Guidelines: []string{
			"Highlight why the task matters for relationship building.",
			"Respect each donor's preferred contact method when suggesting outreach.",
			"Call out preparation steps for meetings scheduled today.",
		},
	}

	text, err := completeJSON(ctx, client, todoSystemPrompt, payload)
	if err != nil {
		return nil, err
	}
	var resp TodoResponse
	if err := decodeResponse(text, &resp, "tasks"); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// PlanMeeting requests a meeting strategy for one donor.
func PlanMeeting(ctx context.Context, client llm.Client, donor *models.Donor, meetingDate models.Date, objectives []string, event string) (*models.MeetingPlan, error) {
	payload := MeetingPlanRequest{
		Request:              RequestMeetingPlan,
		MeetingDate:          meetingDate,
		Donor:                donor,
		FundraiserObjectives: objectives,
		Event:                event,
		Expectations: []string{
			"Tailor the meeting format to the donor's preferred contact style.",
			"Suggest specific talking points grounded in the donor profile.",
			"Recommend thoughtful but realistic stewardship gestures.",
		},
	}

	text, err := completeJSON(ctx, client, meetingSystemPrompt, payload)
	if err != nil {
		return nil, err
	}
	var plan models.MeetingPlan
	if err := decodeResponse(text, &plan,
		"meeting_format", "discussion_topics", "gift_ideas", "pre_meeting_preparation", "follow_up_plan"); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ReflectOnMeeting requests follow-up guidance after a donor meeting.
func ReflectOnMeeting(ctx context.Context, client llm.Client, donor *models.Donor, meetingNotes string, missedQuestions []string, horizonDays int) (*models.MeetingReflection, error) {
	if horizonDays <= 0 {
		horizonDays = core.DefaultFollowUpHorizonDays
	}
	payload := MeetingReflectionRequest{
		Request:             RequestMeetingReflection,
		Donor:               donor,
		MeetingNotes:        meetingNotes,
		MissedQuestions:     missedQuestions,
		FollowUpHorizonDays: horizonDays,
	}

	text, err := completeJSON(ctx, client, reflectionSystemPrompt, payload)
	if err != nil {
		return nil, err
	}
	var reflection models.MeetingReflection
	if err := decodeResponse(text, &reflection,
		"missed_opportunities", "follow_up_actions", "suggested_questions", "updated_timeline"); err != nil {
		return nil, err
	}
	return &reflection, nil
}
