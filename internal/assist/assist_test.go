package assist

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stewardhq/steward/internal/llm"
	"github.com/stewardhq/steward/pkg/models"
)

// fakeClient returns a canned response and records what it was asked.
type fakeClient struct {
	response string
	err      error

	messages []llm.Message
	opts     llm.CompleteOptions
}

func (f *fakeClient) Complete(_ context.Context, messages []llm.Message, opts llm.CompleteOptions) (string, error) {
	f.messages = messages
	f.opts = opts
	return f.response, f.err
}

func testDonor() *models.Donor {
	return &models.Donor{
		Name:             "Alicia Gomez",
		PreferredContact: "coffee",
		PrimaryCity:      "Los Angeles",
		Status:           models.StatusActive,
	}
}

func TestGenerateDailyTodo(t *testing.T) {
	client := &fakeClient{
		response: `{"tasks": [{"task": "Prep briefing for Alicia Gomez", "time": "12:00", "reason": "lunch today", "related_donors": ["Alicia Gomez"]}]}`,
	}
	today := models.NewDate(2024, time.March, 25)
	start, _ := models.ParseDateTime("2024-03-25T12:00:00")
	later, _ := models.ParseDateTime("2024-03-28T10:00:00")
	schedule := []models.ScheduleEntry{
		{Start: start, Title: "Lunch with Alicia Gomez", Donor: "Alicia Gomez"},
		{Start: later, Title: "Gala walkthrough"},
	}

	tasks, err := GenerateDailyTodo(context.Background(), client, []*models.Donor{testDonor()}, schedule, today, []string{"I'm in Los Angeles"})
	if err != nil {
		t.Fatalf("GenerateDailyTodo: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Task != "Prep briefing for Alicia Gomez" {
		t.Errorf("tasks = %+v", tasks)
	}

	if client.opts.ResponseFormat != llm.ResponseFormatJSON {
		t.Errorf("response format = %q", client.opts.ResponseFormat)
	}
	if len(client.messages) != 2 || client.messages[0].Role != llm.RoleSystem {
		t.Fatalf("messages = %+v", client.messages)
	}

	var payload DailyTodoRequest
	if err := json.Unmarshal([]byte(client.messages[1].Content), &payload); err != nil {
		t.Fatalf("user payload is not JSON: %v", err)
	}
	if payload.Request != RequestDailyTodo {
		t.Errorf("request tag = %q", payload.Request)
	}
	if len(payload.Schedule) != 1 {
		t.Errorf("payload should only carry today's schedule, got %d entries", len(payload.Schedule))
	}
}

func TestGenerateDailyTodo_ClientError(t *testing.T) {
	wantErr := errors.New("connection refused")
	client := &fakeClient{err: wantErr}

	_, err := GenerateDailyTodo(context.Background(), client, nil, nil, models.NewDate(2024, time.March, 25), nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the client error to surface, got %v", err)
	}
}

func TestPlanMeeting_ResponseValidation(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  string
	}{
		{
			name:     "invalid json",
			response: "Sure! Here is your plan:",
			wantErr:  "not valid JSON",
		},
		{
			name:     "missing keys",
			response: `{"meeting_format": "coffee", "discussion_topics": []}`,
			wantErr:  "missing keys: gift_ideas, pre_meeting_preparation, follow_up_plan",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response}
			_, err := PlanMeeting(context.Background(), client, testDonor(), models.NewDate(2024, time.March, 25), nil, "")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPlanMeeting_Success(t *testing.T) {
	client := &fakeClient{
		response: `{
			"meeting_format": "Coffee meeting with Alicia Gomez",
			"discussion_topics": ["pledge timeline"],
			"gift_ideas": ["thank-you card"],
			"pre_meeting_preparation": ["review notes"],
			"follow_up_plan": "recap within 24 hours"
		}`,
	}

	plan, err := PlanMeeting(context.Background(), client, testDonor(), models.NewDate(2024, time.March, 25), []string{"confirm pledge"}, "Spring Gala")
	if err != nil {
		t.Fatalf("PlanMeeting: %v", err)
	}
	if plan.MeetingFormat != "Coffee meeting with Alicia Gomez" {
		t.Errorf("format = %q", plan.MeetingFormat)
	}

	var payload MeetingPlanRequest
	if err := json.Unmarshal([]byte(client.messages[1].Content), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Event != "Spring Gala" {
		t.Errorf("event not forwarded: %q", payload.Event)
	}
	if len(payload.FundraiserObjectives) != 1 {
		t.Errorf("objectives not forwarded: %v", payload.FundraiserObjectives)
	}
}

func TestReflectOnMeeting_HorizonDefault(t *testing.T) {
	client := &fakeClient{
		response: `{"missed_opportunities": [], "follow_up_actions": [], "suggested_questions": [], "updated_timeline": "this week"}`,
	}

	if _, err := ReflectOnMeeting(context.Background(), client, testDonor(), "notes", nil, 0); err != nil {
		t.Fatalf("ReflectOnMeeting: %v", err)
	}

	var payload MeetingReflectionRequest
	if err := json.Unmarshal([]byte(client.messages[1].Content), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.FollowUpHorizonDays != 7 {
		t.Errorf("horizon default = %d", payload.FollowUpHorizonDays)
	}
}
