package assist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/internal/llm"
)

// StubClient is a deterministic stand-in for the hosted model. It decodes
// the tagged JSON payload from the final user message and answers from
// the heuristic engine, so the full request/response path can run
// offline. Calls are recorded for inspection.
type StubClient struct {
	commitments core.CommitmentTable

	// Calls holds the raw user payloads seen, in order.
	Calls []json.RawMessage
}

// NewStubClient builds a stub around the given commitment table.
func NewStubClient(commitments core.CommitmentTable) *StubClient {
	return &StubClient{commitments: commitments}
}

// Complete implements llm.Client.
func (s *StubClient) Complete(_ context.Context, messages []llm.Message, opts llm.CompleteOptions) (string, error) {
	if opts.ResponseFormat != llm.ResponseFormatJSON {
		return "", fmt.Errorf("stub client requires the %q response format", llm.ResponseFormatJSON)
	}
	var payload string
	for _, m := range messages {
		if m.Role == llm.RoleUser {
			payload = m.Content
		}
	}
	if payload == "" {
		return "", fmt.Errorf("no user message in conversation")
	}
	s.Calls = append(s.Calls, json.RawMessage(payload))

	var kind struct {
		Request string `json:"request"`
	}
	if err := json.Unmarshal([]byte(payload), &kind); err != nil {
		return "", fmt.Errorf("decoding request payload: %w", err)
	}

	switch kind.Request {
	case RequestDailyTodo:
		return s.dailyTodo(payload)
	case RequestMeetingPlan:
		return s.meetingPlan(payload)
	case RequestMeetingReflection:
		return s.meetingReflection(payload)
	default:
		return "", fmt.Errorf("unsupported request type: %q", kind.Request)
	}
}

func (s *StubClient) dailyTodo(payload string) (string, error) {
	var req DailyTodoRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("decoding daily_todo payload: %w", err)
	}
	tasks := core.NewRanker(s.commitments).RankTasks(req.Donors, req.Schedule, req.Date, req.Directives)
	return encode(TodoResponse{Tasks: tasks})
}

func (s *StubClient) meetingPlan(payload string) (string, error) {
	var req MeetingPlanRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("decoding meeting_plan payload: %w", err)
	}
	if req.Donor == nil {
		return "", fmt.Errorf("meeting_plan payload missing donor")
	}
	plan := core.PlanMeeting(req.Donor, req.MeetingDate, req.FundraiserObjectives, req.Event)
	return encode(plan)
}

func (s *StubClient) meetingReflection(payload string) (string, error) {
	var req MeetingReflectionRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("decoding meeting_reflection payload: %w", err)
	}
	if req.Donor == nil {
		return "", fmt.Errorf("meeting_reflection payload missing donor")
	}
	reflection := core.ReflectOnMeeting(req.Donor, req.MeetingNotes, req.MissedQuestions, req.FollowUpHorizonDays, s.commitments)
	return encode(reflection)
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding stub response: %w", err)
	}
	return string(data), nil
}
