// Package assist implements the assistant operations (daily to-do,
// meeting plan, meeting reflection) over an llm.Client. Each
// request kind has an explicit tagged payload type, and every response is
// validated for required keys at the boundary.
package assist

import (
	"github.com/stewardhq/steward/pkg/models"
)

// Request kinds carried in the "request" field of each payload.
const (
	RequestDailyTodo         = "daily_todo"
	RequestMeetingPlan       = "meeting_plan"
	RequestMeetingReflection = "meeting_reflection"
)

// DailyTodoRequest is the tagged payload for the daily to-do operation.
type DailyTodoRequest struct {
	Request    string                 `json:"request"`
	Date       models.Date            `json:"date"`
	Schedule   []models.ScheduleEntry `json:"schedule"`
	Donors     []*models.Donor        `json:"donors"`
	Directives []string               `json:"directives,omitempty"`
	Guidelines []string               `json:"guidelines"`
}

// TodoResponse is the expected shape of a daily to-do completion.
type TodoResponse struct {
	Tasks []models.Task `json:"tasks"`
}

// MeetingPlanRequest is the tagged payload for the meeting plan
// operation.
type MeetingPlanRequest struct {
	Request              string        `json:"request"`
	MeetingDate          models.Date   `json:"meeting_date"`
	Donor                *models.Donor `json:"donor"`
	FundraiserObjectives []string      `json:"fundraiser_objectives,omitempty"`
	Event                string        `json:"event,omitempty"`
	Expectations         []string      `json:"expectations"`
}

// MeetingReflectionRequest is the tagged payload for the post-meeting
// reflection operation.
type MeetingReflectionRequest struct {
	Request             string        `json:"request"`
	Donor               *models.Donor `json:"donor"`
	MeetingNotes        string        `json:"meeting_notes"`
	MissedQuestions     []string      `json:"missed_questions,omitempty"`
	FollowUpHorizonDays int           `json:"follow_up_horizon_days"`
}
