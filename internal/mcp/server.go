// Package mcp exposes the assistant's deterministic engine as MCP (Model
// Context Protocol) tools so coding assistants and agent hosts can call
// it directly.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/pkg/models"
)

// Server wraps a session and publishes the assistant operations as tools.
type Server struct {
	server      *gomcp.Server
	session     *core.Session
	commitments core.CommitmentTable
}

// NewServer creates an MCP server over the given session.
func NewServer(session *core.Session, commitments core.CommitmentTable, version string) *Server {
	if version == "" {
		version = "dev"
	}
	s := &Server{
		session:     session,
		commitments: commitments,
	}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "steward", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type dailyTodoInput struct {
	Date       string   `json:"date" jsonschema:"required,target date in YYYY-MM-DD form"`
	Directives []string `json:"directives,omitempty" jsonschema:"free-text prioritization directives, e.g. 'I am in LA right now'"`
}

type dailyTodoOutput struct {
	Tasks []models.Task `json:"tasks"`
	Count int           `json:"count"`
}

type planMeetingInput struct {
	Name       string   `json:"name" jsonschema:"required,donor name (case-insensitive)"`
	Date       string   `json:"date,omitempty" jsonschema:"meeting date in YYYY-MM-DD form"`
	Objectives []string `json:"objectives,omitempty" jsonschema:"fundraiser objectives to fold into the discussion topics"`
	Event      string   `json:"event,omitempty" jsonschema:"optional event description, e.g. 'Gala 2025'"`
}

type reflectInput struct {
	Name            string   `json:"name" jsonschema:"required,donor name (case-insensitive)"`
	Notes           string   `json:"notes" jsonschema:"required,the meeting recap text"`
	MissedQuestions []string `json:"missed_questions,omitempty" jsonschema:"questions the fundraiser already knows were missed"`
	HorizonDays     int      `json:"horizon_days,omitempty" jsonschema:"follow-up window in days (default 7)"`
}

type listDonorsInput struct{}

type donorSnapshot struct {
	Name            string `json:"name"`
	PrimaryCity     string `json:"primary_city,omitempty"`
	Status          string `json:"status,omitempty"`
	LastInteraction string `json:"last_interaction,omitempty"`
	Notes           string `json:"notes"`
}

type listDonorsOutput struct {
	Donors []donorSnapshot `json:"donors"`
	Count  int             `json:"count"`
}

type getDonorInput struct {
	Name string `json:"name" jsonschema:"required,donor name (case-insensitive)"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "generate_daily_todo",
		Description: "Generate the prioritized to-do list for a date, honoring any free-text directives.",
	}, s.handleDailyTodo)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "plan_meeting",
		Description: "Create a meeting plan for a donor: format, discussion topics, gift ideas, preparation, follow-up.",
	}, s.handlePlanMeeting)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "reflect_on_meeting",
		Description: "Review meeting notes against tracked deliverables and open questions, producing follow-up guidance.",
	}, s.handleReflect)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_donors",
		Description: "List donor snapshots: name, city, status, last interaction, notes.",
	}, s.handleListDonors)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_donor",
		Description: "Get the full donor record by name.",
	}, s.handleGetDonor)
}

// --- Tool handlers ---

func (s *Server) handleDailyTodo(_ context.Context, _ *gomcp.CallToolRequest, input dailyTodoInput) (*gomcp.CallToolResult, dailyTodoOutput, error) {
	day, err := models.ParseDate(input.Date)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", input.Date)), dailyTodoOutput{}, nil
	}
	tasks := core.NewRanker(s.commitments).RankTasks(s.session.Donors, s.session.Schedule, day, input.Directives)
	return nil, dailyTodoOutput{Tasks: tasks, Count: len(tasks)}, nil
}

func (s *Server) handlePlanMeeting(_ context.Context, _ *gomcp.CallToolRequest, input planMeetingInput) (*gomcp.CallToolResult, models.MeetingPlan, error) {
	donor, err := s.session.Donor(input.Name)
	if err != nil {
		return errorResult(fmt.Sprintf("donor %q not found", input.Name)), models.MeetingPlan{}, nil
	}
	var day models.Date
	if input.Date != "" {
		day, err = models.ParseDate(input.Date)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", input.Date)), models.MeetingPlan{}, nil
		}
	}
	plan := core.PlanMeeting(donor, day, input.Objectives, input.Event)
	return nil, plan, nil
}

func (s *Server) handleReflect(_ context.Context, _ *gomcp.CallToolRequest, input reflectInput) (*gomcp.CallToolResult, models.MeetingReflection, error) {
	if input.Notes == "" {
		return errorResult("notes is required"), models.MeetingReflection{}, nil
	}
	donor, err := s.session.Donor(input.Name)
	if err != nil {
		return errorResult(fmt.Sprintf("donor %q not found", input.Name)), models.MeetingReflection{}, nil
	}
	reflection := core.ReflectOnMeeting(donor, input.Notes, input.MissedQuestions, input.HorizonDays, s.commitments)
	return nil, reflection, nil
}

func (s *Server) handleListDonors(_ context.Context, _ *gomcp.CallToolRequest, _ listDonorsInput) (*gomcp.CallToolResult, listDonorsOutput, error) {
	out := listDonorsOutput{
		Donors: make([]donorSnapshot, 0, len(s.session.Donors)),
	}
	for _, d := range s.session.Donors {
		snap := donorSnapshot{
			Name:        d.Name,
			PrimaryCity: d.PrimaryCity,
			Status:      string(d.Status),
			Notes:       d.Notes,
		}
		if latest, ok := latestInteraction(d); ok {
			snap.LastInteraction = latest
		}
		out.Donors = append(out.Donors, snap)
	}
	out.Count = len(out.Donors)
	return nil, out, nil
}

func (s *Server) handleGetDonor(_ context.Context, _ *gomcp.CallToolRequest, input getDonorInput) (*gomcp.CallToolResult, models.Donor, error) {
	donor, err := s.session.Donor(input.Name)
	if err != nil {
		return errorResult(fmt.Sprintf("donor %q not found", input.Name)), models.Donor{}, nil
	}
	return nil, *donor, nil
}

func latestInteraction(d *models.Donor) (string, bool) {
	var latest models.Date
	for _, in := range d.Interactions {
		if in.Date.IsZero() {
			continue
		}
		if latest.IsZero() || in.Date.After(latest.Time) {
			latest = in.Date
		}
	}
	if latest.IsZero() {
		return "", false
	}
	return latest.String(), true
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
