package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/stewardhq/steward/internal/assist"
	"github.com/stewardhq/steward/internal/core"
	"github.com/stewardhq/steward/internal/observability"
	"github.com/stewardhq/steward/pkg/models"
)

// The walkthrough runs against a fixed date so every step is repeatable.
var demoDate = models.NewDate(2024, 3, 25)

// Pledge snippets used by the walkthrough to show how a single note
// changes the generated to-do list.
const (
	pledgeSnippet = "She said if I can deliver the mentorship pilot checklist—complete mentor background checks, " +
		"finalize the mentor-mentee matching roster, and publish the progress dashboard—by next Wednesday, " +
		"she will donate 100,000 dollars by the following week."

	pledgeReminder = "She said if I can finalize the mentor background checks, confirm the mentor-mentee matching roster, and send " +
		"her the updated mentorship progress dashboard by next week, then she will donate 100,000 dollars."

	pledgeFallback = "She is considering a major spring pledge and wants proof the mentorship pilot is truly launch-ready."
)

// Canned directives matching the presentation script.
const (
	directiveLA         = "I am in LA right now, find some clients that might be in LA too so I can catch up with them"
	directiveCatchUp    = "Find someone that I haven't talked to for a while but I should"
	directiveDisqualify = "Find someone I have been talking to for too long and might not be interested in donating, so I can disqualify them"
)

// seedDonorName is the donor the walkthrough edits.
const seedDonorName = "Alicia Gomez"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive offline walkthrough with the deterministic engine",
	Long: `Run the interactive demo shell. It exercises the full assistant
workflows against the deterministic heuristics, so recommendations stay
grounded in donor notes, directives, and meeting recaps without a live
model.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		m := newDemoModel(session)
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// --- Bubble Tea model ---

type demoAction struct {
	label string
	run   func(*demoModel) (string, error)
	// prompts, when non-empty, collects answers before run is skipped in
	// favor of finish.
	prompts []string
	finish  func(*demoModel, []string) (string, error)
}

type demoModel struct {
	session *core.Session
	stub    *assist.StubClient

	actions []demoAction
	cursor  int
	output  string
	errText string

	// Prompt state.
	prompting bool
	action    *demoAction
	answers   []string
	input     textinput.Model

	width  int
	height int
}

var (
	demoTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	demoMenuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	demoOutputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	demoSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	demoErrStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	demoHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDemoModel(session *core.Session) *demoModel {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 70

	m := &demoModel{
		session: session,
		stub:    assist.NewStubClient(Commitments),
		input:   input,
	}
	m.actions = []demoAction{
		{label: "Reset & show baseline to-do list", run: (*demoModel).resetAndTodo},
		{label: "Append the $100k pledge note", run: (*demoModel).appendPledge},
		{label: "Add directive: 'I am in LA right now...'", run: func(m *demoModel) (string, error) { return m.addDirective(directiveLA) }},
		{label: "Add directive: 'Find someone I haven't talked to...'", run: func(m *demoModel) (string, error) { return m.addDirective(directiveCatchUp) }},
		{label: "Add directive: 'Find someone to disqualify...'", run: func(m *demoModel) (string, error) { return m.addDirective(directiveDisqualify) }},
		{label: "Generate to-do list with current context", run: (*demoModel).generateTodo},
		{
			label:   "Plan meeting by event description",
			prompts: []string{"Describe the event (include the donor's name):"},
			finish:  (*demoModel).planByEvent,
		},
		{
			label:   "Reflect on meeting notes",
			prompts: []string{"Donor name:", "Meeting recap / notes:", "Missed questions (comma-separated, optional):"},
			finish:  (*demoModel).reflect,
		},
		{label: "Show donor snapshots", run: (*demoModel).showDonors},
		{label: "Show active directives", run: (*demoModel).showDirectives},
		{label: "Clear directives", run: (*demoModel).clearDirectives},
		{
			label:   "Append custom note to donor",
			prompts: []string{"Donor name:", "Additional note to append:"},
			finish:  (*demoModel).appendNote,
		},
		{label: "Save changes to disk", run: (*demoModel).commit},
	}
	m.output = "Welcome! This walkthrough uses the deterministic engine instead of a live model.\n" +
		"Pick an action with the arrow keys and enter."
	return m
}

func (m *demoModel) Init() tea.Cmd {
	return nil
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.actions)-1 {
				m.cursor++
			}
		case "enter":
			m.runAction(&m.actions[m.cursor])
		}
	}
	return m, nil
}

func (m *demoModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.prompting = false
		m.action = nil
		m.answers = nil
		return m, nil
	case "enter":
		m.answers = append(m.answers, m.input.Value())
		m.input.SetValue("")
		if len(m.answers) < len(m.action.prompts) {
			return m, nil
		}
		action := m.action
		answers := m.answers
		m.prompting = false
		m.action = nil
		m.answers = nil
		m.finishAction(action, answers)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *demoModel) runAction(action *demoAction) {
	m.errText = ""
	if len(action.prompts) > 0 {
		m.prompting = true
		m.action = action
		m.answers = nil
		m.input.SetValue("")
		m.input.Focus()
		return
	}
	out, err := action.run(m)
	m.setResult(out, err)
}

func (m *demoModel) finishAction(action *demoAction, answers []string) {
	out, err := action.finish(m, answers)
	m.setResult(out, err)
}

func (m *demoModel) setResult(out string, err error) {
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.output = out
}

func (m *demoModel) View() string {
	title := demoTitleStyle.Render("steward demo")

	var menu strings.Builder
	for i, action := range m.actions {
		line := fmt.Sprintf("%2d. %s", i+1, action.label)
		if i == m.cursor && !m.prompting {
			line = demoSelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		menu.WriteString(line + "\n")
	}

	body := m.output
	if m.prompting {
		body = m.action.prompts[len(m.answers)] + "\n\n" + m.input.View()
	}
	if m.errText != "" {
		body = demoErrStyle.Render("Error: "+m.errText) + "\n\n" + m.output
	}

	help := "up/down: select  enter: run  q: quit"
	if m.session.Dirty() {
		help += "  (unsaved changes)"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top,
			demoMenuStyle.Render(menu.String()),
			demoOutputStyle.Width(max(40, m.width-46)).Render(body),
		),
		demoHelpStyle.Render(help),
	)
}

// --- Actions ---

// resetAndTodo reloads the baseline dataset, strips the pledge snippet
// from the seed donor, and shows the default to-do list.
func (m *demoModel) resetAndTodo() (string, error) {
	if err := m.session.Reload(); err != nil {
		return "", err
	}
	m.stub = assist.NewStubClient(Commitments)
	if donor, err := m.session.Donor(seedDonorName); err == nil {
		donor.Notes = strings.ReplaceAll(donor.Notes, pledgeSnippet, pledgeFallback)
	}
	out, err := m.generateTodo()
	if err != nil {
		return "", err
	}
	return "Reset demo state to the baseline dataset.\n\n" + out, nil
}

func (m *demoModel) appendPledge() (string, error) {
	if err := m.session.AppendNote(seedDonorName, pledgeReminder); err != nil {
		return "", err
	}
	record(observability.EventNoteAppended, "pledge note appended", map[string]any{"donor": seedDonorName})
	return fmt.Sprintf("Appended the pledge reminder to %s's notes.\nRegenerate the to-do list to surface the deliverables.", seedDonorName), nil
}

func (m *demoModel) addDirective(directive string) (string, error) {
	if !m.session.AddDirective(directive) {
		return fmt.Sprintf("Directive already active: %s", directive), nil
	}
	record(observability.EventDirectiveAdded, "directive added", map[string]any{"directive": directive})
	return fmt.Sprintf("Added directive: %s", directive), nil
}

func (m *demoModel) generateTodo() (string, error) {
	tasks, err := assist.GenerateDailyTodo(context.Background(), m.stub,
		m.session.Donors, m.session.Schedule, demoDate, m.session.Directives)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("Suggested to-do list:\n\n")
	for i, task := range tasks {
		related := strings.Join(task.RelatedDonors, ", ")
		if related == "" {
			related = "general"
		}
		fmt.Fprintf(&b, "%d. [%s] %s (%s)\n   -> %s\n\n", i+1, task.Time, task.Task, related, task.Reason)
	}
	record(observability.EventTodoGenerated, "to-do list generated", map[string]any{
		"date":  demoDate.String(),
		"tasks": len(tasks),
	})
	return b.String(), nil
}

// planByEvent infers the donor from the event description by name
// containment, then plans the meeting.
func (m *demoModel) planByEvent(answers []string) (string, error) {
	description := strings.TrimSpace(answers[0])
	if description == "" {
		return "", fmt.Errorf("provide an event description including the donor's name, e.g. \"Meet Alicia Gomez at Gala 2025\"")
	}
	lowered := strings.ToLower(description)
	var donor *models.Donor
	for _, d := range m.session.Donors {
		if strings.Contains(lowered, strings.ToLower(d.Name)) {
			donor = d
			break
		}
	}
	if donor == nil {
		return "", fmt.Errorf("could not infer a donor from that description; include their full name")
	}

	objectives := []string{
		"Confirm mentorship deliverables are ready",
		"Discuss LA alumni mixer logistics",
	}
	plan, err := assist.PlanMeeting(context.Background(), m.stub, donor, demoDate, objectives, description)
	if err != nil {
		return "", err
	}
	record(observability.EventPlanGenerated, "meeting plan generated", map[string]any{"donor": donor.Name})
	return "Meeting plan:\n\n" + mustJSON(plan), nil
}

func (m *demoModel) reflect(answers []string) (string, error) {
	donor, err := m.session.Donor(answers[0])
	if err != nil {
		return "", err
	}
	notes := strings.TrimSpace(answers[1])
	var missed []string
	for _, q := range strings.Split(answers[2], ",") {
		if q = strings.TrimSpace(q); q != "" {
			missed = append(missed, q)
		}
	}
	reflection, err := assist.ReflectOnMeeting(context.Background(), m.stub, donor, notes, missed, 5)
	if err != nil {
		return "", err
	}
	record(observability.EventReflectionGenerated, "reflection generated", map[string]any{"donor": donor.Name})
	return "Follow-up guidance:\n\n" + mustJSON(reflection), nil
}

func (m *demoModel) showDonors() (string, error) {
	var b strings.Builder
	b.WriteString("Current donor snapshots:\n\n")
	for _, donor := range m.session.Donors {
		b.WriteString(donorSnapshot(donor))
	}
	return b.String(), nil
}

func (m *demoModel) showDirectives() (string, error) {
	if len(m.session.Directives) == 0 {
		return "No active directives.", nil
	}
	var b strings.Builder
	b.WriteString("Active directives:\n")
	for _, d := range m.session.Directives {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	return b.String(), nil
}

func (m *demoModel) clearDirectives() (string, error) {
	m.session.ClearDirectives()
	return "Cleared all directives.", nil
}

func (m *demoModel) appendNote(answers []string) (string, error) {
	name, note := answers[0], answers[1]
	if strings.TrimSpace(note) == "" {
		return "", fmt.Errorf("note text is empty")
	}
	if err := m.session.AppendNote(name, note); err != nil {
		return "", err
	}
	record(observability.EventNoteAppended, "note appended", map[string]any{"donor": name})
	return fmt.Sprintf("Updated notes for %s.", name), nil
}

// commit is the explicit write step: nothing touches the files until the
// user asks for it.
func (m *demoModel) commit() (string, error) {
	if !m.session.Dirty() {
		return "No unsaved changes.", nil
	}
	if err := m.session.Commit(); err != nil {
		return "", err
	}
	record(observability.EventDataCommitted, "data files written", map[string]any{"dir": m.session.DataDir})
	return "Wrote donors.json and schedule.json.", nil
}

func mustJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
