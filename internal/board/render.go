package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plankhq/plank/internal/model"
)

// View is a snapshot of one team's board: the team, its resolved
// members, and its tasks grouped into status columns. Boards are derived
// from the tasks collection, never stored.
type View struct {
	Team    model.Team
	Members []model.User
	Columns map[model.Status][]model.Task
}

// Board assembles the view for a team.
func (s *Service) Board(teamID string) (*View, error) {
	team, err := s.teams.Get(teamID)
	if err != nil {
		return nil, err
	}
	members, err := s.TeamMembers(teamID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(func(t model.Task) bool { return t.TeamID == teamID })
	if err != nil {
		return nil, err
	}
	columns := make(map[model.Status][]model.Task, len(model.Statuses))
	for _, task := range tasks {
		columns[task.Status] = append(columns[task.Status], task)
	}
	return &View{Team: team, Members: members, Columns: columns}, nil
}

type boardStyles struct {
	title  lipgloss.Style
	column lipgloss.Style
	head   lipgloss.Style
	meta   lipgloss.Style
}

// newBoardStyles builds the board styles for a renderer. The renderer's
// color profile decides how much styling survives: a terminal gets bold
// and faint text, a plain file export gets unadorned text.
func newBoardStyles(r *lipgloss.Renderer) boardStyles {
	return boardStyles{
		title:  r.NewStyle().Bold(true).Underline(true),
		column: r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(30),
		head:   r.NewStyle().Bold(true),
		meta:   r.NewStyle().Faint(true),
	}
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusTodo:
		return "To Do"
	case model.StatusInProgress:
		return "In Progress"
	case model.StatusDone:
		return "Done"
	}
	return string(s)
}

// Render produces a presentable view of the board: the team header, the
// member roster, and one column per status.
func (v *View) Render(r *lipgloss.Renderer) string {
	styles := newBoardStyles(r)
	var b strings.Builder

	b.WriteString(styles.title.Render(fmt.Sprintf("Board: %s", v.Team.Name)))
	b.WriteString("\n")
	if v.Team.Description != "" {
		b.WriteString(v.Team.Description)
		b.WriteString("\n")
	}
	names := make([]string, len(v.Members))
	for i, m := range v.Members {
		names[i] = m.Name
	}
	roster := "none"
	if len(names) > 0 {
		roster = strings.Join(names, ", ")
	}
	b.WriteString(styles.meta.Render("Members: " + roster))
	b.WriteString("\n\n")

	byID := make(map[string]model.User, len(v.Members))
	for _, m := range v.Members {
		byID[m.ID] = m
	}

	cols := make([]string, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		cols = append(cols, v.renderColumn(styles, status, byID))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")
	return b.String()
}

func (v *View) renderColumn(styles boardStyles, status model.Status, users map[string]model.User) string {
	tasks := v.Columns[status]
	lines := []string{
		styles.head.Render(fmt.Sprintf("%s (%d)", statusLabel(status), len(tasks))),
	}
	for _, task := range tasks {
		lines = append(lines, "", "• "+task.Title)
		if task.Description != "" {
			lines = append(lines, styles.meta.Render("  "+task.Description))
		}
		if task.AssigneeID != "" {
			name := task.AssigneeID
			if u, ok := users[task.AssigneeID]; ok {
				name = u.Name
			}
			lines = append(lines, styles.meta.Render("  @"+name))
		}
	}
	return styles.column.Render(strings.Join(lines, "\n"))
}
