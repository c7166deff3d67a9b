package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	fileStyle    = lipgloss.NewStyle().Bold(true)
)

// headerHeight and footerHeight are the lines reserved around the viewport.
const (
	headerHeight = 2
	footerHeight = 2
)

// TUI implements UI with an interactive Bubble Tea preview for Confirm and
// plain output for everything else.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Confirm shows the colored diff in a scrollable viewport and waits for y/n.
func (t *TUI) Confirm(ctx context.Context, path m.Path, diff string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	model := newConfirmModel(displayPath(path), renderDiff(diff))

	program := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.ErrOrStderr()),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run preview: %w", err)
	}

	result, ok := final.(confirmModel)

	return ok && result.confirmed, nil
}

// renderDiff colors a unified diff line by line.
func renderDiff(diff string) string {
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = fileStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// confirmModel is the Bubble Tea model backing Confirm.
type confirmModel struct {
	title     string
	content   string
	viewport  viewport.Model
	ready     bool
	confirmed bool
	quitting  bool
}

func newConfirmModel(title, content string) confirmModel {
	return confirmModel{
		title:   title,
		content: content,
	}
}

func (cm confirmModel) Init() tea.Cmd {
	return nil
}

func (cm confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}

		if !cm.ready {
			cm.viewport = viewport.New(msg.Width, height)
			cm.viewport.SetContent(cm.content)
			cm.ready = true
		} else {
			cm.viewport.Width = msg.Width
			cm.viewport.Height = height
		}

		return cm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			cm.confirmed = true
			cm.quitting = true

			return cm, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			cm.quitting = true
			return cm, tea.Quit
		}
	}

	if !cm.ready {
		return cm, nil
	}

	var cmd tea.Cmd
	cm.viewport, cmd = cm.viewport.Update(msg)

	return cm, cmd
}

func (cm confirmModel) View() string {
	if cm.quitting {
		return ""
	}

	if !cm.ready {
		return "\n  Loading preview..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("viewstrap › " + cm.title))
	b.WriteString("\n\n")
	b.WriteString(cm.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %3.f%%\n", helpStyle.Render("y: apply | n/q: cancel | ↑/↓: scroll"), cm.viewport.ScrollPercent()*100)

	return b.String()
}
