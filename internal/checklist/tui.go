package checklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Lines per checklist item in the list view (label + hint + blank separator).
const itemHeight = 3

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("39")) // bright blue

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")). // bright white
				Background(lipgloss.Color("24"))  // dark blue bg

	selectedHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // green
)

type checklistModel struct {
	items    []Item
	state    map[string]bool
	cursor   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case " ", "enter":
			item := m.items[m.cursor]
			m.state[item.ID] = !m.state[item.ID]
			m.viewport.SetContent(m.renderItems())
			return m, nil
		case "r":
			m.state = map[string]bool{}
			m.viewport.SetContent(m.renderItems())
			return m, nil
		}

		// Forward other keys (pgup/pgdn/home/end) to the viewport.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *checklistModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, len(m.items)-1)
	m.viewport.SetContent(m.renderItems())
	m.ensureCursorVisible()
}

func (m *checklistModel) ensureCursorVisible() {
	cursorTop := m.cursor * itemHeight
	cursorBottom := cursorTop + itemHeight - 1

	if cursorTop < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorTop)
	} else if cursorBottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorBottom - m.viewport.Height + 1)
	}
}

func (m *checklistModel) recalcLayout() {
	// Border top/bottom (2) + title (1) + status bar (1) = 4 lines overhead.
	w := max(m.width-2, 20)
	h := max(m.height-4, 5)

	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
	m.viewport.SetContent(m.renderItems())
}

func (m checklistModel) renderItems() string {
	var b strings.Builder
	for i, item := range m.items {
		box := "☐"
		if m.state[item.ID] {
			box = checkedStyle.Render("☑")
		}
		label := fmt.Sprintf("%s %s", box, item.Label)
		hint := "  " + item.Hint
		if i == m.cursor {
			b.WriteString(selectedLabelStyle.Render(label))
			b.WriteString("\n")
			b.WriteString(selectedHintStyle.Render(hint))
		} else {
			b.WriteString(labelStyle.Render(label))
			b.WriteString("\n")
			b.WriteString(hintStyle.Render(hint))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m checklistModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf(" Test Checklist (%d/%d passed)", PassedCount(m.state), len(m.items)))
	status := statusBarStyle.Render("space: toggle · r: reset · q: save & quit")
	return title + "\n" + borderStyle.Render(m.viewport.View()) + "\n" + status
}

// Run shows the interactive checklist seeded with state and returns the
// (possibly modified) state when the user quits. The caller persists it.
func Run(state map[string]bool) (map[string]bool, error) {
	if state == nil {
		state = map[string]bool{}
	}
	m := checklistModel{items: Items, state: state}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("checklist TUI: %w", err)
	}
	return final.(checklistModel).state, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
