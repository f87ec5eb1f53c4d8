package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	messageStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Terminal runs a short-lived Bubble Tea program per question.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out))
	return p.Run()
}

func (t *Terminal) Select(message string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, fmt.Errorf("%s: nothing to choose from", message)
	}

	final, err := t.run(selectModel{message: message, choices: choices})
	if err != nil {
		return Choice{}, fmt.Errorf("run select prompt: %w", err)
	}

	m := final.(selectModel)
	if m.aborted {
		return Choice{}, ErrAborted
	}
	return m.choices[m.cursor], nil
}

func (t *Terminal) Input(message string) (string, error) {
	final, err := t.run(newInputModel(message))
	if err != nil {
		return "", fmt.Errorf("run input prompt: %w", err)
	}

	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.input.Value(), nil
}

// --- Select ---

type selectModel struct {
	message string
	choices []Choice
	cursor  int
	done    bool
	aborted bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case "down", "j", "tab":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.choices) - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render("?") + " " + messageStyle.Render(m.message))

	if m.done {
		b.WriteString(" " + answerStyle.Render(m.choices[m.cursor].Label) + "\n")
		return b.String()
	}
	if m.aborted {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(" " + helpStyle.Render("(use arrow keys)") + "\n")
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ " + c.Label))
		} else {
			b.WriteString("  " + c.Label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Input ---

type inputModel struct {
	message string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(message string) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()
	return inputModel{message: message, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	prefix := questionStyle.Render("?") + " " + messageStyle.Render(m.message) + " "
	if m.done {
		return prefix + answerStyle.Render(m.input.Value()) + "\n"
	}
	if m.aborted {
		return prefix + "\n"
	}
	return prefix + m.input.View() + "\n"
}
