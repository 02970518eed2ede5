package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jamsub/sunder/internal/port"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConsolePrompter implements the Prompter port on the controlling
// terminal. Interactive terminals get bubbletea prompts; everything else
// (pipes, dumb terminals) falls back to plain line reads so the tool stays
// usable over a serial console.
type ConsolePrompter struct {
	in *bufio.Reader
}

// Ensure ConsolePrompter implements the Prompter port
var _ port.Prompter = (*ConsolePrompter)(nil)

// NewConsolePrompter creates a prompter reading from stdin.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(os.Stdin)}
}

// Confirm asks a yes/no question. Enter and "n" decline; only an explicit
// "y" proceeds.
func (c *ConsolePrompter) Confirm(question string) (bool, error) {
	if !stdoutIsTerminal() {
		fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
		line, err := c.in.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("confirm prompt: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}

	m := &confirmModel{question: question}
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	if m.cancelled {
		return false, nil
	}
	return m.confirmed, nil
}

// Prompt asks for a value; an empty entry returns def.
func (c *ConsolePrompter) Prompt(label, def string) (string, error) {
	if !stdoutIsTerminal() {
		if def != "" {
			fmt.Fprintf(os.Stderr, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(os.Stderr, "%s: ", label)
		}
		line, err := c.in.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("text prompt: %w", err)
		}
		value := strings.TrimSpace(line)
		if value == "" {
			return def, nil
		}
		return value, nil
	}

	ti := textinput.New()
	ti.Placeholder = def
	ti.Focus()
	ti.PromptStyle = AccentStyle
	ti.TextStyle = lipgloss.NewStyle()

	m := &promptModel{label: label, textInput: ti}
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("text prompt: %w", err)
	}
	if m.cancelled {
		return def, nil
	}
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return def, nil
	}
	return value, nil
}

// confirmModel is a bubbletea model for yes/no confirmation.
type confirmModel struct {
	question  string
	confirmed bool
	cancelled bool
	answered  bool
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.answered = true
			return m, tea.Quit
		case "n", "N", "enter":
			m.confirmed = false
			m.answered = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	if m.answered || m.cancelled {
		return ""
	}
	return AccentStyle.Render("?") + " " + m.question + " " + MutedStyle.Render("[y/N]") + " "
}

// promptModel is a bubbletea model for text input.
type promptModel struct {
	label     string
	textInput textinput.Model
	cancelled bool
	submitted bool
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(AccentStyle.Render("?") + " " + m.label + "\n")
	sb.WriteString(m.textInput.View() + "\n")
	return sb.String()
}
