package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kpmcc/golox/lox"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")
)

type replStyles struct {
	prompt   lipgloss.Style
	result   lipgloss.Style
	errText  lipgloss.Style
	muted    lipgloss.Style
	header   lipgloss.Style
	helpKey  lipgloss.Style
	helpDesc lipgloss.Style
	border   lipgloss.Style
}

func newREPLStyles(color bool) replStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return replStyles{
			prompt:   plain,
			result:   plain,
			errText:  plain,
			muted:    plain,
			header:   plain,
			helpKey:  plain,
			helpDesc: plain,
			border:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}
	return replStyles{
		prompt: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),
		result: lipgloss.NewStyle().
			Foreground(successColor),
		errText: lipgloss.NewStyle().
			Foreground(errorColor),
		muted: lipgloss.NewStyle().
			Foreground(mutedColor),
		header: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1),
		helpKey: lipgloss.NewStyle().
			Foreground(highlightColor),
		helpDesc: lipgloss.NewStyle().
			Foreground(mutedColor),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1),
	}
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	styles      replStyles
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous line"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next line"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel(cfg config) replModel {
	styles := newREPLStyles(cfg.REPL.Color)

	ti := textinput.New()
	ti.Placeholder = "type an expression..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = styles.prompt
	ti.Prompt = cfg.REPL.Prompt

	return replModel{
		textInput:  ti,
		styles:     styles,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
		showHelp:   false,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.cmdHistory = append(m.cmdHistory, input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			output, isErr := evaluateLine(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":tokens":
		output, isErr := tokensCommand(rest)
		m.history = append(m.history, historyEntry{
			input:  input,
			output: output,
			isErr:  isErr,
		})
	case ":ast":
		output, isErr := astCommand(rest)
		m.history = append(m.history, historyEntry{
			input:  input,
			output: output,
			isErr:  isErr,
		})
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

// evaluateLine runs one REPL line through the pipeline and renders
// either the value or the first error.
func evaluateLine(input string) (string, bool) {
	scanner := lox.NewScanner(input)
	tokens := scanner.ScanTokens()
	if errs := scanner.Errors(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i := range errs {
			msgs[i] = errs[i].Error()
		}
		return strings.Join(msgs, "\n"), true
	}

	expr, err := lox.NewParser(tokens).Parse()
	if err != nil {
		return err.Error(), true
	}
	if expr == nil {
		return "", false
	}

	result, err := lox.Evaluate(expr)
	if err != nil {
		return err.Error(), true
	}
	return lox.FormatValue(result), false
}

func tokensCommand(source string) (string, bool) {
	if source == "" {
		return "usage: :tokens <expression>", true
	}
	scanner := lox.NewScanner(source)
	tokens := scanner.ScanTokens()

	var lines []string
	for _, scanErr := range scanner.Errors() {
		lines = append(lines, scanErr.Error())
	}
	for _, tok := range tokens {
		lines = append(lines, tok.String())
	}
	return strings.Join(lines, "\n"), len(scanner.Errors()) > 0
}

func astCommand(source string) (string, bool) {
	if source == "" {
		return "usage: :ast <expression>", true
	}
	scanner := lox.NewScanner(source)
	tokens := scanner.ScanTokens()
	if errs := scanner.Errors(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i := range errs {
			msgs[i] = errs[i].Error()
		}
		return strings.Join(msgs, "\n"), true
	}

	expr, err := lox.NewParser(tokens).Parse()
	if err != nil {
		return err.Error(), true
	}
	if expr == nil {
		return "", false
	}
	return lox.PrintExpr(expr), false
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return m.styles.muted.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := m.styles.header.Render("Lox REPL")
	b.WriteString(header + " " + m.styles.muted.Render("v"+version) + "\n")
	b.WriteString(m.styles.muted.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8 // header, input, footer
	if m.showHelp {
		reservedLines += 11
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(m.styles.muted.Render("  › ") + entry.input + "\n")
		}
		if entry.output != "" {
			style := m.styles.result
			marker := "→ "
			if entry.isErr {
				style = m.styles.errText
				marker = "✗ "
			}
			for j, line := range strings.Split(entry.output, "\n") {
				if j == 0 {
					b.WriteString("  " + style.Render(marker+line) + "\n")
				} else {
					b.WriteString("    " + style.Render(line) + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := m.styles.helpKey.Render("ctrl+k") + m.styles.helpDesc.Render(" help  ") +
		m.styles.helpKey.Render("ctrl+l") + m.styles.helpDesc.Render(" clear  ") +
		m.styles.helpKey.Render("ctrl+c") + m.styles.helpDesc.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func (m replModel) renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Enter", "Evaluate expression"},
		{":tokens", "Show the tokens of an expression"},
		{":ast", "Show the parsed tree of an expression"},
		{":help", "Toggle this help"},
		{":clear", "Clear history"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			m.styles.helpKey.Render(fmt.Sprintf("%-8s", h.key)),
			m.styles.helpDesc.Render(h.desc))
		lines = append(lines, line)
	}

	return m.styles.border.Render(strings.Join(lines, "\n"))
}

func runTUIREPL(cfg config) error {
	p := tea.NewProgram(newREPLModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
