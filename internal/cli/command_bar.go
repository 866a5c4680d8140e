package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alexanderramin/reportcal/internal/cli/formatter"
	"github.com/alexanderramin/reportcal/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// commandBar is the text input at the bottom of the TUI. It runs the same
// commands as the command line, plus goto and quit.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{input: ti, state: state}
}

func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len("reportcal > ") - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.history = append(c.history, input)
		c.historyIdx = len(c.history)
		return c.executeCommand(input)

	case tea.KeyUp:
		if c.historyIdx > 0 {
			c.historyIdx--
			c.input.SetValue(c.history[c.historyIdx])
			c.input.CursorEnd()
		}
		return nil

	case tea.KeyDown:
		if c.historyIdx < len(c.history)-1 {
			c.historyIdx++
			c.input.SetValue(c.history[c.historyIdx])
			c.input.CursorEnd()
		} else {
			c.historyIdx = len(c.history)
			c.input.SetValue("")
		}
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.input.SetSuggestions(commandSuggestions(c.input.Value()))
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *commandBar) View() string {
	prompt := formatter.StylePurple.Render("reportcal") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("press : to type a command")
	}
	return prompt + c.input.View()
}

// executeCommand handles TUI-only commands and sends the rest through the
// cobra tree with output captured.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	args, err := splitCommandLine(input)
	if err != nil {
		return outputCmd(errorText(err))
	}
	if len(args) == 0 {
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "q", "quit", "exit":
		return func() tea.Msg { return quitMsg{} }
	case "tui":
		return flashCmd(formatter.Dim("Already in the calendar."))
	case "goto":
		if len(args) != 2 {
			return outputCmd(errorText(fmt.Errorf("usage: goto DATE")))
		}
		day, err := parseDayArg(c.state.App, args[1])
		if err != nil {
			return outputCmd(errorText(err))
		}
		c.state.Selected = day
		c.Blur()
		return refreshCmd()
	}

	app := c.state.App
	return func() tea.Msg {
		return cmdOutputMsg{output: captureCobraOutput(app, args)}
	}
}

// captureCobraOutput runs args through a fresh command tree. The copy of
// App is never interactive so a bare flag list cannot start a nested TUI.
func captureCobraOutput(app *App, args []string) string {
	local := *app
	local.Interactive = false

	root := NewRootCmd(&local)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
			buf.WriteString("\n")
		}
		buf.WriteString(errorText(err))
	}
	return buf.String()
}

var barCommands = []string{
	"month", "get", "set", "clear", "list", "history", "statuses", "goto", "help", "quit",
}

// commandSuggestions returns whole-line completions for the current input:
// command names for the first word, status ids after "set DATE ".
func commandSuggestions(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Fields(text)
	trailing := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailing {
		return withPrefix("", barCommands, parts[0])
	}

	if strings.EqualFold(parts[0], "set") && (len(parts) == 2 && trailing || len(parts) == 3 && !trailing) {
		ids := make([]string, 0, len(domain.AllStatuses))
		for _, s := range domain.AllStatuses {
			ids = append(ids, string(s))
		}
		prefix := ""
		if len(parts) == 3 {
			prefix = parts[2]
		}
		return withPrefix(parts[0]+" "+parts[1]+" ", ids, prefix)
	}
	return nil
}

func withPrefix(lead string, pool []string, prefix string) []string {
	lp := strings.ToLower(prefix)
	var out []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			out = append(out, lead+s)
		}
	}
	return out
}
