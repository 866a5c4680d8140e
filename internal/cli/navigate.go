package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// cmdOutputMsg carries command bar output to be shown in place of the
// active view until the next key press.
type cmdOutputMsg struct {
	output string
}

// flashMsg shows a one-line notice above the status bar.
type flashMsg struct {
	text string
}

// refreshViewMsg asks every view on the stack to reload from the service.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func flashCmd(s string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: s} }
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// reportChangedMsg reports a finished mutation. The appModel flashes the
// text and refreshes every view.
type reportChangedMsg struct {
	text string
}
