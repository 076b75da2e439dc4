package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// runCmd executes cmd synchronously and returns the messages it produced,
// flattening batches. Commands produced by handling those messages are not run.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed runs cmd and delivers each resulting message to v.
func feed(v View, cmd tea.Cmd) {
	for _, m := range runCmd(cmd) {
		v.Update(m)
	}
}

// findMsg returns the first message of type T produced by cmd.
func findMsg[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, m := range runCmd(cmd) {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// typeString sends each rune of s to v as a key press and collects the commands.
func typeString(v View, s string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range s {
		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return cmds
}

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// containsText reports whether out contains want once styling is stripped.
func containsText(out, want string) bool {
	return strings.Contains(ansi.Strip(out), want)
}
