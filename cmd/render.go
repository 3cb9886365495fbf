package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)
)

func printName(w io.Writer, name string) {
	_, _ = fmt.Fprintln(w, nameStyle.Render(name))
}

func printNote(w io.Writer, note string) {
	_, _ = fmt.Fprintln(w, noteStyle.Render(note))
}
