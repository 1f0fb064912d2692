package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// controlsTable lists every binding of the key map.
func controlsTable(keys KeyMap) table.Model {
	columns := []table.Column{
		{Title: "Key", Width: 10},
		{Title: "Action", Width: 12},
	}

	var rows []table.Row
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			rows = append(rows, table.Row{b.Help().Key, b.Help().Desc})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable on the title screen
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// viewTitle renders the title screen: name, board size and the controls.
func (m Model) viewTitle() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%dx%d board, %d ticks per second, edges wrap around",
		m.cfg.Board.Width, m.cfg.Board.Height, m.cfg.TickRate)))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.controls.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Start, m.keys.Quit})))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
