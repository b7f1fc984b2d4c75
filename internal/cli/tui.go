package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/render/edges"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the interactive strategy picker. It walks through
// strategy and palette selection and prints the resulting render command.
func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [network.json]",
		Short: "Interactively choose a strategy and palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(args[0])
		},
	}
}

func runPick(input string) error {
	strategy, err := runPicker(NewStrategyPickModel())
	if err != nil || strategy == "" {
		return err
	}

	paletteName := ""
	if strategy == edges.NameWeighted || strategy == edges.NameCommunity {
		paletteName, err = runPicker(NewPalettePickModel())
		if err != nil {
			return err
		}
		if paletteName == "" {
			return nil
		}
	}

	cmdline := fmt.Sprintf("%s render %s --strategy %s", appName, input, strategy)
	if paletteName != "" {
		cmdline += " --palette " + paletteName
	}

	printNewline()
	printNextStep("Run", cmdline)
	return nil
}

// runPicker runs a list model and returns its selection, empty when the
// user quit without choosing.
func runPicker(m ListPickModel) (string, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	picked, ok := final.(ListPickModel)
	if !ok {
		return "", nil
	}
	return picked.Selected, nil
}

// pickEntry is one selectable row.
type pickEntry struct {
	Name string
	Desc string
}

// ListPickModel is a bubbletea model for choosing one entry from a list.
type ListPickModel struct {
	Title    string
	Entries  []pickEntry
	Cursor   int
	Selected string
}

// NewStrategyPickModel lists the edge strategies.
func NewStrategyPickModel() ListPickModel {
	return ListPickModel{
		Title: "Select Edge Strategy",
		Entries: []pickEntry{
			{edges.NamePlain, "uniform color and width"},
			{edges.NameWeighted, "weight bins colored dark to light"},
			{edges.NameCommunity, "gradients between community colors"},
			{edges.NameOD, "origin-to-destination gradients"},
		},
	}
}

// NewPalettePickModel lists the registered palettes.
func NewPalettePickModel() ListPickModel {
	names := palette.Names()
	sort.Strings(names)
	entries := make([]pickEntry, len(names))
	for i, name := range names {
		entries[i] = pickEntry{Name: name}
	}
	return ListPickModel{Title: "Select Palette", Entries: entries}
}

func (m ListPickModel) Init() tea.Cmd {
	return nil
}

func (m ListPickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Entries[m.Cursor].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ListPickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, entry := range m.Entries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := cursor + entry.Name
		if entry.Desc != "" {
			line = fmt.Sprintf("%s%-20s %s", cursor, entry.Name, listDimStyle.Render(entry.Desc))
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
