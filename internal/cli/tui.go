package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pont-us/sedlog-ffq/pkg/config"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SheetListModel - Interactive sheet selection
// =============================================================================

// SheetListModel is the bubbletea model for choosing which sheets to render.
type SheetListModel struct {
	Sheets   []config.Sheet
	Cursor   int
	Checked  map[int]bool
	Done     bool
	Canceled bool
}

// NewSheetListModel creates a sheet list with every sheet checked.
func NewSheetListModel(sheets []config.Sheet) SheetListModel {
	checked := make(map[int]bool, len(sheets))
	for i := range sheets {
		checked[i] = true
	}
	return SheetListModel{Sheets: sheets, Checked: checked}
}

func (m SheetListModel) Init() tea.Cmd {
	return nil
}

func (m SheetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sheets)-1 {
				m.Cursor++
			}
		case " ", "x":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			all := len(m.Selected()) < len(m.Sheets)
			for i := range m.Sheets {
				m.Checked[i] = all
			}
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// Selected returns the names of the checked sheets in definition order.
func (m SheetListModel) Selected() []string {
	var names []string
	for i, s := range m.Sheets {
		if m.Checked[i] {
			names = append(names, s.Name)
		}
	}
	return names
}

func (m SheetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sheets"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ render  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Sheets))
	for i, s := range m.Sheets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}
		pages := s.Pages()
		span := ""
		if len(pages) > 0 {
			span = fmt.Sprintf("%g–%g", pages[0].Bottom, pages[len(pages)-1].Top)
		}
		rows = append(rows, []string{cursor + box, s.Name, fmt.Sprint(len(pages)), span, fmt.Sprintf("%g", s.Scale)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Sheet", "Pages", "Span", "Scale").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			if !m.Checked[row] {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d of %d selected", len(m.Selected()), len(m.Sheets))))

	return b.String()
}

// pickSheets runs the sheet list and returns the chosen names. A canceled
// selection returns no sheets.
func pickSheets(cfg *config.Config) ([]string, error) {
	final, err := tea.NewProgram(NewSheetListModel(cfg.Sheets)).Run()
	if err != nil {
		return nil, fmt.Errorf("sheet selection: %w", err)
	}
	m := final.(SheetListModel)
	if m.Canceled {
		return nil, nil
	}
	return m.Selected(), nil
}
