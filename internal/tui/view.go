// Package tui is an interactive terminal browser for solved fields:
// an ASCII heatmap with a movable cursor reporting the exact node
// value under it.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fieldsim/internal/field"
)

const (
	maxCols = 78
	maxRows = 40
)

var shadeRamp = []rune(" .:-=+*#%@")

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	mapStyle    = lipgloss.NewStyle().Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model is the bubbletea model browsing one field.
type Model struct {
	runID    string
	f        *field.Field
	min, max float64

	cursorI, cursorJ int
	stepI, stepJ     int
}

func NewModel(runID string, f *field.Field) Model {
	g := f.Grid()
	stepI := (g.Nx + maxCols - 1) / maxCols
	if stepI < 1 {
		stepI = 1
	}
	stepJ := (g.Ny + maxRows - 1) / maxRows
	if stepJ < 1 {
		stepJ = 1
	}
	return Model{
		runID: runID,
		f:     f,
		min:   f.Min(),
		max:   f.Max(),
		stepI: stepI,
		stepJ: stepJ,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	g := m.f.Grid()
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.cursorI -= m.stepI
	case "right", "l":
		m.cursorI += m.stepI
	case "up", "k":
		m.cursorJ -= m.stepJ
	case "down", "j":
		m.cursorJ += m.stepJ
	case "home", "g":
		m.cursorI, m.cursorJ = 0, 0
	}

	m.cursorI = clamp(m.cursorI, 0, g.Nx-1)
	m.cursorJ = clamp(m.cursorJ, 0, g.Ny-1)
	return m, nil
}

func (m Model) View() string {
	g := m.f.Grid()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("fieldsim: %s", m.runID)))
	b.WriteString("\n")

	var rows []string
	for j := 0; j < g.Ny; j += m.stepJ {
		var row strings.Builder
		for i := 0; i < g.Nx; i += m.stepI {
			if m.onCursorCell(i, j) {
				row.WriteString(cursorStyle.Render("+"))
				continue
			}
			row.WriteRune(m.shade(m.f.At(i, j)))
		}
		rows = append(rows, row.String())
	}
	b.WriteString(mapStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("node") + valueStyle.Render(fmt.Sprintf("(%d, %d)", m.cursorI, m.cursorJ)) + "\n")
	b.WriteString(labelStyle.Render("coord") + valueStyle.Render(fmt.Sprintf("(%.4g, %.4g)", g.X(m.cursorI), g.Y(m.cursorJ))) + "\n")
	b.WriteString(labelStyle.Render("value") + valueStyle.Render(fmt.Sprintf("%.8g", m.f.At(m.cursorI, m.cursorJ))) + "\n")
	b.WriteString(labelStyle.Render("range") + valueStyle.Render(fmt.Sprintf("[%.6g, %.6g]", m.min, m.max)) + "\n")

	b.WriteString(helpStyle.Render("arrows/hjkl move · g home · q quit"))
	return b.String()
}

// onCursorCell reports whether the rendered cell starting at (i,j)
// covers the cursor, accounting for the downsampling stride.
func (m Model) onCursorCell(i, j int) bool {
	return m.cursorI/m.stepI == i/m.stepI && m.cursorJ/m.stepJ == j/m.stepJ
}

func (m Model) shade(v float64) rune {
	if m.max == m.min {
		return shadeRamp[0]
	}
	idx := int((v - m.min) / (m.max - m.min) * float64(len(shadeRamp)-1))
	idx = clamp(idx, 0, len(shadeRamp)-1)
	return shadeRamp[idx]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
