package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AKGMI/BlastGame/internal/core"
	"github.com/AKGMI/BlastGame/internal/games/blast/levels"
)

// LevelMenuModel lets users choose the campaign level to start from.
type LevelMenuModel struct {
	levels    []levels.Level
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a level picker over the given levels.
func NewLevelMenuModel(lvls []levels.Level, width, height int) LevelMenuModel {
	return LevelMenuModel{
		levels:    lvls,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.choosing = false
			m.selected = m.levels[m.cursor].ID
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-14s %dx%d  target %-5d moves %d",
			cursor, i+1, lvl.Name, lvl.Rows, lvl.Cols, lvl.Rules.TargetScore, lvl.Rules.TotalMoves)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.levels) == 0 {
		b.WriteString(centerText("No levels found.", m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level ID, or "" if still choosing.
func (m LevelMenuModel) Selected() string {
	if m.choosing {
		return ""
	}
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelMenu runs the level picker and returns the chosen level ID.
// An empty ID means the user backed out or quit.
func RunLevelMenu(lvls []levels.Level, cfg core.RuntimeConfig) (string, error) {
	model := NewLevelMenuModel(lvls, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return "", nil
	}

	return m.Selected(), nil
}
