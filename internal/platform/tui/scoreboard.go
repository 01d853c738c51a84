package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AKGMI/BlastGame/internal/registry"
	"github.com/AKGMI/BlastGame/internal/storage"
)

const (
	scoreboardTopScores = 100
	scoreboardRounds    = 50
	scoreboardChrome    = 9 // title, stats, tabs, borders and help
)

// boardView is one of the tables the scoreboard can show.
type boardView int

const (
	boardViewBest boardView = iota
	boardViewRounds
	boardViewLevels
	boardViewCount
)

func (v boardView) title() string {
	switch v {
	case boardViewRounds:
		return "RECENT ROUNDS"
	case boardViewLevels:
		return "LEVEL PROGRESS"
	default:
		return "BEST SCORES"
	}
}

func (v boardView) columns() []table.Column {
	switch v {
	case boardViewRounds:
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Result", Width: 6},
			{Title: "Score", Width: 11},
			{Title: "Moves", Width: 5},
			{Title: "Shuf", Width: 4},
			{Title: "Boost", Width: 5},
			{Title: "Played", Width: 12},
		}
	case boardViewLevels:
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Best", Width: 11},
			{Title: "Wins", Width: 9},
			{Title: "Fewest moves", Width: 12},
		}
	default:
		return []table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 10},
			{Title: "Played", Width: 16},
		}
	}
}

// scoreboardKeys are the bindings shown in the scoreboard help bar.
type scoreboardKeys struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.NextView, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.NextView},
		{k.Back, k.Quit},
	}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		NextView: key.NewBinding(key.WithKeys("r", "v"), key.WithHelp("r", "switch table")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// levelProgress aggregates the recorded rounds of one campaign level.
type levelProgress struct {
	level     string
	best      int
	target    int
	plays     int
	wins      int
	bestMoves int
}

// campaignProgress groups rounds by level, ordered by level ID.
// Rounds without a level (quick play) are ignored.
func campaignProgress(rounds []storage.RoundEntry) []levelProgress {
	byLevel := make(map[string]*levelProgress)
	for _, r := range rounds {
		if r.Level == "" {
			continue
		}
		p, ok := byLevel[r.Level]
		if !ok {
			p = &levelProgress{level: r.Level}
			byLevel[r.Level] = p
		}
		p.plays++
		if r.Score > p.best {
			p.best = r.Score
		}
		p.target = r.Target
		if r.Won() {
			p.wins++
			if p.bestMoves == 0 || r.MovesUsed < p.bestMoves {
				p.bestMoves = r.MovesUsed
			}
		}
	}

	out := make([]levelProgress, 0, len(byLevel))
	for _, p := range byLevel {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].level < out[j].level })
	return out
}

// ScoreboardModel shows best scores, recent rounds and campaign progress
// for every registered mode.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	view   boardView
	store  *storage.Store
	scores []storage.ScoreEntry
	rounds []storage.RoundEntry
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// load reads the selected mode from the store and rebuilds the table.
// Storage errors leave the affected table empty.
func (m *ScoreboardModel) load() {
	m.scores, m.rounds, m.stats = nil, nil, nil
	if id := m.modeID(); m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, scoreboardTopScores); err == nil {
			m.scores = scores
		}
		if rounds, err := m.store.RecentRounds(id, scoreboardRounds); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.rebuild()
}

// rebuild recreates the table for the current view and size.
func (m *ScoreboardModel) rebuild() {
	t := table.New(
		table.WithColumns(m.view.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

func (m ScoreboardModel) rows() []table.Row {
	const date = "Jan 02 15:04"

	switch m.view {
	case boardViewRounds:
		rows := make([]table.Row, 0, len(m.rounds))
		for _, r := range m.rounds {
			level := r.Level
			if level == "" {
				level = "-"
			}
			rows = append(rows, table.Row{
				level,
				r.Outcome,
				fmt.Sprintf("%d/%d", r.Score, r.Target),
				fmt.Sprint(r.MovesUsed),
				fmt.Sprint(r.ShufflesUsed),
				fmt.Sprint(r.BoostersUsed),
				r.CreatedAt.Format(date),
			})
		}
		return rows

	case boardViewLevels:
		progress := campaignProgress(m.rounds)
		rows := make([]table.Row, 0, len(progress))
		for _, p := range progress {
			moves := "-"
			if p.wins > 0 {
				moves = fmt.Sprint(p.bestMoves)
			}
			rows = append(rows, table.Row{
				p.level,
				fmt.Sprintf("%d/%d", p.best, p.target),
				fmt.Sprintf("%d of %d", p.wins, p.plays),
				moves,
			})
		}
		return rows

	default:
		rows := make([]table.Row, 0, len(m.scores))
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprint(i + 1),
				fmt.Sprint(s.Score),
				s.CreatedAt.Format(date),
			})
		}
		return rows
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % boardViewCount
			m.rebuild()
			return m, nil

		case key.Matches(msg, m.keys.NextMode):
			m.shiftMode(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.shiftMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) shiftMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.mode].Title
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.modeTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel.Render(m.tableView())))
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// modeTabs lists the modes with the selected one bracketed, or only the
// selected one when the full list does not fit.
func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = "[" + g.Title + "]"
		} else {
			tabs[i] = " " + g.Title + " "
		}
	}
	line := strings.Join(tabs, " ")
	if len(line) > m.width-4 && len(m.modes) > 0 {
		line = fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

// statsLine summarizes the selected mode's totals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || (m.stats.GamesCount == 0 && m.stats.Wins+m.stats.Losses == 0) {
		return ""
	}
	return fmt.Sprintf("games %d  best %d  avg %.0f  won %d/%d (%.0f%%)",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.Wins, m.stats.Wins+m.stats.Losses, m.stats.WinRate()*100)
}

func (m ScoreboardModel) tableView() string {
	if len(m.table.Rows()) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("Nothing recorded yet.\nFinish a round to fill this table.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
