package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/graph-master/internal/registry"
	"github.com/vovakirdan/graph-master/internal/storage"
)

const (
	maxScores   = 100 // Max scores to load
	maxRecent   = 50  // Max attempts on the recent tab
	chromeRows  = 9   // title, tabs, summary, borders and help
	minTableRow = 3
)

// scoreTab is one page of the scoreboard.
type scoreTab int

const (
	tabScores scoreTab = iota
	tabQuestions
	tabRecent
	tabCount
)

var tabNames = [tabCount]string{"Top scores", "By question", "Recent"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Prev, k.Next, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev variant")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next variant")),
		NextTab: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch page")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows stored results per variant: best sessions,
// accuracy by question kind, and the latest attempts.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	variant   int
	tab       scoreTab
	store     *storage.Store
	scores    []storage.ScoreEntry
	kinds     []storage.KindStats
	recent    []storage.Attempt
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.load()
	return m
}

// load reads everything the scoreboard shows for the current variant.
// A missing store or a failing query leaves that part empty.
func (m *ScoreboardModel) load() {
	m.scores, m.kinds, m.recent, m.stats = nil, nil, nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.variant].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if kinds, err := m.store.KindStats(id); err == nil {
			m.kinds = kinds
		}
		if recent, err := m.store.RecentAttempts(id, maxRecent); err == nil {
			m.recent = recent
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.rebuildTable()
}

// rebuildTable lays the current tab's rows out for the window width.
func (m *ScoreboardModel) rebuildTable() {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeRows, minTableRow)),
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

// columns sizes the current tab's columns; the last one takes what is left.
func (m ScoreboardModel) columns() []table.Column {
	var cols []table.Column
	switch m.tab {
	case tabQuestions:
		cols = []table.Column{
			{Title: "Question", Width: 10},
			{Title: "Tries", Width: 6},
			{Title: "Correct", Width: 8},
			{Title: "Accuracy", Width: 9},
			{Title: "Avg time", Width: 9},
		}
	case tabRecent:
		cols = []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Question", Width: 10},
			{Title: "Verdict", Width: 10},
			{Title: "Time", Width: 7},
			{Title: "When", Width: 13},
		}
	default:
		cols = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 13},
		}
	}

	used := 0
	for _, c := range cols[:len(cols)-1] {
		used += c.Width + 2
	}
	last := &cols[len(cols)-1]
	last.Width = max(last.Width, min(m.width-8-used, 20))
	return cols
}

func (m ScoreboardModel) rows() []table.Row {
	var rows []table.Row
	switch m.tab {
	case tabQuestions:
		for _, k := range m.kinds {
			rows = append(rows, table.Row{
				k.Kind,
				fmt.Sprint(k.Attempts),
				fmt.Sprint(k.Correct),
				fmt.Sprintf("%.0f%%", k.Accuracy()),
				fmt.Sprintf("%.1fs", k.AvgElapsed.Seconds()),
			})
		}
	case tabRecent:
		for _, a := range m.recent {
			rows = append(rows, table.Row{
				fmt.Sprint(a.Level),
				a.Kind,
				a.Verdict,
				fmt.Sprintf("%.1fs", a.Elapsed.Seconds()),
				a.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprint(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	return rows
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

		case key.Matches(msg, m.keys.Next):
			m.selectVariant(m.variant + 1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.selectVariant(m.variant - 1)
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			step := scoreTab(1)
			if msg.String() == "shift+tab" {
				step = tabCount - 1
			}
			m.tab = (m.tab + step) % tabCount
			m.rebuildTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectVariant moves to variant i, wrapping around the list.
func (m *ScoreboardModel) selectVariant(i int) {
	if len(m.variants) == 0 {
		return
	}
	m.variant = (i + len(m.variants)) % len(m.variants)
	m.load()
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "SCOREBOARD"
	if len(m.variants) > 0 {
		title = fmt.Sprintf("SCOREBOARD · < %s > %d/%d",
			m.variants[m.variant].Title, m.variant+1, len(m.variants))
	}

	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		if scoreTab(i) == m.tab {
			tabs[i] = boardActiveTab.Render(name)
		} else {
			tabs[i] = boardTabStyle.Render(name)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.summary()), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardBoxStyle.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// summary is the one-line session overview under the tabs.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No finished sessions"
	}
	s := fmt.Sprintf("%d sessions, best %d, average %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		s += ", last " + m.stats.LastPlayed.Format("Jan 02")
	}
	return s
}

// body is the current tab's table, or a hint when it has no rows.
func (m ScoreboardModel) body() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}
	empty := map[scoreTab]string{
		tabScores:    "No sessions recorded yet.\nFinish a session to set a high score!",
		tabQuestions: "No answers checked yet.",
		tabRecent:    "No answers checked yet.",
	}[m.tab]
	return boardDimStyle.Italic(true).Padding(2, 4).Render(empty)
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
