package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// maxRuns bounds how many runs one board loads.
const maxRuns = 100

// boardMode selects which runs the board lists.
type boardMode int

const (
	boardBest   boardMode = iota // Fastest solved runs
	boardRecent                  // Latest runs of every variant, solved or not
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// BoardKeys are the scoreboard bindings shown in its help line.
type BoardKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Mode   key.Binding
	Scroll key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k BoardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Mode, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k BoardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Mode}, {k.Scroll, k.Back, k.Quit}}
}

func defaultBoardKeys() BoardKeys {
	return BoardKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next maze")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev maze")),
		Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "best/recent")),
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows best times per maze variant, or the latest runs.
type ScoreboardModel struct {
	store    *storage.Store
	variants []registry.GameInfo
	current  int
	mode     boardMode
	runs     []storage.Run
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     BoardKeys
	width    int
	height   int
	back     bool
	quitting bool
}

// NewScoreboardModel creates a scoreboard sized to the terminal.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		help:     help.New(),
		keys:     defaultBoardKeys(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = newRunTable(width, height)
	m.reload()
	return m
}

// newRunTable builds the runs table. Spare width goes to the player column.
func newRunTable(width, height int) table.Model {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Time", Width: 8},
		{Title: "Maze", Width: 7},
		{Title: "Bumps", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "When", Width: 12},
	}
	if spare := width - 62; spare > 0 {
		cols[4].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).BorderBottom(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	t.SetStyles(st)
	return t
}

// reload fetches the runs for the current variant and mode.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		var err error
		switch m.mode {
		case boardBest:
			m.runs, err = m.store.BestRuns(id, maxRuns)
		case boardRecent:
			m.runs, err = m.store.RecentRuns(maxRuns)
		}
		if err != nil {
			m.runs = nil
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(m.width, m.height)
		m.table.SetRows(runRows(m.runs))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.shift(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			m.mode = 1 - m.mode
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// shift moves to another variant, wrapping around.
func (m *ScoreboardModel) shift(d int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+d)%n + n) % n
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	title := "BEST TIMES"
	if m.mode == boardRecent {
		title = "RECENT RUNS"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardTitleStyle.Render(title)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.tabs()))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 4).
			Render("No solved mazes yet.\nEscape one to set a best time!")
	}
	b.WriteString(boardFrameStyle.Render(body))
	b.WriteString("\n")

	if s := m.summary(); s != "" {
		b.WriteString(boardDimStyle.Render(s))
		b.WriteString("\n")
	}
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the variant selector. Narrow terminals get only the current one.
func (m ScoreboardModel) tabs() string {
	if len(m.variants) == 0 {
		return ""
	}
	parts := make([]string, len(m.variants))
	width := 0
	for i, v := range m.variants {
		style := boardTabStyle
		if i == m.current {
			style = boardActiveTab
		}
		parts[i] = style.Render(v.Title)
		width += lipgloss.Width(parts[i]) + 1
	}
	if width > m.width-2 {
		return fmt.Sprintf("< %s >", boardActiveTab.Render(m.variants[m.current].Title))
	}
	return strings.Join(parts, " ")
}

// summary is the stats line under the table.
func (m ScoreboardModel) summary() string {
	s := m.stats
	if s == nil || s.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("escaped %d of %d  best %s  average %s  %d bumps",
		s.Wins, s.Runs, formatDuration(s.BestTime), formatDuration(s.AvgTime), s.TotalBumps)
}

// runRows formats runs as ranked table rows. Unsolved runs show no time.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		t := formatDuration(r.Duration)
		if !r.Won {
			t = "--"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			t,
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			fmt.Sprintf("%d", r.Bumps),
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// IsGoingBack returns true if the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves.
// Returns true if the user wants the menu back.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
