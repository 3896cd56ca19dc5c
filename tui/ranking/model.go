package ranking

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/CrestNiraj12/terminalboard/app"
	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

// Kinds are the panels in display order.
var Kinds = []domain.RankingKind{domain.RankingViews, domain.RankingLikes}

// LoadedMsg carries both rankings.
type LoadedMsg struct {
	Items map[domain.RankingKind][]domain.RankingItem
}

// ErrorMsg is sent when either ranking fails to load.
type ErrorMsg struct {
	Err error
}

// OpenPostMsg asks the root app to show a ranked post.
type OpenPostMsg struct {
	ID int64
}

// BackMsg asks the root app to return to the list.
type BackMsg struct{}

// Model shows the top posts by views and by likes side by side.
type Model struct {
	rankings app.RankingService
	keys     common.KeyMap
	spinner  spinner.Model
	loading  bool
	err      error
	items    map[domain.RankingKind][]domain.RankingItem
	panel    int
	cursor   int
	width    int
}

func New(rankings app.RankingService) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7DC4E4"))
	return Model{
		rankings: rankings,
		keys:     common.DefaultKeyMap(),
		spinner:  s,
		loading:  true,
		items:    map[domain.RankingKind][]domain.RankingItem{},
		width:    100,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchAll(m.rankings))
}

// fetchAll loads every ranking concurrently and fails as a whole.
func fetchAll(svc app.RankingService) tea.Cmd {
	return func() tea.Msg {
		results := make([][]domain.RankingItem, len(Kinds))
		g, ctx := errgroup.WithContext(context.Background())
		for i, kind := range Kinds {
			g.Go(func() error {
				items, err := svc.Top(ctx, kind)
				if err != nil {
					return err
				}
				results[i] = items
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return ErrorMsg{Err: err}
		}
		out := make(map[domain.RankingKind][]domain.RankingItem, len(Kinds))
		for i, kind := range Kinds {
			out[kind] = domain.TopRanking(results[i])
		}
		return LoadedMsg{Items: out}
	}
}

func (m Model) current() []domain.RankingItem {
	return m.items[Kinds[m.panel]]
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		m.loading = false
		m.err = nil
		m.items = msg.Items
		m.cursor = 0
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, fetchAll(m.rankings))
		}
		if m.loading || m.err != nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.NextPage):
			m.panel = (m.panel + 1) % len(Kinds)
			m.cursor = 0
		case key.Matches(msg, m.keys.PrevPage):
			m.panel = (m.panel + len(Kinds) - 1) % len(Kinds)
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.current())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			items := m.current()
			if m.cursor < len(items) {
				id := items[m.cursor].PostID
				return m, func() tea.Msg { return OpenPostMsg{ID: id} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render(domain.AppTitle))
	b.WriteString("  ")
	b.WriteString(common.SubtitleStyle.Render("Rankings"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading rankings...")
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render(domain.UserMessage(m.err)))
	default:
		panelWidth := max((m.width-6)/len(Kinds), 24)
		panels := make([]string, 0, len(Kinds))
		for i, kind := range Kinds {
			panels = append(panels, m.renderPanel(kind, i == m.panel, panelWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}

	b.WriteString("\n")
	k := m.keys
	k.NextField.SetHelp("tab", "switch panel")
	b.WriteString(common.StatusBarStyle.Render(common.HelpLine(k.Up, k.Down, k.NextField, k.Open, k.Refresh, k.Back)))
	return b.String()
}

func (m Model) renderPanel(kind domain.RankingKind, active bool, width int) string {
	items := m.items[kind]
	lines := []string{common.HeaderStyle.Render(kind.Title())}
	if len(items) == 0 {
		lines = append(lines, common.MetaStyle.Render("Nothing ranked yet."))
	}
	titleWidth := max(width-14, 8)
	for i, it := range items {
		row := fmt.Sprintf("%d. %s %s", i+1,
			common.PadRight(common.Truncate(it.PostTitle, titleWidth), titleWidth),
			common.MetaStyle.Render(fmt.Sprintf("%5d", it.Count)))
		if active && i == m.cursor {
			row = common.SelectedRowStyle.Render(row)
		}
		lines = append(lines, row)
	}
	style := common.CardStyle
	if active {
		style = common.PanelStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
