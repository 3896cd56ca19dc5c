package postlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

const (
	idColWidth       = 6
	commentsColWidth = 9
	viewsColWidth    = 7
	minTitleWidth    = 16
)

// View renders the list view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render(domain.AppTitle))
	b.WriteString("  ")
	b.WriteString(common.SubtitleStyle.Render(m.subtitle()))
	b.WriteString("\n\n")

	if bar := m.renderSearchBar(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n\n")
	}

	switch m.state.Phase {
	case PhaseIdle, PhaseLoading:
		b.WriteString(m.spinner.View() + " Loading...")
	case PhaseErrored:
		b.WriteString(common.ErrorStyle.Render(domain.UserMessage(m.state.Err)))
		b.WriteString("\n")
		b.WriteString(common.MetaStyle.Render("r: retry"))
	default:
		if len(m.state.Posts) == 0 {
			b.WriteString(common.MetaStyle.Render(m.emptyText()))
		} else {
			b.WriteString(m.renderTable())
		}
	}

	if pager := renderPagination(m.state.Window()); pager != "" && m.state.Phase == PhaseReady {
		b.WriteString("\n\n")
		b.WriteString(pager)
	}

	if m.mode == jumpMode {
		b.WriteString("\n\n")
		b.WriteString(m.jump.View())
		b.WriteString(common.MetaStyle.Render(fmt.Sprintf("  (1-%d)", m.state.PageState.TotalPages)))
		if m.jumpErr != "" {
			b.WriteString("  " + common.ErrorStyle.Render(m.jumpErr))
		}
	}

	if m.notice != "" {
		b.WriteString("\n\n" + common.ErrorStyle.Render(m.notice))
	}

	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(m.helpText()))
	return b.String()
}

func (m Model) subtitle() string {
	if m.state.Searching() {
		return fmt.Sprintf("Search: %q in %s", m.state.Query, m.state.SearchType.Label())
	}
	return "Posts"
}

func (m Model) emptyText() string {
	if m.state.Searching() {
		return "No posts match your search."
	}
	return "No posts yet. Press n to write the first one."
}

func (m Model) renderSearchBar() string {
	if m.mode != searchMode {
		return ""
	}
	kind := common.PageBlockStyle.Render("[" + m.state.SearchType.Label() + "]")
	return kind + " " + m.search.View()
}

func (m Model) titleWidth() int {
	return max(m.width-idColWidth-commentsColWidth-viewsColWidth-6, minTitleWidth)
}

func (m Model) renderTable() string {
	tw := m.titleWidth()
	header := fmt.Sprintf("  %s %s %s %s",
		common.PadRight("ID", idColWidth),
		common.PadRight("Title", tw),
		fmt.Sprintf("%*s", commentsColWidth, "Comments"),
		fmt.Sprintf("%*s", viewsColWidth, "Views"),
	)

	rows := make([]string, 0, len(m.state.Posts)+1)
	rows = append(rows, common.HeaderStyle.Render(header))
	for i, p := range m.state.Posts {
		line := fmt.Sprintf("%s %s %*d %*d",
			common.PadRight(strconv.FormatInt(p.PostID, 10), idColWidth),
			common.PadRight(common.Truncate(p.PostTitle, tw), tw),
			commentsColWidth, p.CommentCount,
			viewsColWidth, p.ViewCount,
		)
		if i == m.cursor {
			rows = append(rows, common.SelectedRowStyle.Render("▸ "+line))
			continue
		}
		rows = append(rows, "  "+line)
	}
	return strings.Join(rows, "\n")
}

// renderPagination draws the block controls and numbered buttons. Buttons
// flagged with a cap get a rounded edge so every button group looks closed.
func renderPagination(w domain.PageWindow) string {
	if !w.Visible() {
		return ""
	}
	parts := make([]string, 0, 3)
	if w.HasPrevBlock() {
		parts = append(parts, common.PageBlockStyle.Render("«"))
	}

	var buttons strings.Builder
	for _, btn := range w.Buttons() {
		style := common.PageButtonStyle
		capStyle := common.PageCapStyle
		if btn.Current {
			style = common.PageCurrentStyle
			capStyle = capStyle.Foreground(common.PageCurrentStyle.GetBackground())
		}
		if btn.CapStart {
			buttons.WriteString(capStyle.Render("▐"))
		}
		buttons.WriteString(style.Render(strconv.Itoa(btn.Page)))
		if btn.CapEnd {
			buttons.WriteString(capStyle.Render("▌"))
		}
	}
	parts = append(parts, buttons.String())

	if w.HasNextBlock() {
		parts = append(parts, common.PageBlockStyle.Render("»"))
	}
	ps := w.State()
	parts = append(parts, common.MetaStyle.Render(fmt.Sprintf(" page %d/%d", ps.CurrentPage, ps.TotalPages)))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) helpText() string {
	k := m.keys
	switch m.mode {
	case searchMode:
		return "enter: search • tab: search in " + m.state.SearchType.Next().Label() + " • esc: cancel"
	case jumpMode:
		return "enter: go • esc: cancel"
	}
	k.JumpPage.SetEnabled(m.state.Window().ShowJump())
	k.Back.SetEnabled(m.state.Searching())
	k.Back.SetHelp("esc", "clear search")
	return common.HelpLine(k.Up, k.Down, k.Open, k.PrevPage, k.NextPage, k.PrevBlock, k.NextBlock,
		k.JumpPage, k.Search, k.Back, k.NewPost, k.Rankings, k.Refresh, k.Quit)
}
