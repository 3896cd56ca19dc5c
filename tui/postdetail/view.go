package postdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

const indentWidth = 4

// View renders the detail view.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render(domain.AppTitle))
	b.WriteString("  ")
	b.WriteString(common.SubtitleStyle.Render(fmt.Sprintf("Post #%d", m.postID)))
	b.WriteString("\n\n")

	switch m.phase {
	case loadingPhase:
		b.WriteString(m.spinner.View() + " Loading post...")
		b.WriteString("\n")
		b.WriteString(common.StatusBarStyle.Render(common.HelpLine(m.keys.Back)))
		return b.String()
	case erroredPhase:
		b.WriteString(common.ErrorStyle.Render(domain.UserMessage(m.err)))
		b.WriteString("\n")
		b.WriteString(common.StatusBarStyle.Render(common.HelpLine(m.keys.Refresh, m.keys.Back)))
		return b.String()
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// footerHeight is the number of lines View adds below the viewport.
func (m Model) footerHeight() int {
	return lipgloss.Height(m.renderFooter())
}

func (m Model) renderFooter() string {
	var b strings.Builder
	switch m.mode {
	case formMode:
		b.WriteString(common.HeaderStyle.Render(formHeading(m.target)))
		b.WriteString("\n")
		b.WriteString(m.form.View())
		if m.formErr != nil {
			b.WriteString("\n")
			b.WriteString(common.ErrorStyle.Render(domain.UserMessage(m.formErr)))
		}
	case confirmCommentDelete:
		b.WriteString(common.ConfirmStyle.Render("Delete this comment? Replies stay. (y/n)"))
	case confirmPostDelete:
		b.WriteString(common.ConfirmStyle.Render("Delete this post and all its comments? (y/n)"))
	default:
		if m.notice != "" {
			b.WriteString(common.SuccessStyle.Render(m.notice))
		}
	}
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(m.helpText()))
	return b.String()
}

func formHeading(t formTarget) string {
	switch {
	case t.editingID != 0:
		return fmt.Sprintf("Edit comment #%d", t.editingID)
	case t.parentID != nil:
		return fmt.Sprintf("Reply to #%d", *t.parentID)
	}
	return "New comment"
}

func (m Model) helpText() string {
	k := m.keys
	if m.busy {
		return "Working..."
	}
	switch m.mode {
	case formMode:
		return common.HelpLine(k.Submit, k.OpenEditor, k.Back)
	case confirmCommentDelete, confirmPostDelete:
		return common.HelpLine(k.Confirm, k.Cancel)
	}
	line, hasComment := m.selected()
	k.Reply.SetEnabled(hasComment && line.Depth == 0)
	k.EditComment.SetEnabled(hasComment)
	k.DeleteComment.SetEnabled(hasComment)
	return common.HelpLine(k.Up, k.Down, k.Comment, k.Reply, k.EditComment, k.DeleteComment,
		k.Like, k.Dislike, k.EditPost, k.DeletePost, k.Refresh, k.Back)
}

// renderBody draws the post card and the comment thread. It also returns
// the first and last line of the selected comment for scrolling.
func (m Model) renderBody() (string, int, int) {
	width := max(m.width-2, 30)
	var lines []string

	card := common.PostTitleStyle.Render(m.detail.Title) + "\n" +
		common.MetaStyle.Render(fmt.Sprintf("views %d • likes %d", m.detail.ViewCount, m.detail.LikeCount)) + "\n\n" +
		common.ContentStyle.Render(common.Wrap(m.detail.Contents, width-4, 0))
	lines = append(lines, strings.Split(common.CardStyle.Width(width-2).Render(card), "\n")...)
	lines = append(lines, "", common.HeaderStyle.Render(fmt.Sprintf("Comments (%d)", len(m.flat))))

	if len(m.lines) == 0 {
		lines = append(lines, common.MetaStyle.Render("No comments yet. Press c to write one."))
		return strings.Join(lines, "\n"), -1, -1
	}

	selStart, selEnd := -1, -1
	for i, ln := range m.lines {
		block := renderThreadLine(ln, width, i == m.cursor)
		if i == m.cursor {
			selStart = len(lines)
		}
		lines = append(lines, strings.Split(block, "\n")...)
		if i == m.cursor {
			selEnd = len(lines) - 1
		}
	}
	return strings.Join(lines, "\n"), selStart, selEnd
}

func renderThreadLine(ln domain.ThreadLine, width int, selected bool) string {
	indent := strings.Repeat(" ", ln.Depth*indentWidth)
	marker := "• "
	if ln.Depth > 0 {
		marker = "└ "
	}
	if selected {
		marker = "▸ "
	}

	head := common.MetaStyle.Render(fmt.Sprintf("#%d", ln.Comment.ID))
	if ln.Comment.Author != "" {
		head = common.AuthorStyle.Render(ln.Comment.Author) + " " + head
	}
	if !ln.Comment.CreatedAt.IsZero() {
		head += " " + common.MetaStyle.Render(ln.Comment.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	bodyWidth := max(width-len(indent)-2, 12)
	body := common.Wrap(ln.Comment.Contents, bodyWidth, 6)
	if selected {
		body = common.SelectedRowStyle.Render(body)
	} else {
		body = common.ContentStyle.Render(body)
	}

	out := []string{indent + marker + head}
	for _, bl := range strings.Split(body, "\n") {
		out = append(out, indent+"  "+bl)
	}
	if ln.Hidden > 0 {
		noun := "replies"
		if ln.Hidden == 1 {
			noun = "reply"
		}
		out = append(out, indent+"  "+common.MetaStyle.Render(fmt.Sprintf("↳ %d more %s not shown", ln.Hidden, noun)))
	}
	return strings.Join(out, "\n")
}

// syncViewport resizes the viewport to the space left by the header and
// footer and scrolls so the selected comment is visible.
func (m *Model) syncViewport() {
	if m.phase != readyPhase {
		return
	}
	const headerLines = 4
	m.viewport.Width = max(m.width, 20)
	m.viewport.Height = max(m.height-headerLines-m.footerHeight(), 3)

	content, selStart, selEnd := m.renderBody()
	m.viewport.SetContent(content)
	if selStart < 0 {
		return
	}
	if selStart < m.viewport.YOffset {
		m.viewport.SetYOffset(selStart)
	}
	bottom := m.viewport.YOffset + m.viewport.Height - 1
	if selEnd > bottom {
		m.viewport.SetYOffset(min(selStart, selEnd-m.viewport.Height+1))
	}
}
