package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/tui/common"
)

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	heading := "New post"
	if m.IsEdit() {
		heading = fmt.Sprintf("Edit post #%d", m.postID)
	}
	b.WriteString(common.AppTitleStyle.Render(domain.AppTitle))
	b.WriteString("  ")
	b.WriteString(common.SubtitleStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(common.HeaderStyle.Render("Title "))
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(common.ErrorStyle.Render(domain.UserMessage(m.err)))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("%s • %d/%d chars",
		common.HelpLine(m.keys.Submit, m.keys.NextField, m.keys.OpenEditor, m.keys.Back),
		len([]rune(m.body.Value())), bodyLimit)
	if m.submitting {
		status = "Saving..."
	}
	b.WriteString(common.StatusBarStyle.Render(status))
	return b.String()
}
