package common

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#7DC4E4")
	muted  = lipgloss.Color("#6E738D")

	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(1, 2, 0, 1)

	// SubtitleStyle styles the view name next to the title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// HeaderStyle styles table headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(muted).
			Bold(true)

	// PostTitleStyle styles post titles in cards and rows.
	PostTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// ContentStyle styles post and comment bodies.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// MetaStyle styles counters and ids.
	MetaStyle = lipgloss.NewStyle().
			Foreground(muted)

	// AuthorStyle styles comment authors.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	// SelectedRowStyle highlights the row under the cursor.
	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#24273A")).
				Background(accent).
				Bold(true)

	// CardStyle frames the post body in the detail view.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// PanelStyle frames ranking panels.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(1, 0, 0, 0)

	// ConfirmStyle styles y/n prompts.
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true).
			Padding(0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// PageButtonStyle is a numbered pagination button.
	PageButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5")).
			Background(lipgloss.Color("#363A4F")).
			Padding(0, 1)

	// PageCurrentStyle is the button of the current page.
	PageCurrentStyle = PageButtonStyle.
				Foreground(lipgloss.Color("#24273A")).
				Background(accent).
				Bold(true)

	// PageCapStyle draws the rounded corner of a button group.
	PageCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#363A4F"))

	// PageBlockStyle is the « / » block control.
	PageBlockStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)
)
