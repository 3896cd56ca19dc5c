package tui

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalboard/app"
	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/infra/config"
	"github.com/CrestNiraj12/terminalboard/tui/common"
	"github.com/CrestNiraj12/terminalboard/tui/compose"
	"github.com/CrestNiraj12/terminalboard/tui/postdetail"
	"github.com/CrestNiraj12/terminalboard/tui/postlist"
	"github.com/CrestNiraj12/terminalboard/tui/ranking"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts      app.PostService
	Comments   app.CommentService
	Rankings   app.RankingService
	Editor     app.Editor
	Log        logrus.FieldLogger
	SearchType domain.SearchType
	StatePath  string
}

type activeView int

const (
	listView activeView = iota
	detailView
	composeView
	rankingView
	recoveryView
)

// crashState is shared by all copies of App so a panic caught in View can
// switch the next Update to the recovery screen.
type crashState struct {
	reason string
}

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	active  activeView
	list    postlist.Model
	detail  postdetail.Model
	compose compose.Model
	ranking ranking.Model
	keys    common.KeyMap
	status  string // transient status message, e.g. "Post created."
	crash   *crashState
	size    tea.WindowSizeMsg
	// composeReturn is where a cancelled form goes back to.
	composeReturn activeView
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	if deps.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		deps.Log = l
	}
	return App{
		deps:   deps,
		active: listView,
		list:   postlist.New(deps.Posts, deps.SearchType),
		keys:   common.DefaultKeyMap(),
		crash:  &crashState{},
		size:   tea.WindowSizeMsg{Width: 100, Height: 30},
	}
}

// Init loads the first list page.
func (a App) Init() tea.Cmd {
	return a.list.Init()
}

// Update routes messages. Any panic below this point is caught and turns
// into the recovery screen instead of killing the program.
func (a App) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			model, cmd = a.recovered(r), nil
		}
	}()
	if a.crash.reason != "" && a.active != recoveryView {
		a.active = recoveryView
	}
	return a.update(msg)
}

func (a App) recovered(r any) App {
	a.deps.Log.WithFields(logrus.Fields{
		"panic": fmt.Sprint(r),
		"stack": string(debug.Stack()),
	}).Error("recovered from panic")
	a.crash.reason = fmt.Sprint(r)
	a.active = recoveryView
	a.status = ""
	return a
}

func (a App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = msg
		a.activate(a.active)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == recoveryView {
			return a.updateRecovery(msg)
		}
		if a.active == listView && !a.list.Capturing() && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		a.status = ""

	// The list keeps its pending fetch when another view is opened, so its
	// results and spinner ticks reach it whatever view is active.
	case postlist.PageLoadedMsg, postlist.PageErrorMsg:
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		if a.active != listView {
			var listCmd tea.Cmd
			a.list, listCmd = a.list.Update(msg)
			next, cmd := a.delegate(msg)
			return next, tea.Batch(listCmd, cmd)
		}

	case postlist.OpenPostMsg:
		return a.openDetail(msg.ID)

	case ranking.OpenPostMsg:
		return a.openDetail(msg.ID)

	case postlist.NewPostMsg:
		a.compose = compose.NewPost(a.deps.Posts, a.deps.Editor)
		a.composeReturn = listView
		a.activate(composeView)
		return a, a.compose.Init()

	case postlist.OpenRankingsMsg:
		a.ranking = ranking.New(a.deps.Rankings)
		a.activate(rankingView)
		return a, a.ranking.Init()

	case postlist.SearchTypeChangedMsg:
		return a, a.saveSearchType(msg.Type)

	case postdetail.BackMsg:
		a.activate(listView)
		if msg.Dirty {
			var cmd tea.Cmd
			a.list, cmd = a.list.Reload()
			return a, cmd
		}
		return a, nil

	case postdetail.EditPostMsg:
		a.compose = compose.EditPost(a.deps.Posts, a.deps.Editor, msg.Post)
		a.composeReturn = detailView
		a.activate(composeView)
		return a, a.compose.Init()

	case postdetail.PostDeletedMsg:
		a.activate(listView)
		a.status = fmt.Sprintf("Post #%d deleted.", msg.ID)
		var cmd tea.Cmd
		a.list, cmd = a.list.PostDeleted()
		return a, cmd

	case ranking.BackMsg:
		a.activate(listView)
		return a, nil

	case compose.DoneMsg:
		return a.composeDone(msg)

	case saveErrorMsg:
		a.deps.Log.WithError(msg.err).Warn("saving ui state failed")
		return a, nil
	}

	return a.delegate(msg)
}

func (a App) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.active {
	case listView:
		a.list, cmd = a.list.Update(msg)
	case detailView:
		a.detail, cmd = a.detail.Update(msg)
	case composeView:
		a.compose, cmd = a.compose.Update(msg)
	case rankingView:
		a.ranking, cmd = a.ranking.Update(msg)
	}
	return a, cmd
}

// activate switches to view and hands it the current window size. Only
// views that have been constructed may be activated.
func (a *App) activate(view activeView) {
	a.active = view
	switch view {
	case listView:
		a.list, _ = a.list.Update(a.size)
	case detailView:
		a.detail, _ = a.detail.Update(a.size)
	case composeView:
		a.compose, _ = a.compose.Update(a.size)
	case rankingView:
		a.ranking, _ = a.ranking.Update(a.size)
	}
}

func (a App) openDetail(id int64) (tea.Model, tea.Cmd) {
	a.detail = postdetail.New(a.deps.Posts, a.deps.Comments, a.deps.Editor, id)
	a.activate(detailView)
	return a, a.detail.Init()
}

func (a App) composeDone(msg compose.DoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Cancelled:
		a.activate(a.composeReturn)
		a.status = "Cancelled."
		return a, nil
	case msg.IsEdit:
		a.activate(detailView)
		a.status = "Post updated."
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Reload()
		return a, cmd
	}
	a.activate(listView)
	a.status = "Post created."
	if msg.PostID != 0 {
		a.status = fmt.Sprintf("Post #%d created.", msg.PostID)
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.PostCreated()
	return a, cmd
}

type saveErrorMsg struct {
	err error
}

func (a App) saveSearchType(st domain.SearchType) tea.Cmd {
	path := a.deps.StatePath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		if err := config.SaveUIState(path, config.UIState{SearchType: string(st)}); err != nil {
			return saveErrorMsg{err: err}
		}
		return nil
	}
}

func (a App) updateRecovery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Reload):
		a.crash.reason = ""
		a.activate(listView)
		var cmd tea.Cmd
		a.list, cmd = a.list.Reload()
		return a, cmd
	case key.Matches(msg, a.keys.Home):
		a.crash.reason = ""
		a.list = postlist.New(a.deps.Posts, a.list.State().SearchType)
		a.activate(listView)
		return a, a.list.Init()
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

// View renders the active sub-model.
func (a App) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			a.deps.Log.WithField("panic", fmt.Sprint(r)).Error("recovered from panic in view")
			a.crash.reason = fmt.Sprint(r)
			out = a.renderRecovery()
		}
	}()
	if a.active == recoveryView || a.crash.reason != "" {
		return a.renderRecovery()
	}

	var s string
	switch a.active {
	case listView:
		s = a.list.View()
	case detailView:
		s = a.detail.View()
	case composeView:
		s = a.compose.View()
	case rankingView:
		s = a.ranking.View()
	}

	if a.status != "" {
		s += "\n" + common.SuccessStyle.Render(a.status)
	}
	return s
}

func (a App) renderRecovery() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render(domain.AppTitle))
	b.WriteString("\n\n")
	b.WriteString(common.ErrorStyle.Render("Something went wrong."))
	b.WriteString("\n")
	b.WriteString(common.MetaStyle.Render(common.Truncate(a.crash.reason, max(a.size.Width-2, 20))))
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render(common.HelpLine(a.keys.Reload, a.keys.Home, a.keys.Quit)))
	return b.String()
}
