package postlist

import (
	"strings"

	"github.com/CrestNiraj12/terminalboard/domain"
)

// Phase is the lifecycle stage of the list.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseErrored:
		return "errored"
	}
	return "idle"
}

// ListState is everything the list view knows about the page it shows.
//
// Transitions are pure: each returns a new state. Transitions that start a
// fetch bump ReqSeq, and results carrying an older seq are discarded, so the
// page shown always matches the last navigation.
type ListState struct {
	Phase      Phase
	Page       int
	SearchType domain.SearchType
	Query      string
	Posts      []domain.PostLine
	PageState  domain.PageState
	Err        error
	ReqSeq     int
}

// NewListState returns an idle state on page 1.
func NewListState(st domain.SearchType) ListState {
	if st == "" {
		st = domain.DefaultSearchType
	}
	return ListState{
		Phase:      PhaseIdle,
		Page:       1,
		SearchType: st,
		Posts:      []domain.PostLine{},
		PageState:  domain.EmptyPageState(),
	}
}

// Window interprets the current page state.
func (s ListState) Window() domain.PageWindow {
	return domain.NewPageWindow(s.PageState)
}

// Searching reports whether the list shows search results.
func (s ListState) Searching() bool { return s.Query != "" }

// Loading reports whether a fetch is in flight.
func (s ListState) Loading() bool { return s.Phase == PhaseLoading }

func (s ListState) begin() ListState {
	s.ReqSeq++
	s.Phase = PhaseLoading
	s.Err = nil
	return s
}

// Start loads the current page; used on first show and on refresh.
func (s ListState) Start() ListState {
	return s.begin()
}

// PageChanged moves to page n. Pages outside [1, TotalPages] are rejected
// and the state is returned unchanged.
func (s ListState) PageChanged(n int) (ListState, bool) {
	if !s.Window().ValidPage(n) {
		return s, false
	}
	s.Page = n
	return s.begin(), true
}

// SearchSubmitted starts a search on page 1. A blank query falls back to
// the plain list.
func (s ListState) SearchSubmitted(st domain.SearchType, query string) ListState {
	if st != "" {
		s.SearchType = st
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return s.SearchCleared()
	}
	s.Query = query
	s.Page = 1
	return s.begin()
}

// SearchCleared returns to the plain list on page 1.
func (s ListState) SearchCleared() ListState {
	s.Query = ""
	s.Page = 1
	return s.begin()
}

// PostCreated shows the newest posts: plain list, page 1.
func (s ListState) PostCreated() ListState {
	s.Query = ""
	s.Page = 1
	return s.begin()
}

// PostDeleted reloads the current page, stepping back when the deleted post
// was the only one on a later page.
func (s ListState) PostDeleted() ListState {
	if len(s.Posts) <= 1 && s.Page > 1 {
		s.Page--
	}
	return s.begin()
}

// Loaded applies a fetched page. A stale seq leaves the state unchanged.
func (s ListState) Loaded(seq int, page domain.PostPage) (ListState, bool) {
	if seq != s.ReqSeq {
		return s, false
	}
	s.Phase = PhaseReady
	s.Err = nil
	s.Posts = page.PostLines
	if s.Posts == nil {
		s.Posts = []domain.PostLine{}
	}
	s.PageState = page.PageState
	if page.PageState.CurrentPage >= 1 {
		s.Page = page.PageState.CurrentPage
	}
	return s, true
}

// Failed records a fetch error and clears the page. A stale seq leaves the
// state unchanged.
func (s ListState) Failed(seq int, err error) (ListState, bool) {
	if seq != s.ReqSeq {
		return s, false
	}
	s.Phase = PhaseErrored
	s.Err = err
	s.Posts = []domain.PostLine{}
	s.PageState = domain.EmptyPageState()
	return s, true
}
