package domain

import (
	"strconv"
	"strings"
)

// JumpThreshold is the page count above which the direct page-jump input is offered.
const JumpThreshold = 5

// PageState describes the visible block of page buttons. It comes from the
// backend with every list or search response and is never mutated locally.
type PageState struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	StartPage     int `json:"startPage"`
	EndPage       int `json:"endPage"`
	PrevBlockPage int `json:"prevBlockPage"`
	NextBlockPage int `json:"nextBlockPage"`
}

// EmptyPageState is the state of a list with no pages.
func EmptyPageState() PageState {
	return PageState{
		CurrentPage:   1,
		TotalPages:    0,
		StartPage:     1,
		EndPage:       0,
		PrevBlockPage: 1,
		NextBlockPage: 0,
	}
}

// PageButton is one numbered button of the pagination bar.
type PageButton struct {
	Page     int
	Current  bool
	CapStart bool // rounded left edge
	CapEnd   bool // rounded right edge
}

// PageWindow interprets a PageState for rendering and navigation.
type PageWindow struct {
	state PageState
}

// NewPageWindow wraps a backend page state.
func NewPageWindow(ps PageState) PageWindow {
	return PageWindow{state: ps}
}

// State returns the wrapped page state.
func (w PageWindow) State() PageState { return w.state }

// Visible reports whether a pagination control should be drawn at all.
func (w PageWindow) Visible() bool {
	return w.state.TotalPages > 1
}

// Pages lists the page numbers of the current block, clamped to [1, TotalPages].
func (w PageWindow) Pages() []int {
	if !w.Visible() {
		return nil
	}
	start := max(w.state.StartPage, 1)
	end := min(w.state.EndPage, w.state.TotalPages)
	if end < start {
		return nil
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Buttons returns the numbered buttons including corner caps.
func (w PageWindow) Buttons() []PageButton {
	pages := w.Pages()
	if len(pages) == 0 {
		return nil
	}
	contains := func(n int) bool {
		return n >= pages[0] && n <= pages[len(pages)-1]
	}
	ps := w.state
	buttons := make([]PageButton, len(pages))
	for i, p := range pages {
		b := PageButton{Page: p, Current: p == ps.CurrentPage}
		if len(pages) == 1 {
			b.CapStart, b.CapEnd = true, true
		}
		if p == ps.StartPage {
			if ps.StartPage == 1 || (ps.StartPage > 1 && !contains(ps.PrevBlockPage)) {
				b.CapStart = true
			}
		}
		if p == ps.EndPage {
			if ps.EndPage == ps.TotalPages || (ps.EndPage < ps.TotalPages && !contains(ps.NextBlockPage)) {
				b.CapEnd = true
			}
		}
		buttons[i] = b
	}
	return buttons
}

// HasPrevBlock reports whether the "previous block" control is shown.
func (w PageWindow) HasPrevBlock() bool {
	return w.Visible() && w.state.StartPage > 1
}

// PrevTarget is where the "previous block" control navigates.
func (w PageWindow) PrevTarget() int { return w.state.PrevBlockPage }

// HasNextBlock reports whether the "next block" control is shown.
func (w PageWindow) HasNextBlock() bool {
	return w.Visible() && w.state.EndPage < w.state.TotalPages
}

// NextTarget is where the "next block" control navigates.
func (w PageWindow) NextTarget() int { return w.state.NextBlockPage }

// ValidPage reports whether n may be requested.
func (w PageWindow) ValidPage(n int) bool {
	return n >= 1 && n <= w.state.TotalPages
}

// ShowJump reports whether the direct page-jump input is offered.
func (w PageWindow) ShowJump() bool {
	return w.state.TotalPages > JumpThreshold
}

// ParseJump validates text typed into the page-jump input.
func (w PageWindow) ParseJump(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{Field: "page", Err: ErrInvalidPage}
	}
	if !w.ValidPage(n) {
		return 0, &ValidationError{Field: "page", Err: ErrPageOutOfRange}
	}
	return n, nil
}
