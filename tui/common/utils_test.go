package common

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected truncate result: %q", got)
	}
	got := Truncate("a rather long post title", 10)
	if ansi.StringWidth(got) != 10 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected 10 cells ending in ellipsis, got %q", got)
	}
	if got := Truncate("line one\nline two", 40); got != "line one line two" {
		t.Fatalf("newlines should fold: %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("zero width should be empty: %q", got)
	}
}

func TestTruncate_WideRunes(t *testing.T) {
	got := Truncate("게시판 제목입니다", 7)
	if ansi.StringWidth(got) > 7 {
		t.Fatalf("wide runes overflowed: %q (%d cells)", got, ansi.StringWidth(got))
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("unexpected pad: %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("pad should not cut: %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("a b c d e f g h i j k l m n o p q r s t u v w x y z", 12, 2)
	if strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected two lines with ellipsis: %q", got)
	}
}

func TestClampLines(t *testing.T) {
	got := ClampLines("abcdef\nab", 3)
	if got != "abc\nab" {
		t.Fatalf("unexpected clamp: %q", got)
	}
}
