package common

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ForceQuit.Keys()) == 0 || km.ForceQuit.Keys()[0] != "ctrl+c" {
		t.Fatalf("expected ctrl+c force quit binding")
	}
	if km.PrevPage.Keys()[0] != "[" || km.NextPage.Keys()[0] != "]" {
		t.Fatalf("expected bracket page bindings, got %v %v", km.PrevPage.Keys(), km.NextPage.Keys())
	}
	if km.Like.Keys()[0] != "+" || km.Dislike.Keys()[0] != "-" {
		t.Fatalf("expected +/- vote bindings")
	}
}

func TestHelpLine_SkipsDisabled(t *testing.T) {
	a := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alpha"))
	b := key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "beta"), key.WithDisabled())
	c := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "gamma"))

	if got := HelpLine(a, b, c); got != "a: alpha • c: gamma" {
		t.Fatalf("unexpected help line: %q", got)
	}
}
