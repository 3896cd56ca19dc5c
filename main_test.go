package main

import (
	"testing"

	"github.com/CrestNiraj12/terminalboard/domain"
	"github.com/CrestNiraj12/terminalboard/infra/config"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		msg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
		{name: "invalid flag", args: []string{"--bogus", "--pogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus --pogus"},
		{name: "too many args", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v0.3.1", map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2026-01-02T03:04:05Z",
	})
	if v != "v0.3.1" || c != "0123456789ab" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected version info: %s %s %s", v, c, d)
	}

	v, c, d = resolveVersionInfo("v1.0.0", "abc", "today", "(devel)", nil)
	if v != "v1.0.0" || c != "abc" || d != "today" {
		t.Fatalf("ldflags values should win: %s %s %s", v, c, d)
	}
}

func TestInitialSearchType(t *testing.T) {
	if got := initialSearchType(config.UIState{SearchType: "contents"}); got != domain.SearchContents {
		t.Fatalf("unexpected search type: %q", got)
	}
	if got := initialSearchType(config.UIState{SearchType: "bogus"}); got != domain.DefaultSearchType {
		t.Fatalf("unknown value should fall back: %q", got)
	}
	if got := initialSearchType(config.UIState{}); got != domain.DefaultSearchType {
		t.Fatalf("empty value should fall back: %q", got)
	}
}
