package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileTokenProvider_AccessToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("  abc123 \n"), 0o600); err != nil {
		t.Fatalf("write token failed: %v", err)
	}

	p := NewFileTokenProvider(path)
	got, err := p.AccessToken()
	if err != nil {
		t.Fatalf("access token failed: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestFileTokenProvider_AccessTokenErrors(t *testing.T) {
	p := NewFileTokenProvider(filepath.Join(t.TempDir(), "missing"))
	if _, err := p.AccessToken(); err == nil {
		t.Fatalf("expected missing-file error")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte(" \n\t"), 0o600); err != nil {
		t.Fatalf("write empty token failed: %v", err)
	}
	p = NewFileTokenProvider(empty)
	_, err := p.AccessToken()
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty-token error, got: %v", err)
	}
}

func TestFromPath_EmptyIsAnonymous(t *testing.T) {
	p := FromPath("  ")
	if _, ok := p.(Anonymous); !ok {
		t.Fatalf("expected anonymous provider, got %T", p)
	}
	tok, err := p.AccessToken()
	if err != nil || tok != "" {
		t.Fatalf("anonymous provider must return empty token, got %q %v", tok, err)
	}

	if _, ok := FromPath("/tmp/token").(*FileTokenProvider); !ok {
		t.Fatalf("expected file provider for non-empty path")
	}
}
