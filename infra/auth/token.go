package auth

import (
	"fmt"
	"os"
	"strings"
)

// TokenProvider supplies a bearer token for the board API.
// An empty token means requests are sent without an Authorization header.
type TokenProvider interface {
	AccessToken() (string, error)
}

// Anonymous is used when no token file is configured.
type Anonymous struct{}

// AccessToken always returns an empty token.
func (Anonymous) AccessToken() (string, error) { return "", nil }

// FileTokenProvider reads a bearer token from a file on disk.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// FromPath returns a FileTokenProvider for path, or Anonymous when path is empty.
func FromPath(path string) TokenProvider {
	if strings.TrimSpace(path) == "" {
		return Anonymous{}
	}
	return NewFileTokenProvider(path)
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	return token, nil
}
