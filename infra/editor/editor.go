package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $VISUAL or $EDITOR
// (fallback: "vi"). It does not run the editor; callers hand the returned
// *exec.Cmd to tea.ExecProcess so Bubble Tea releases the terminal.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionMarker = "-->"

func instructionComment(label string) string {
	return fmt.Sprintf(`<!--
TerminalBoard: editing %s.

- SAVE and EXIT to apply (e.g. :wq in vi).
- Leading and trailing blank lines are removed.
- An empty file leaves the form unchanged.
%s

`, label, instructionMarker)
}

func editorCommand() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// Cmd writes content below an instruction header into a temp file and
// returns the editor command for it along with the file path.
func (e *EnvEditor) Cmd(label, content string) (*exec.Cmd, string, error) {
	if strings.TrimSpace(label) == "" {
		label = "text"
	}

	tmpFile, err := os.CreateTemp("", "terminalboard-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(instructionComment(label) + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	argv := editorCommand()
	args := append(argv[1:], tmpPath)
	return exec.Command(argv[0], args...), tmpPath, nil
}

// ReadContent reads the temp file, strips the instruction header, trims
// whitespace, and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if strings.HasPrefix(strings.TrimSpace(content), "<!--") {
		if idx := strings.Index(content, instructionMarker); idx != -1 {
			content = content[idx+len(instructionMarker):]
		}
	}
	return strings.TrimSpace(content), nil
}
