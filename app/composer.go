package app

import "os/exec"

// Editor prepares an external editor session for long-form text.
// Implemented by infrastructure (EnvEditor spawns $EDITOR); the TUI runs the
// returned command through tea.ExecProcess and reads the file back afterwards.
type Editor interface {
	// Cmd writes content to a temp file and returns the command that edits it.
	// label says what is being edited, e.g. "post body" or "reply to #12".
	Cmd(label, content string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}
