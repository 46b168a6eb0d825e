package ports

import "os/exec"

// EditorOpener opens the annotation document in the user's editor.
type EditorOpener interface {
	// OpenFile opens the document and blocks until the editor exits.
	// It uses $EDITOR, falling back to common editors.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor.
	// This is useful for integrating with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
