package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"rehearse/internal/domain"
	"rehearse/internal/parser"
	"rehearse/internal/ports"
)

// Source loads an annotation document from a file.
type Source struct {
	path string
}

var _ ports.DocumentSource = (*Source)(nil)

// NewSource creates a source for the given path, expanding a leading ~.
func NewSource(path string) *Source {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Source{path: path}
}

// Path returns the document path.
func (s *Source) Path() string {
	return s.path
}

// Load reads and parses the document. A missing file yields an empty
// document and no error: the player then runs inert over zero annotations.
// Other read failures are reported, but still yield an empty document so
// the caller keeps operating.
func (s *Source) Load() (*domain.AnnotationDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return parser.Parse(""), nil
		}
		return parser.Parse(""), fmt.Errorf("reading annotation document: %w", err)
	}
	return parser.Parse(string(data)), nil
}
