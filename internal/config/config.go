package config

import "os"

const (
	DefaultDocumentPath = "annotations.md"
	DefaultBaseURL      = "http://localhost:5174/"
)

// DocumentPath returns the annotation document path from the REHEARSE_DOC
// env var, falling back to DefaultDocumentPath.
func DocumentPath() string {
	if env := os.Getenv("REHEARSE_DOC"); env != "" {
		return env
	}
	return DefaultDocumentPath
}

// BaseURL returns the deep-link base URL from the REHEARSE_BASE_URL env var,
// falling back to DefaultBaseURL.
func BaseURL() string {
	if env := os.Getenv("REHEARSE_BASE_URL"); env != "" {
		return env
	}
	return DefaultBaseURL
}
