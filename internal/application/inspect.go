package application

import (
	"fmt"

	"rehearse/internal/domain"
)

// Summary condenses a parsed document for display.
type Summary struct {
	Title       string
	Version     int
	Sections    int
	Annotations int
	Scripted    int
	EndMs       int64
}

// Summarize builds a Summary from a document.
func Summarize(doc *domain.AnnotationDocument) Summary {
	s := Summary{
		Title:       doc.Title,
		Version:     doc.Version,
		Sections:    len(doc.Sections),
		Annotations: len(doc.Annotations),
	}
	for _, ann := range doc.Annotations {
		if ann.HasScript() {
			s.Scripted++
		}
	}
	if n := len(doc.Annotations); n > 0 {
		s.EndMs = doc.Annotations[n-1].TimestampMs
	}
	return s
}

// FindAnnotation resolves an id against a document.
func FindAnnotation(doc *domain.AnnotationDocument, id string) (*domain.Annotation, error) {
	if ann := doc.ByID(id); ann != nil {
		return ann, nil
	}
	return nil, &AnnotationNotFoundError{ID: id}
}

// LintIssue is one authoring problem found in a document. The parser is
// total and accepts these; lint is a separate pass for authors.
type LintIssue struct {
	ID      string
	Message string
}

func (i LintIssue) String() string {
	if i.ID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.ID, i.Message)
}

// Lint reports caller-visible ambiguities: duplicate ids, annotations
// without a timestamp, and sections whose annotations run backward in time.
func Lint(doc *domain.AnnotationDocument) []LintIssue {
	var issues []LintIssue

	seen := make(map[string]bool)
	for _, sec := range doc.Sections {
		for _, ann := range sec.Annotations {
			if seen[ann.ID] {
				issues = append(issues, LintIssue{ID: ann.ID, Message: "duplicate id; deep links and triggers are ambiguous"})
			}
			seen[ann.ID] = true
		}
	}

	for _, ann := range doc.Annotations {
		if ann.TimestampMs == 0 {
			issues = append(issues, LintIssue{ID: ann.ID, Message: "timestamp missing or zero"})
		}
	}

	for _, sec := range doc.Sections {
		var prev int64 = -1
		for _, ann := range sec.Annotations {
			if ann.TimestampMs < prev {
				issues = append(issues, LintIssue{
					ID:      ann.ID,
					Message: fmt.Sprintf("timestamp %dms runs backward within section %q", ann.TimestampMs, sec.Title),
				})
			}
			prev = ann.TimestampMs
		}
	}

	return issues
}
