package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Annotation is a timestamped bookmark in a recorded session. The highlight
// script is an opaque payload for an external presenter; the engine never
// interprets it.
type Annotation struct {
	ID              string // unique within a document, stable across re-parses
	Title           string
	TimestampMs     int64
	Color           string // empty if unset
	Autopause       *bool  // nil means unset; resolution is the engine's job
	Description     string // empty if none
	HighlightScript string // empty if none
	SectionID       string // back-reference, empty for none
}

// HasScript reports whether the annotation carries a highlight script.
func (a *Annotation) HasScript() bool {
	return a.HighlightScript != ""
}

// TocSection groups annotations for table-of-contents display. Sections hold
// non-owning references in authoring order; the document owns the annotations.
type TocSection struct {
	ID          string
	Title       string
	Annotations []*Annotation
}

// AnnotationDocument is the parsed form of an annotation document.
// Sections preserve authoring order; Annotations is the flat list of every
// annotation sorted ascending by timestamp, stable for ties. Both orders are
// intentionally different and both are preserved.
type AnnotationDocument struct {
	Version     int
	Title       string
	Sections    []*TocSection
	Annotations []*Annotation
}

// ByID returns the annotation with the given id, or nil.
func (d *AnnotationDocument) ByID(id string) *Annotation {
	for _, a := range d.Annotations {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// SortAnnotations orders the flat list ascending by timestamp, keeping
// document order for equal timestamps.
func (d *AnnotationDocument) SortAnnotations() {
	sort.SliceStable(d.Annotations, func(i, j int) bool {
		return d.Annotations[i].TimestampMs < d.Annotations[j].TimestampMs
	})
}

// FormatTimestamp renders a millisecond offset as m:ss for display.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	return fmt.Sprintf("%d:%02d", totalSec/60, totalSec%60)
}

// Slugify derives an id from a heading title: lowercase, runs of
// non-alphanumeric characters collapse to a single hyphen, trimmed.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
