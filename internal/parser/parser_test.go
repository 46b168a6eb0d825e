package parser

import (
	"reflect"
	"testing"

	"rehearse/internal/domain"
)

const sampleDoc = "---\n" +
	"version: 2\n" +
	"title: `Demo Session`\n" +
	"---\n" +
	"## Section: Getting Started {#start}\n" +
	"### Annotation: Welcome\n" +
	"---\n" +
	"timestamp: 1000\n" +
	"color: `#7C3AED`\n" +
	"---\n" +
	"Opening remarks.\n" +
	"### Annotation: Notebook Area {#notebook}\n" +
	"---\n" +
	"timestamp: 8000\n" +
	"autopause: true\n" +
	"---\n" +
	"The notebook panel.\n" +
	"```driver\n" +
	"highlight('.jp-Notebook')\n" +
	"```\n" +
	"## Section: Wrap Up\n" +
	"### Annotation: Goodbye!\n" +
	"---\n" +
	"timestamp: 4000\n" +
	"autopause: false\n" +
	"---\n"

func TestParseFullDocument(t *testing.T) {
	doc := Parse(sampleDoc)

	if doc.Version != 2 {
		t.Errorf("version = %d, want 2", doc.Version)
	}
	if doc.Title != "Demo Session" {
		t.Errorf("title = %q, want Demo Session (backticks stripped)", doc.Title)
	}

	if len(doc.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(doc.Sections))
	}
	if doc.Sections[0].ID != "start" {
		t.Errorf("explicit section id = %q, want start", doc.Sections[0].ID)
	}
	if doc.Sections[1].ID != "wrap-up" {
		t.Errorf("slugified section id = %q, want wrap-up", doc.Sections[1].ID)
	}

	// Sections keep authoring order.
	first := doc.Sections[0].Annotations
	if len(first) != 2 || first[0].ID != "welcome" || first[1].ID != "notebook" {
		t.Errorf("section annotations out of authoring order: %+v", ids(first))
	}

	// The flat list is sorted by timestamp: welcome@1000, goodbye@4000,
	// notebook@8000.
	want := []string{"welcome", "goodbye", "notebook"}
	if got := ids(doc.Annotations); !reflect.DeepEqual(got, want) {
		t.Errorf("flat order = %v, want %v", got, want)
	}

	welcome := doc.ByID("welcome")
	if welcome.TimestampMs != 1000 {
		t.Errorf("welcome timestamp = %d", welcome.TimestampMs)
	}
	if welcome.Color != "#7C3AED" {
		t.Errorf("welcome color = %q, want backticks stripped", welcome.Color)
	}
	if welcome.Autopause != nil {
		t.Errorf("welcome autopause should be unset")
	}
	if welcome.Description != "Opening remarks." {
		t.Errorf("welcome description = %q", welcome.Description)
	}
	if welcome.SectionID != "start" {
		t.Errorf("welcome section = %q", welcome.SectionID)
	}

	notebook := doc.ByID("notebook")
	if notebook.Autopause == nil || !*notebook.Autopause {
		t.Errorf("notebook autopause should be true")
	}
	if notebook.HighlightScript != "highlight('.jp-Notebook')" {
		t.Errorf("notebook script = %q", notebook.HighlightScript)
	}
	if notebook.Description != "The notebook panel." {
		t.Errorf("script fence should be removed from description, got %q", notebook.Description)
	}

	goodbye := doc.ByID("goodbye")
	if goodbye.Autopause == nil || *goodbye.Autopause {
		t.Errorf("goodbye autopause should be false")
	}
	if goodbye.Description != "" {
		t.Errorf("empty body should give empty description, got %q", goodbye.Description)
	}
}

func TestParseDeterministic(t *testing.T) {
	a := Parse(sampleDoc)
	b := Parse(sampleDoc)

	if !reflect.DeepEqual(ids(a.Annotations), ids(b.Annotations)) {
		t.Errorf("re-parsing produced different order")
	}
	for i := range a.Annotations {
		if !reflect.DeepEqual(a.Annotations[i], b.Annotations[i]) {
			t.Errorf("annotation %d differs between parses", i)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "no frontmatter", text: "### Annotation: Solo\n"},
		{name: "unclosed frontmatter", text: "---\nversion: 9\n"},
		{name: "garbage", text: "just\nsome\ntext\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text)
			if doc.Version != 1 {
				t.Errorf("version = %d, want default 1", doc.Version)
			}
			if doc.Title != "Annotations" {
				t.Errorf("title = %q, want default", doc.Title)
			}
		})
	}
}

func TestParseDefaultSectionReused(t *testing.T) {
	doc := Parse("### Annotation: First\n" +
		"---\ntimestamp: 100\n---\n" +
		"### Annotation: Second\n" +
		"---\ntimestamp: 200\n---\n")

	if len(doc.Sections) != 1 {
		t.Fatalf("unsectioned annotations should share one synthetic section, got %d", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.ID != "annotations" {
		t.Errorf("default section id = %q", sec.ID)
	}
	if len(sec.Annotations) != 2 {
		t.Errorf("default section holds %d annotations, want 2", len(sec.Annotations))
	}
}

func TestParseMissingMetadata(t *testing.T) {
	doc := Parse("### Annotation: Bare\nJust a description.\n")

	ann := doc.ByID("bare")
	if ann == nil {
		t.Fatal("annotation not parsed")
	}
	if ann.TimestampMs != 0 {
		t.Errorf("missing timestamp should default to 0, got %d", ann.TimestampMs)
	}
	if ann.Color != "" || ann.Autopause != nil || ann.HighlightScript != "" {
		t.Errorf("optional fields should stay unset: %+v", ann)
	}
	if ann.Description != "Just a description." {
		t.Errorf("description = %q", ann.Description)
	}
}

func TestParseNonNumericTimestamp(t *testing.T) {
	doc := Parse("### Annotation: Odd\n---\ntimestamp: soon\n---\n")
	if got := doc.ByID("odd").TimestampMs; got != 0 {
		t.Errorf("non-numeric timestamp = %d, want 0", got)
	}
}

func TestParseNonHighlightFenceStaysInDescription(t *testing.T) {
	doc := Parse("### Annotation: Code\n---\ntimestamp: 10\n---\n" +
		"Look at this:\n```go\nfmt.Println(1)\n```\n")

	ann := doc.ByID("code")
	if ann.HighlightScript != "" {
		t.Errorf("go fence should not become a highlight script")
	}
	if ann.Description == "Look at this:" {
		t.Errorf("non-highlight fence should remain in the description")
	}
}

func TestParseUnclosedScriptFence(t *testing.T) {
	doc := Parse("### Annotation: Open\n```highlight\nstep one\nstep two\n")

	ann := doc.ByID("open")
	if ann.HighlightScript != "step one\nstep two" {
		t.Errorf("unclosed fence should run to end of body, got %q", ann.HighlightScript)
	}
}

func TestParseDuplicateIDsTolerated(t *testing.T) {
	doc := Parse("### Annotation: Twin {#same}\n### Annotation: Other {#same}\n")
	if len(doc.Annotations) != 2 {
		t.Errorf("duplicate ids are not a parse error, got %d annotations", len(doc.Annotations))
	}
}

func TestParseStableForEqualTimestamps(t *testing.T) {
	doc := Parse("### Annotation: A\n---\ntimestamp: 500\n---\n" +
		"### Annotation: B\n---\ntimestamp: 500\n---\n" +
		"### Annotation: C\n---\ntimestamp: 100\n---\n")

	want := []string{"c", "a", "b"}
	if got := ids(doc.Annotations); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want stable %v", got, want)
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"`blue`", "blue"},
		{`"blue"`, "blue"},
		{"'blue'", "blue"},
		{"blue", "blue"},
		{"`", "`"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripQuotes(tt.in); got != tt.want {
			t.Errorf("stripQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func ids(anns []*domain.Annotation) []string {
	out := make([]string, len(anns))
	for i, a := range anns {
		out[i] = a.ID
	}
	return out
}
