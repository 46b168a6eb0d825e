package domain

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Notebook Area",
			want:  "notebook-area",
		},
		{
			name:  "already lowercase",
			title: "intro",
			want:  "intro",
		},
		{
			name:  "punctuation runs collapse",
			title: "Setup -- the hard part!",
			want:  "setup-the-hard-part",
		},
		{
			name:  "leading and trailing junk trimmed",
			title: "  (Demo) ",
			want:  "demo",
		},
		{
			name:  "digits kept",
			title: "Step 2 of 3",
			want:  "step-2-of-3",
		},
		{
			name:  "empty",
			title: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			title: "?!?",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSortAnnotationsStable(t *testing.T) {
	doc := &AnnotationDocument{
		Annotations: []*Annotation{
			{ID: "c", TimestampMs: 2000},
			{ID: "a", TimestampMs: 1000},
			{ID: "b", TimestampMs: 1000},
			{ID: "d", TimestampMs: 500},
		},
	}
	doc.SortAnnotations()

	want := []string{"d", "a", "b", "c"}
	for i, id := range want {
		if doc.Annotations[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, doc.Annotations[i].ID, id)
		}
	}
}

func TestByID(t *testing.T) {
	doc := &AnnotationDocument{
		Annotations: []*Annotation{
			{ID: "intro", TimestampMs: 0},
			{ID: "demo", TimestampMs: 1000},
		},
	}

	if got := doc.ByID("demo"); got == nil || got.TimestampMs != 1000 {
		t.Errorf("ByID(demo) = %v, want the demo annotation", got)
	}
	if got := doc.ByID("missing"); got != nil {
		t.Errorf("ByID(missing) = %v, want nil", got)
	}
}
