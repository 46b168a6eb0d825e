package domain

// NodeKind distinguishes timeline node types.
type NodeKind int

const (
	NodeDocument NodeKind = iota
	NodeSection
	NodeAnnotation
)

// TimelineNode is one node in the timeline arena. The tree is two levels deep
// today (document → sections → annotations) but nodes carry parent links so
// deeper section nesting can be added without changing consumers.
type TimelineNode struct {
	Kind       NodeKind
	ID         string
	Title      string
	Parent     *TimelineNode
	Children   []*TimelineNode
	Annotation *Annotation // set for NodeAnnotation only
	IsExpanded bool
}

// Toggle expands or collapses the node.
func (n *TimelineNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Depth returns the depth of this node below the document root.
func (n *TimelineNode) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// Timeline is the in-memory navigable form of an AnnotationDocument: a node
// arena addressed by id for TOC display plus the time-ordered annotation list
// for trigger scanning.
type Timeline struct {
	Doc  *AnnotationDocument
	Root *TimelineNode

	byID map[string]*TimelineNode
}

// BuildTimeline constructs the node arena from a parsed document.
func BuildTimeline(doc *AnnotationDocument) *Timeline {
	root := &TimelineNode{
		Kind:       NodeDocument,
		ID:         "",
		Title:      doc.Title,
		IsExpanded: true,
	}
	t := &Timeline{
		Doc:  doc,
		Root: root,
		byID: make(map[string]*TimelineNode),
	}

	for _, sec := range doc.Sections {
		sn := &TimelineNode{
			Kind:       NodeSection,
			ID:         sec.ID,
			Title:      sec.Title,
			Parent:     root,
			IsExpanded: true,
		}
		root.Children = append(root.Children, sn)
		t.byID[sec.ID] = sn

		for _, ann := range sec.Annotations {
			an := &TimelineNode{
				Kind:       NodeAnnotation,
				ID:         ann.ID,
				Title:      ann.Title,
				Parent:     sn,
				Annotation: ann,
			}
			sn.Children = append(sn.Children, an)
			// Last writer wins on duplicate ids; uniqueness is the
			// author's responsibility (see the check command).
			t.byID[ann.ID] = an
		}
	}

	return t
}

// NodeByID returns the node with the given id, or nil.
func (t *Timeline) NodeByID(id string) *TimelineNode {
	return t.byID[id]
}

// AnnotationByID returns the annotation with the given id, or nil.
func (t *Timeline) AnnotationByID(id string) *Annotation {
	if n, ok := t.byID[id]; ok && n.Kind == NodeAnnotation {
		return n.Annotation
	}
	return nil
}

// Ordered returns the annotations in ascending-timestamp order.
func (t *Timeline) Ordered() []*Annotation {
	return t.Doc.Annotations
}

// NextAfter returns the first annotation with timestamp strictly greater
// than the given time, or nil.
func (t *Timeline) NextAfter(ms int64) *Annotation {
	for _, a := range t.Doc.Annotations {
		if a.TimestampMs > ms {
			return a
		}
	}
	return nil
}

// PrevBefore returns the last annotation with timestamp strictly less than
// the given time, or nil.
func (t *Timeline) PrevBefore(ms int64) *Annotation {
	var prev *Annotation
	for _, a := range t.Doc.Annotations {
		if a.TimestampMs >= ms {
			break
		}
		prev = a
	}
	return prev
}

// NearestTo returns the annotation whose timestamp is closest to the given
// time, or nil for an empty document. Earlier wins on exact ties.
func (t *Timeline) NearestTo(ms int64) *Annotation {
	var best *Annotation
	var bestDist int64
	for _, a := range t.Doc.Annotations {
		dist := a.TimestampMs - ms
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best, bestDist = a, dist
		}
	}
	return best
}

// Flatten returns all visible nodes below the root (for list rendering),
// respecting IsExpanded on section nodes.
func (t *Timeline) Flatten() []*TimelineNode {
	var result []*TimelineNode
	for _, sec := range t.Root.Children {
		result = append(result, sec)
		if sec.IsExpanded {
			result = append(result, sec.Children...)
		}
	}
	return result
}

// EndMs returns the timestamp of the last annotation, used by presenters to
// scale the progress bar when the recording's duration is unknown.
func (t *Timeline) EndMs() int64 {
	if n := len(t.Doc.Annotations); n > 0 {
		return t.Doc.Annotations[n-1].TimestampMs
	}
	return 0
}
