package parser

import (
	"regexp"
	"strings"

	"rehearse/internal/domain"
)

// Heading forms. Both optionally carry an explicit id via trailing {#id};
// absent that, the id is derived by slugifying the heading text.
var (
	sectionHeadingRe    = regexp.MustCompile(`^##\s+Section:\s*(.+?)\s*(?:\{#([^}\s]+)\})?\s*$`)
	annotationHeadingRe = regexp.MustCompile(`^###\s+Annotation:\s*(.+?)\s*(?:\{#([^}\s]+)\})?\s*$`)
	fenceOpenRe         = regexp.MustCompile("^```([A-Za-z0-9_+-]*)\\s*$")
)

const (
	defaultVersion      = 1
	defaultTitle        = "Annotations"
	defaultSectionTitle = "Annotations"
)

// highlightLangs are the fence language tags recognized as highlight
// scripts. Fences with any other tag stay part of the description.
var highlightLangs = map[string]bool{
	"driver":    true,
	"highlight": true,
}

// Parse turns raw annotation-document text into a structured document.
// Parsing is total: malformed input never produces an error, every field
// independently falls back to its default.
func Parse(text string) *domain.AnnotationDocument {
	lines := splitLines(text)

	doc := &domain.AnnotationDocument{
		Version: defaultVersion,
		Title:   defaultTitle,
	}

	idx := 0
	if len(lines) > 0 && isDelimiter(lines[0]) {
		if end := findDelimiter(lines, 1); end >= 0 {
			front := parseKeyValues(lines[1:end])
			doc.Version = int(metaInt(front, "version", defaultVersion))
			doc.Title = metaString(front, "title", defaultTitle)
			idx = end + 1
		}
		// No closing delimiter means no frontmatter; the stray opening
		// line is skipped by the body scan like any other text.
	}

	var current *domain.TocSection
	var fallback *domain.TocSection

	attach := func(ann *domain.Annotation) {
		sec := current
		if sec == nil {
			if fallback == nil {
				fallback = &domain.TocSection{
					ID:    domain.Slugify(defaultSectionTitle),
					Title: defaultSectionTitle,
				}
				doc.Sections = append(doc.Sections, fallback)
			}
			sec = fallback
		}
		ann.SectionID = sec.ID
		sec.Annotations = append(sec.Annotations, ann)
		doc.Annotations = append(doc.Annotations, ann)
	}

	for idx < len(lines) {
		line := lines[idx]

		if m := sectionHeadingRe.FindStringSubmatch(line); m != nil {
			current = &domain.TocSection{
				ID:    headingID(m),
				Title: m[1],
			}
			doc.Sections = append(doc.Sections, current)
			idx++
			continue
		}

		if m := annotationHeadingRe.FindStringSubmatch(line); m != nil {
			end := idx + 1
			for end < len(lines) && !isHeading(lines[end]) {
				end++
			}
			attach(buildAnnotation(m[1], headingID(m), lines[idx+1:end]))
			idx = end
			continue
		}

		idx++
	}

	doc.SortAnnotations()
	return doc
}

// buildAnnotation assembles one annotation from its heading and body lines.
// The body yields, in order of extraction: an embedded metadata block, a
// single highlight-script fence, and the remaining text as description.
func buildAnnotation(title, explicitID string, body []string) *domain.Annotation {
	id := explicitID
	if id == "" {
		id = domain.Slugify(title)
	}

	ann := &domain.Annotation{
		ID:    id,
		Title: title,
	}

	body, meta := extractMetaBlock(body)
	ann.TimestampMs = metaInt(meta, "timestamp", 0)
	ann.Color = metaString(meta, "color", "")
	ann.Autopause = metaBool(meta, "autopause")

	body, ann.HighlightScript = extractHighlightScript(body)

	ann.Description = strings.TrimSpace(strings.Join(body, "\n"))
	return ann
}

// extractMetaBlock removes the first delimited metadata block from the body
// and returns the remaining lines plus the parsed key/value pairs. An
// unclosed block is left in place as plain text.
func extractMetaBlock(body []string) ([]string, map[string]string) {
	for i, line := range body {
		if !isDelimiter(line) {
			continue
		}
		end := findDelimiter(body, i+1)
		if end < 0 {
			break
		}
		meta := parseKeyValues(body[i+1 : end])
		rest := make([]string, 0, len(body)-(end-i+1))
		rest = append(rest, body[:i]...)
		rest = append(rest, body[end+1:]...)
		return rest, meta
	}
	return body, nil
}

// extractHighlightScript removes the first fenced code block carrying a
// highlight language tag and returns its trimmed contents. An unclosed fence
// runs to the end of the body.
func extractHighlightScript(body []string) ([]string, string) {
	for i, line := range body {
		m := fenceOpenRe.FindStringSubmatch(line)
		if m == nil || !highlightLangs[m[1]] {
			continue
		}
		end := len(body)
		for j := i + 1; j < len(body); j++ {
			if strings.TrimSpace(body[j]) == "```" {
				end = j
				break
			}
		}
		script := strings.TrimSpace(strings.Join(body[i+1:end], "\n"))
		rest := make([]string, 0, len(body))
		rest = append(rest, body[:i]...)
		if end < len(body) {
			rest = append(rest, body[end+1:]...)
		}
		return rest, script
	}
	return body, ""
}

// headingID returns the explicit {#id} capture from a heading match, if any.
func headingID(m []string) string {
	if len(m) > 2 && m[2] != "" {
		return m[2]
	}
	return ""
}

func isHeading(line string) bool {
	return sectionHeadingRe.MatchString(line) || annotationHeadingRe.MatchString(line)
}

// findDelimiter returns the index of the next delimiter line at or after
// start, or -1.
func findDelimiter(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		if isDelimiter(lines[i]) {
			return i
		}
	}
	return -1
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
