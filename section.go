package docserve

import "strings"

// SectionBounds holds the 1-based inclusive line range of a matched section.
type SectionBounds struct {
	StartLine int
	EndLine   int
}

// sectionPunct is stripped from headings and queries before comparison so
// that markdown decoration ("`Bun.build()`", "**Install**") does not get in
// the way of matching.
const sectionPunct = "`*_~[]();:.,!?\"'<>#"

// LocateSection finds the section of a document introduced by the first
// heading whose normalized text contains the normalized query. If depth is
// non-zero only headings at exactly that depth are eligible. The section
// runs from the matched heading's line to the line before the next heading
// of equal or shallower depth, or to the end of the document. Bounds are
// clamped to [1, totalLines].
func LocateSection(headings []Heading, query string, depth, totalLines int) (SectionBounds, bool) {
	want := normalizeHeading(query)
	if want == "" {
		return SectionBounds{}, false
	}

	matched := -1
	for i, h := range headings {
		if depth != 0 && h.Depth != depth {
			continue
		}
		if strings.Contains(normalizeHeading(h.Text), want) {
			matched = i
			break
		}
	}
	if matched == -1 {
		return SectionBounds{}, false
	}

	start := headings[matched].Line
	end := totalLines
	// The section ends before the next heading at the same or a shallower
	// depth, regardless of the depth filter used for matching.
	for _, h := range headings[matched+1:] {
		if h.Depth <= headings[matched].Depth {
			end = h.Line - 1
			break
		}
	}

	return clampBounds(start, end, totalLines), true
}

func clampBounds(start, end, totalLines int) SectionBounds {
	if totalLines < 1 {
		totalLines = 1
	}
	if start < 1 {
		start = 1
	}
	if start > totalLines {
		start = totalLines
	}
	if end < start {
		end = start
	}
	if end > totalLines {
		end = totalLines
	}
	return SectionBounds{StartLine: start, EndLine: end}
}

func normalizeHeading(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if strings.ContainsRune(sectionPunct, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}
