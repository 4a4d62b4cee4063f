package segment

import (
	"regexp"
	"strconv"
	"strings"

	"lessongest/internal/book"
)

const (
	contentsMarker = "Contents"
	introMarker    = "Introduction"

	// Fallback windows when the end of the TOC cannot be located.
	tocScanWindow  = 400
	tocSliceWindow = 350
)

// Section identifier shapes shared by the TOC and the body text.
var (
	lessonIDRe   = regexp.MustCompile(`^(\d{2}) (.+)$`)
	appendixIDRe = regexp.MustCompile(`^(A\d) (.+)$`)
	listIDRe     = regexp.MustCompile(`^(L\d) (.+)$`)
	coreDictRe   = regexp.MustCompile(`^Core Dictionary$`)
)

// ParseTOC scans the raw lines for the table of contents block and returns
// the id → entry mapping. The TOC runs from the "Contents" line to the
// "Introduction" occurrence that is followed by prose rather than a page
// number (the TOC's own Introduction row is followed by its page). Missing
// TOC yields an empty mapping; duplicate ids resolve last-wins.
func ParseTOC(lines []string) book.TOC {
	toc := book.TOC{}

	contentsIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == contentsMarker {
			contentsIdx = i
			break
		}
	}
	if contentsIdx < 0 {
		return toc
	}

	introIdx := -1
	limit := min(contentsIdx+tocScanWindow, len(lines))
	for i := contentsIdx + 1; i < limit; i++ {
		if strings.TrimSpace(lines[i]) != introMarker {
			continue
		}
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}
		if j < len(lines) && !isDigits(strings.TrimSpace(lines[j])) {
			introIdx = i
			break
		}
	}

	end := introIdx
	if end < 0 {
		end = min(contentsIdx+tocSliceWindow, len(lines))
	}
	tocLines := lines[contentsIdx:end]

	for i := 0; i < len(tocLines); i++ {
		id, title, ok := matchHeaderShape(strings.TrimSpace(tocLines[i]))
		if !ok {
			continue
		}
		// The page number is the next purely numeric line; any other
		// non-blank line means this entry has no page.
		page := 0
		for j := i + 1; j < len(tocLines); j++ {
			next := strings.TrimSpace(tocLines[j])
			if isDigits(next) {
				page, _ = strconv.Atoi(next)
				break
			}
			if next != "" {
				break
			}
		}
		toc[id] = book.TOCEntry{Title: title, Page: page}
	}
	return toc
}

// matchHeaderShape matches a line against the three id+title shapes and the
// Core Dictionary literal.
func matchHeaderShape(line string) (id, title string, ok bool) {
	for _, re := range []*regexp.Regexp{lessonIDRe, appendixIDRe, listIDRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], strings.TrimSpace(m[2]), true
		}
	}
	if coreDictRe.MatchString(line) {
		return book.CoreID, "Core Dictionary", true
	}
	return "", "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
