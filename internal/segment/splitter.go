package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"lessongest/internal/book"
)

// Config controls section splitting.
type Config struct {
	// TitlePrefixMin is the minimum normalized candidate-title length for
	// the prefix match that accepts line-wrapped or truncated headers.
	TitlePrefixMin int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{TitlePrefixMin: 15}
}

var (
	trailingParenRe = regexp.MustCompile(`\s*\([^)]+\)\s*$`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
)

// normalizeTitle prepares a title for comparison: trailing parenthetical
// qualifiers dropped, whitespace collapsed, lowercased, trailing punctuation
// stripped. TOC titles and body headers often differ in exactly these ways.
func normalizeTitle(title string) string {
	t := trailingParenRe.ReplaceAllString(title, "")
	t = multiSpaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(t)), " ")
	return strings.TrimRight(t, ".,:;")
}

// Split partitions the raw lines into sections, recognizing headers only
// when they cross-check against the TOC. Content starts at the second total
// occurrence of the introduction marker (the first is the TOC row); when no
// second occurrence exists the whole stream is scanned. Lines before the
// first recognized header are discarded.
func Split(raw []string, toc book.TOC, cfg Config) []book.Section {
	if cfg.TitlePrefixMin <= 0 {
		cfg.TitlePrefixMin = 15
	}

	contentStart := 0
	introCount := 0
	for i, line := range raw {
		if strings.TrimSpace(line) == introMarker {
			introCount++
			if introCount == 2 {
				contentStart = i
				break
			}
		}
	}

	var sections []book.Section
	var current *book.Section

	for i := contentStart; i < len(raw); i++ {
		stripped := strings.TrimSpace(raw[i])
		lo := max(0, i-5)
		if id, title, page, ok := knownHeader(stripped, raw[lo:i], toc, cfg); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &book.Section{ID: id, Title: title, PageStart: page}
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, strings.TrimRight(raw[i], "\n"))
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// knownHeader reports whether a line is a genuine section header. The body
// contains cross references like "for more details, check: 50 Because...",
// so a candidate is rejected when the nearest non-blank line among the five
// preceding ones ends with a colon or comma. Otherwise the id must exist in
// the TOC and the candidate title must normalize to the TOC title exactly,
// or be a sufficiently long prefix of it (line-wrapped headers get cut off).
func knownHeader(line string, prev []string, toc book.TOC, cfg Config) (id, title string, page int, ok bool) {
	for k := len(prev) - 1; k >= 0; k-- {
		p := strings.TrimSpace(prev[k])
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, ":") || strings.HasSuffix(p, ",") {
			return "", "", 0, false
		}
		break
	}

	for _, re := range []*regexp.Regexp{lessonIDRe, appendixIDRe, listIDRe} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry, exists := toc[m[1]]
		if !exists {
			continue
		}
		cand := normalizeTitle(strings.TrimSpace(m[2]))
		want := normalizeTitle(entry.Title)
		if cand == want ||
			(utf8.RuneCountInString(cand) >= cfg.TitlePrefixMin && strings.HasPrefix(want, cand)) {
			return m[1], entry.Title, entry.Page, true
		}
	}

	if coreDictRe.MatchString(line) {
		if entry, exists := toc[book.CoreID]; exists {
			return book.CoreID, "Core Dictionary", entry.Page, true
		}
	}
	return "", "", 0, false
}
