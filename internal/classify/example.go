package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"lessongest/internal/book"
)

// Two sentences on one physical line: "Croatian sentence. English sentence."
var (
	examplePairRe = regexp.MustCompile(`^([^.!?]+[.!?])\s+([A-Z(][^.!?]+[.!?]\s*®?)$`)
	sentenceEndRe = regexp.MustCompile(`[.!?]\s*®?$`)
	capitalWordRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

	// The pair regex is ambiguous for two adjacent English clauses, so a
	// first part opening like ordinary English prose is rejected.
	englishProseRe = regexp.MustCompile(
		`^(the|in|it|at|on|for|this|that|from|with|to|as|by|of|` +
			`a |an |so |but|and|or |not|no |also|such|some|most|` +
			`The|In|It|At|On|For|This|That|From|With|To|As|By|Of|` +
			`A |An |So |But|And|Or |Not|No |Also|Such|Some|Most)\s`)
)

// ParseExampleLine parses a paired sentence line like
// "Ana čita. Ana is reading." Returns nil when the line is not a pair.
// The first part must be a real sentence (at least 5 characters of content,
// at most 150), carry a diacritic or a capitalized word, and not start like
// English prose; the gloss must also stay sentence-sized.
func ParseExampleLine(line string) *book.ExamplePair {
	stripped := strings.TrimSpace(line)
	if stripped == "" || utf8.RuneCountInString(stripped) > 250 {
		return nil
	}
	if !sentenceEndRe.MatchString(stripped) {
		return nil
	}

	m := examplePairRe.FindStringSubmatch(stripped)
	if m == nil {
		return nil
	}
	croatian := strings.TrimSpace(m[1])
	english := strings.TrimSpace(m[2])

	if utf8.RuneCountInString(strings.TrimRight(croatian, ".!?")) < 5 {
		return nil
	}
	if utf8.RuneCountInString(croatian) > 150 || utf8.RuneCountInString(english) > 150 {
		return nil
	}
	if !hasDiacritic(croatian) && !capitalWordRe.MatchString(croatian) {
		return nil
	}
	if englishProseRe.MatchString(croatian) {
		return nil
	}

	return &book.ExamplePair{Croatian: croatian, English: english}
}
