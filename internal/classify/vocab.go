package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"lessongest/internal/book"
)

// A vocabulary line is "term [optional (form)] gloss [®]": short, not a
// sentence, Croatian first word, English gloss following.
var (
	vocabLineRe = regexp.MustCompile(
		`^([a-zA-ZčćđšžČĆĐŠŽ][a-zA-ZčćđšžČĆĐŠŽ\-/ ]{0,50}?(?:\([^)]+\))?)\s+` +
			`([a-z®][^.!?]*|[A-Z][a-z ,;:\-®()/]{1,100})$`)

	// A gloss starting like a continuing English sentence means the line is
	// mis-split prose, not vocabulary.
	glossContinuationRe = regexp.MustCompile(`^(The|In|It|At|On|For|This|That|These|Those|There|Here)\s+[a-z]`)

	parenNoteRe = regexp.MustCompile(`\(([^)]+)\)`)
)

// ParseVocabLine parses lines like "čitati read" or "ležati (leži) lie down ®".
// Returns nil when the line is not a vocabulary entry. Acceptance requires the
// term's first token to look Croatian; parenthetical inflection hints and the
// regional marker move into Notes, and Type is "verb" when a parenthetical was
// present or the term matches the infinitive suffix pattern.
func ParseVocabLine(line string) *book.VocabEntry {
	stripped := strings.TrimSpace(line)
	if stripped == "" || utf8.RuneCountInString(stripped) > 120 {
		return nil
	}
	if strings.HasSuffix(stripped, ":") {
		return nil
	}
	// An unterminated parenthetical is wrapped prose.
	if strings.HasPrefix(stripped, "(") && !strings.Contains(stripped, ")") {
		return nil
	}

	m := vocabLineRe.FindStringSubmatch(stripped)
	if m == nil {
		return nil
	}
	croatian := strings.TrimSpace(m[1])
	english := strings.TrimSpace(m[2])

	fields := strings.Fields(croatian)
	if len(fields) == 0 {
		return nil
	}
	if !looksCroatian(strings.TrimRight(fields[0], "()")) {
		return nil
	}
	if glossContinuationRe.MatchString(english) {
		return nil
	}

	parenNote := ""
	if loc := parenNoteRe.FindStringIndex(croatian); loc != nil {
		parenNote = croatian[loc[0]:loc[1]]
		croatian = strings.TrimSpace(croatian[:loc[0]])
	}

	regional := ""
	if strings.Contains(english, regionalMarker) {
		regional = regionalMarker
		english = strings.TrimSpace(strings.ReplaceAll(english, regionalMarker, ""))
	}

	var noteParts []string
	for _, p := range []string{parenNote, regional} {
		if p != "" {
			noteParts = append(noteParts, p)
		}
	}

	wordType := ""
	remaining := strings.Fields(croatian)
	if parenNote != "" || (len(remaining) > 0 && infinitiveRe.MatchString(remaining[0])) {
		wordType = "verb"
	}

	return &book.VocabEntry{
		Croatian: croatian,
		English:  strings.TrimRight(english, ".,"),
		Notes:    strings.Join(noteParts, " "),
		Type:     wordType,
	}
}
