package classify

import (
	"regexp"
	"strings"

	"lessongest/internal/book"
)

var (
	// A 1–2 letter uppercase line is an alphabet index marker (DŽ and LJ
	// style digraphs included).
	indexMarkerRe = regexp.MustCompile(`^[A-ZČĆĐŠŽ]{1,2}$`)

	// "word-form  pos-abbreviation  meaning" with a closed set of
	// part-of-speech abbreviations.
	dictEntryRe = regexp.MustCompile(
		`^([a-zA-ZčćđšžČĆĐŠŽ][a-zA-ZčćđšžČĆĐŠŽ\-\(\)\s/\.ª~]{0,60}?)` +
			`\s+(m|mª|f|n|adj\.|adv\.|impf\.|perf\.|v\.p\.|v\.t\.|` +
			`pass\. adj\.|rel\. adj\.|conj\.|prep\.|pron\.|num\.)` +
			`\s+(.+)$`)

	sectionRefRe = regexp.MustCompile(`§\s*\d+(?:,\s*\d+)*`)
	bracedRe     = regexp.MustCompile(`\{[^}]+\}`)
)

// ParseCoreDictionary parses the Core Dictionary section into headword
// entries. The section opens with an alphabet index (a run of 1–2 letter
// capital lines); real entries start after it. Derived-word lines ("·") and
// usage notes ("—") are skipped, as are stray index markers. Meanings have
// §-references and braced annotations stripped.
func ParseCoreDictionary(lines []string) []book.DictEntry {
	entries := []book.DictEntry{}

	// The index block is recognized when at least 5 marker lines appear
	// within 10 lines of a marker; entries begin after the contiguous run.
	alphabetEnd := 0
	for i := range lines {
		if !indexMarkerRe.MatchString(strings.TrimSpace(lines[i])) {
			continue
		}
		ahead := 0
		for _, l := range lines[i:min(i+10, len(lines))] {
			if indexMarkerRe.MatchString(strings.TrimSpace(l)) {
				ahead++
			}
		}
		if ahead >= 5 {
			j := i
			for j < len(lines) && indexMarkerRe.MatchString(strings.TrimSpace(lines[j])) {
				j++
			}
			alphabetEnd = j
			break
		}
	}

	for _, line := range lines[alphabetEnd:] {
		stripped := strings.TrimSpace(line)
		if stripped == "" ||
			strings.HasPrefix(stripped, "·") ||
			strings.HasPrefix(stripped, "—") ||
			indexMarkerRe.MatchString(stripped) {
			continue
		}
		m := dictEntryRe.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}
		word := strings.TrimSpace(m[1])
		// Long word-forms are almost always mis-matched prose.
		if len(strings.Fields(word)) > 4 {
			continue
		}
		meaning := strings.TrimSpace(sectionRefRe.ReplaceAllString(strings.TrimSpace(m[3]), ""))
		meaning = strings.TrimSpace(bracedRe.ReplaceAllString(meaning, ""))
		meaning = strings.TrimRight(meaning, ".,;")

		entries = append(entries, book.DictEntry{
			Croatian:     word,
			English:      meaning,
			PartOfSpeech: strings.TrimSpace(m[2]),
		})
	}
	return entries
}
