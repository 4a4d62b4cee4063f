package classify

import (
	"regexp"
	"strings"

	"lessongest/internal/book"
	"lessongest/internal/segment"
)

// Config controls classification.
type Config struct {
	// MaxTopics caps the derived topic tag list.
	MaxTopics int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{MaxTopics: 10}
}

var (
	tipRe = regexp.MustCompile(`(?i)^(Warning\.|A (warning|suggestion|note)\.|Note\.|Tip\.)`)

	grammarTermRe = regexp.MustCompile(
		`(?i)\b(accusative|genitive|dative|locative|instrumental|nominative|vocative` +
			`|infinitive|present tense|past tense|future tense)\b`)
)

// scanner carries the mutable accumulation state threaded through one
// left-to-right pass over a section's lines.
type scanner struct {
	lines   []string
	content *book.Content

	textBuf     []string
	regionalBuf []string
	inRegional  bool
}

// flushText closes the current explanation block, if any text accumulated.
func (sc *scanner) flushText() {
	text := strings.TrimSpace(strings.Join(sc.textBuf, "\n"))
	if text != "" {
		sc.content.ContentSections = append(sc.content.ContentSections,
			book.ContentBlock{Type: book.BlockExplanation, Text: text})
	}
	sc.textBuf = sc.textBuf[:0]
}

// flushRegional closes the current regional aside and leaves regional mode.
func (sc *scanner) flushRegional() {
	text := strings.TrimSpace(strings.Join(sc.regionalBuf, "\n"))
	if text != "" {
		sc.content.RegionalNotes = append(sc.content.RegionalNotes, text)
	}
	sc.regionalBuf = sc.regionalBuf[:0]
	sc.inRegional = false
}

func (sc *scanner) flushAll() {
	sc.flushText()
	if sc.inRegional {
		sc.flushRegional()
	}
}

// detector is one entry of the ordered classification chain. match inspects
// the cursor position; consume takes it and returns the next cursor. The
// first matching detector wins, so later detectors can assume earlier ones
// already consumed their blocks.
type detector struct {
	name    string
	match   func(sc *scanner, i int, stripped string) bool
	consume func(sc *scanner, i int, stripped string) int
}

var detectors = []detector{
	{
		name: "exercise",
		match: func(sc *scanner, i int, stripped string) bool {
			return exerciseMarkerRe.MatchString(stripped)
		},
		consume: func(sc *scanner, i int, stripped string) int {
			sc.flushAll()
			ex, next := parseExerciseBlock(sc.lines, i)
			sc.content.Exercises = append(sc.content.Exercises, ex)
			return next
		},
	},
	{
		name: "aside",
		match: func(sc *scanner, i int, stripped string) bool {
			return asideMarkerRe.MatchString(stripped)
		},
		consume: func(sc *scanner, i int, stripped string) int {
			sc.flushAll()
			var aside []string
			i++
			for i < len(sc.lines) {
				s := strings.TrimSpace(sc.lines[i])
				if exerciseMarkerRe.MatchString(s) || separatorRe.MatchString(s) ||
					asideMarkerRe.MatchString(s) {
					break
				}
				aside = append(aside, strings.TrimRight(sc.lines[i], " \t\r\n"))
				i++
			}
			if text := strings.TrimSpace(strings.Join(aside, "\n")); text != "" {
				sc.content.ContentSections = append(sc.content.ContentSections,
					book.ContentBlock{Type: book.BlockAside, Text: text})
			}
			return i
		},
	},
	{
		name: "separator",
		match: func(sc *scanner, i int, stripped string) bool {
			return separatorRe.MatchString(stripped)
		},
		consume: func(sc *scanner, i int, stripped string) int {
			// A separator always opens regional mode; a second one in a
			// row flushes the block it closed first.
			sc.flushAll()
			sc.inRegional = true
			return i + 1
		},
	},
	{
		name: "tip",
		match: func(sc *scanner, i int, stripped string) bool {
			return tipRe.MatchString(stripped)
		},
		consume: func(sc *scanner, i int, stripped string) int {
			sc.flushAll()
			parts := []string{stripped}
			i++
			for i < len(sc.lines) {
				s := strings.TrimSpace(sc.lines[i])
				if s == "" || separatorRe.MatchString(s) || exerciseMarkerRe.MatchString(s) {
					break
				}
				parts = append(parts, s)
				i++
			}
			sc.content.Tips = append(sc.content.Tips, strings.Join(parts, " "))
			return i
		},
	},
	{
		name: "regional",
		match: func(sc *scanner, i int, stripped string) bool {
			return sc.inRegional
		},
		consume: func(sc *scanner, i int, stripped string) int {
			sc.regionalBuf = append(sc.regionalBuf, stripped)
			return i + 1
		},
	},
	{
		name: "example",
		match: func(sc *scanner, i int, stripped string) bool {
			return ParseExampleLine(sc.lines[i]) != nil
		},
		consume: func(sc *scanner, i int, stripped string) int {
			sc.flushText()
			pair := ParseExampleLine(sc.lines[i])
			sc.content.ExampleSentences = append(sc.content.ExampleSentences, *pair)
			return i + 1
		},
	},
	{
		name: "vocab",
		match: func(sc *scanner, i int, stripped string) bool {
			return ParseVocabLine(sc.lines[i]) != nil
		},
		consume: func(sc *scanner, i int, stripped string) int {
			sc.flushText()
			entry := ParseVocabLine(sc.lines[i])
			sc.content.Vocabulary = append(sc.content.Vocabulary, *entry)
			return i + 1
		},
	},
	{
		// Default: grammar-term lines are recorded as grammar notes but
		// still accumulate into the explanation text.
		name: "text",
		match: func(sc *scanner, i int, stripped string) bool {
			return true
		},
		consume: func(sc *scanner, i int, stripped string) int {
			if grammarTermRe.MatchString(stripped) {
				sc.content.GrammarNotes = append(sc.content.GrammarNotes, stripped)
			}
			sc.textBuf = append(sc.textBuf, strings.TrimRight(sc.lines[i], " \t\r\n"))
			return i + 1
		},
	},
}

// Section classifies one section's lines into structured content. Footers
// are stripped first; the detector chain then runs at each cursor position
// in precedence order. Topic tags are derived after the pass from the title
// plus all content section text.
func Section(sec book.Section, cfg Config) book.Content {
	content := emptyContent()
	sc := &scanner{
		lines:   segment.StripFooters(sec.Lines),
		content: &content,
	}

	i := 0
	for i < len(sc.lines) {
		stripped := strings.TrimSpace(sc.lines[i])
		for _, d := range detectors {
			if d.match(sc, i, stripped) {
				i = d.consume(sc, i, stripped)
				break
			}
		}
	}
	sc.flushAll()

	texts := make([]string, 0, len(content.ContentSections))
	for _, cs := range content.ContentSections {
		texts = append(texts, cs.Text)
	}
	content.Topics = Topics(sec.Title, strings.Join(texts, " "), cfg.MaxTopics)
	return content
}

// emptyContent initializes every collection so the output marshals as []
// rather than null.
func emptyContent() book.Content {
	return book.Content{
		Topics:           []string{},
		ContentSections:  []book.ContentBlock{},
		Vocabulary:       []book.VocabEntry{},
		ExampleSentences: []book.ExamplePair{},
		Tables:           []book.Table{},
		Tips:             []string{},
		GrammarNotes:     []string{},
		Exercises:        []book.Exercise{},
		RegionalNotes:    []string{},
	}
}
