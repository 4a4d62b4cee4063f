// Package assemble routes classified sections into the output document and
// checks its structural invariants.
package assemble

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"lessongest/internal/book"
	"lessongest/internal/classify"
	"lessongest/internal/segment"
)

// Config carries the engine tuning used while building a document.
type Config struct {
	Splitter segment.Config
	Classify classify.Config

	// Workers bounds concurrent section classification; sections are
	// independent, so this is purely a throughput knob. <=1 runs
	// sequentially.
	Workers int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Splitter: segment.DefaultConfig(),
		Classify: classify.DefaultConfig(),
		Workers:  1,
	}
}

// Collection routing shapes.
var (
	appendixShapeRe = regexp.MustCompile(`^A\d$`)
	listShapeRe     = regexp.MustCompile(`^L\d$`)
	lessonShapeRe   = regexp.MustCompile(`^\d{2}$`)
)

// DefaultMetadata describes the source document.
func DefaultMetadata() book.Metadata {
	return book.Metadata{
		Title:     "Easy Croatian",
		Author:    "Daniel N.",
		Revision:  "47b",
		YearRange: "2009-2019",
		Source:    "easy-croatian.com",
	}
}

// Build runs the full pipeline over raw extracted lines: TOC extraction,
// section splitting, per-section classification, and assembly.
func Build(raw []string, cfg Config) *book.Document {
	toc := segment.ParseTOC(raw)
	sections := segment.Split(raw, toc, cfg.Splitter)
	contents := ClassifyAll(sections, cfg, nil)
	return Compose(sections, contents)
}

// ClassifyAll classifies every non-CORE section, fanning out across a
// bounded worker pool when cfg.Workers allows. Results keep section order;
// onDone, when non-nil, is called once per classified section.
func ClassifyAll(sections []book.Section, cfg Config, onDone func(i int)) []book.Content {
	contents := make([]book.Content, len(sections))

	if cfg.Workers <= 1 || len(sections) < 2 {
		for i, sec := range sections {
			if sec.ID == book.CoreID {
				continue
			}
			contents[i] = classify.Section(sec, cfg.Classify)
			if onDone != nil {
				onDone(i)
			}
		}
		return contents
	}

	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	for i, sec := range sections {
		if sec.ID == book.CoreID {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sec book.Section) {
			defer wg.Done()
			defer func() { <-sem }()
			contents[i] = classify.Section(sec, cfg.Classify)
			if onDone != nil {
				mu.Lock()
				onDone(i)
				mu.Unlock()
			}
		}(i, sec)
	}
	wg.Wait()
	return contents
}

// Compose routes each section by identifier shape into exactly one output
// collection: CORE becomes the flat dictionary, A\d an appendix, L\d a
// list, everything else a lesson. Lessons are sorted ascending by numeric
// id; the other collections keep encounter order. contents must be indexed
// parallel to sections (the CORE slot is ignored).
func Compose(sections []book.Section, contents []book.Content) *book.Document {
	doc := &book.Document{
		Metadata:       DefaultMetadata(),
		Lessons:        []book.Lesson{},
		Appendices:     []book.Appendix{},
		Lists:          []book.WordList{},
		CoreDictionary: []book.DictEntry{},
	}

	for i, sec := range sections {
		if sec.ID == book.CoreID {
			doc.CoreDictionary = classify.ParseCoreDictionary(segment.StripFooters(sec.Lines))
			continue
		}
		content := contents[i]
		switch {
		case appendixShapeRe.MatchString(sec.ID):
			doc.Appendices = append(doc.Appendices, book.Appendix{
				ID:           sec.ID,
				Title:        sec.Title,
				PageStart:    sec.PageStart,
				Content:      joinBlocks(content.ContentSections),
				Vocabulary:   content.Vocabulary,
				GrammarNotes: content.GrammarNotes,
			})
		case listShapeRe.MatchString(sec.ID):
			doc.Lists = append(doc.Lists, book.WordList{
				ID:         sec.ID,
				Title:      sec.Title,
				PageStart:  sec.PageStart,
				Content:    joinBlocks(content.ContentSections),
				Vocabulary: content.Vocabulary,
			})
		default:
			doc.Lessons = append(doc.Lessons, book.Lesson{
				ID:        sec.ID,
				Title:     sec.Title,
				PageStart: sec.PageStart,
				Content:   content,
			})
		}
	}

	sort.SliceStable(doc.Lessons, func(i, j int) bool {
		a, _ := strconv.Atoi(doc.Lessons[i].ID)
		b, _ := strconv.Atoi(doc.Lessons[j].ID)
		return a < b
	})
	return doc
}

func joinBlocks(blocks []book.ContentBlock) string {
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	return strings.Join(texts, "\n\n")
}
