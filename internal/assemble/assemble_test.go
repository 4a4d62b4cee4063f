package assemble

import (
	"reflect"
	"sync"
	"testing"

	"lessongest/internal/book"
)

func sectionFixture() []book.Section {
	return []book.Section{
		{ID: "05", Title: "Accusative", PageStart: 40, Lines: []string{
			"The accusative marks the object.",
			"čitati read",
		}},
		{ID: "01", Title: "Alphabet", PageStart: 5, Lines: []string{
			"Ana čita. Ana is reading.",
		}},
		{ID: "A1", Title: "Abbreviations", PageStart: 550, Lines: []string{
			"Appendix prose.",
			"ležati (leži) lie down ®",
		}},
		{ID: "L1", Title: "Animals", PageStart: 560, Lines: []string{
			"mačka cat",
		}},
		{ID: book.CoreID, Title: "Core Dictionary", PageStart: 570, Lines: []string{
			"A", "B", "C", "D", "E",
			"biti v.p. be",
			"kuća f house",
		}},
	}
}

func TestBuildSectionRouting(t *testing.T) {
	cfg := DefaultConfig()
	sections := sectionFixture()
	contents := ClassifyAll(sections, cfg, nil)
	doc := Compose(sections, contents)

	if len(doc.Lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(doc.Lessons))
	}
	// Lessons come out sorted by numeric id, regardless of input order.
	if doc.Lessons[0].ID != "01" || doc.Lessons[1].ID != "05" {
		t.Errorf("expected lessons sorted 01, 05; got %s, %s", doc.Lessons[0].ID, doc.Lessons[1].ID)
	}

	if len(doc.Appendices) != 1 || doc.Appendices[0].ID != "A1" {
		t.Fatalf("unexpected appendices %+v", doc.Appendices)
	}
	if doc.Appendices[0].Content != "Appendix prose." {
		t.Errorf("unexpected appendix content %q", doc.Appendices[0].Content)
	}
	if len(doc.Appendices[0].Vocabulary) != 1 {
		t.Errorf("expected appendix vocabulary carried over, got %+v", doc.Appendices[0].Vocabulary)
	}

	if len(doc.Lists) != 1 || doc.Lists[0].ID != "L1" {
		t.Fatalf("unexpected lists %+v", doc.Lists)
	}

	if len(doc.CoreDictionary) != 2 {
		t.Fatalf("expected 2 dictionary entries, got %d", len(doc.CoreDictionary))
	}
	if doc.CoreDictionary[0].Croatian != "biti" {
		t.Errorf("unexpected first dictionary entry %+v", doc.CoreDictionary[0])
	}
}

func TestComposeEachSectionInExactlyOneCollection(t *testing.T) {
	sections := sectionFixture()
	contents := ClassifyAll(sections, DefaultConfig(), nil)
	doc := Compose(sections, contents)

	total := len(doc.Lessons) + len(doc.Appendices) + len(doc.Lists)
	if total != len(sections)-1 { // CORE routes to the flat dictionary
		t.Errorf("expected %d routed sections, got %d", len(sections)-1, total)
	}
	if err := Validate(doc); err != nil {
		t.Errorf("expected valid document, got %v", err)
	}
}

func TestClassifyAllSkipsCore(t *testing.T) {
	sections := sectionFixture()
	contents := ClassifyAll(sections, DefaultConfig(), nil)
	// The CORE slot stays zero-valued; its lines go through the dictionary
	// parser during composition instead.
	core := contents[4]
	if len(core.Vocabulary) != 0 || len(core.ContentSections) != 0 {
		t.Errorf("expected CORE slot untouched, got %+v", core)
	}
}

func TestClassifyAllConcurrentMatchesSequential(t *testing.T) {
	sections := sectionFixture()

	seq := ClassifyAll(sections, DefaultConfig(), nil)

	cfg := DefaultConfig()
	cfg.Workers = 4
	var mu sync.Mutex
	done := 0
	par := ClassifyAll(sections, cfg, func(int) {
		mu.Lock()
		done++
		mu.Unlock()
	})

	if !reflect.DeepEqual(seq, par) {
		t.Error("expected identical results from sequential and concurrent classification")
	}
	if done != len(sections)-1 {
		t.Errorf("expected %d completion callbacks, got %d", len(sections)-1, done)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	doc := Build(nil, DefaultConfig())
	if doc == nil {
		t.Fatal("expected a document")
	}
	if len(doc.Lessons) != 0 || len(doc.Appendices) != 0 || len(doc.Lists) != 0 || len(doc.CoreDictionary) != 0 {
		t.Errorf("expected empty collections, got %+v", doc)
	}
	if doc.Metadata.Title != "Easy Croatian" {
		t.Errorf("expected fixed metadata, got %+v", doc.Metadata)
	}
	if err := Validate(doc); err != nil {
		t.Errorf("expected empty document to validate, got %v", err)
	}
}

func TestCount(t *testing.T) {
	sections := sectionFixture()
	contents := ClassifyAll(sections, DefaultConfig(), nil)
	doc := Compose(sections, contents)

	c := Count(doc)
	if c.Lessons != 2 || c.Appendices != 1 || c.Lists != 1 || c.DictionaryEntries != 2 {
		t.Errorf("unexpected collection counts %+v", c)
	}
	// čitati (lesson), ležati (appendix), mačka (list)
	if c.VocabularyEntries != 3 {
		t.Errorf("expected 3 vocabulary entries, got %d", c.VocabularyEntries)
	}
	if c.ExampleSentences != 1 {
		t.Errorf("expected 1 example sentence, got %d", c.ExampleSentences)
	}
}

func TestValidateRejectsMisrouted(t *testing.T) {
	doc := &book.Document{
		Lessons: []book.Lesson{{ID: "A1"}},
	}
	if err := Validate(doc); err == nil {
		t.Error("expected error for appendix id in the lessons collection")
	}

	doc = &book.Document{
		Lessons: []book.Lesson{{ID: "05"}, {ID: "03"}},
	}
	if err := Validate(doc); err == nil {
		t.Error("expected error for out-of-order lessons")
	}
}
