package assemble

import "lessongest/internal/book"

// Counts summarizes an assembled document for progress reporting and the
// service API.
type Counts struct {
	Lessons           int `json:"lessons"`
	Appendices        int `json:"appendices"`
	Lists             int `json:"lists"`
	DictionaryEntries int `json:"dictionary_entries"`
	VocabularyEntries int `json:"vocabulary_entries"`
	ExampleSentences  int `json:"example_sentences"`
	Exercises         int `json:"exercises"`
	Tips              int `json:"tips"`
}

// Count tallies the collections of a document.
func Count(doc *book.Document) Counts {
	c := Counts{
		Lessons:           len(doc.Lessons),
		Appendices:        len(doc.Appendices),
		Lists:             len(doc.Lists),
		DictionaryEntries: len(doc.CoreDictionary),
	}
	for _, l := range doc.Lessons {
		c.VocabularyEntries += len(l.Vocabulary)
		c.ExampleSentences += len(l.ExampleSentences)
		c.Exercises += len(l.Exercises)
		c.Tips += len(l.Tips)
	}
	for _, a := range doc.Appendices {
		c.VocabularyEntries += len(a.Vocabulary)
	}
	for _, l := range doc.Lists {
		c.VocabularyEntries += len(l.Vocabulary)
	}
	return c
}
