// Package book defines the structured representation of the parsed textbook:
// the table of contents, raw sections, and the assembled output document.
package book

// CoreID is the sentinel identifier for the Core Dictionary section, which is
// a flat glossary rather than a narrative lesson.
const CoreID = "CORE"

// TOC maps a section identifier to its declared title and starting page.
// Identifiers come in three shapes: two-digit lesson numbers ("01".."99"),
// appendix codes ("A1".."A9"), list codes ("L1".."L9"), plus the CORE
// sentinel. The TOC is built once and serves as the authoritative lookup
// when validating header candidates in the body text.
type TOC map[string]TOCEntry

// TOCEntry is one row of the table of contents.
type TOCEntry struct {
	Title string
	Page  int // 0 if the TOC row carried no page number
}

// Section is a contiguous run of source lines between two recognized
// headers. Lines still contain footers; classifiers strip them.
type Section struct {
	ID        string
	Title     string
	PageStart int
	Lines     []string
}

// VocabEntry is one term/gloss pair extracted from a lesson.
// Notes carries parenthetical inflection hints and the regional marker.
// Type is inferred and may be empty when unknown.
type VocabEntry struct {
	Croatian string `json:"croatian"`
	English  string `json:"english"`
	Notes    string `json:"notes"`
	Type     string `json:"type"`
}

// ExamplePair is a target-language sentence and its English gloss, both
// drawn from a single physical line.
type ExamplePair struct {
	Croatian string `json:"croatian"`
	English  string `json:"english"`
}

// ExerciseItem is a fill-in-the-blank prompt. Answer keys are not present
// in the source text, so Answer is always empty at parse time.
type ExerciseItem struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// Exercise is an instruction plus its fill-in items.
type Exercise struct {
	Instruction string         `json:"instruction"`
	Items       []ExerciseItem `json:"items"`
}

// Content block kinds.
const (
	BlockExplanation = "explanation"
	BlockAside       = "spi" // "Something Possibly Interesting"
)

// ContentBlock is a run of free text tagged with its kind.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Table is declared for output-shape compatibility. No detector populates
// tables; the collection is emitted empty.
type Table struct {
	Caption string     `json:"caption,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// Content is the classified content of one section.
type Content struct {
	Topics           []string       `json:"topics"`
	ContentSections  []ContentBlock `json:"content_sections"`
	Vocabulary       []VocabEntry   `json:"vocabulary"`
	ExampleSentences []ExamplePair  `json:"example_sentences"`
	Tables           []Table        `json:"tables"`
	Tips             []string       `json:"tips"`
	GrammarNotes     []string       `json:"grammar_notes"`
	Exercises        []Exercise     `json:"exercises"`
	RegionalNotes    []string       `json:"regional_notes"`
}

// Lesson is a numbered lesson with its full classified content.
type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PageStart int    `json:"page_start"`
	Content
}

// Appendix carries only prose, vocabulary and grammar notes.
type Appendix struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	PageStart    int          `json:"page_start"`
	Content      string       `json:"content"`
	Vocabulary   []VocabEntry `json:"vocabulary"`
	GrammarNotes []string     `json:"grammar_notes"`
}

// WordList carries only prose and vocabulary.
type WordList struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	PageStart  int          `json:"page_start"`
	Content    string       `json:"content"`
	Vocabulary []VocabEntry `json:"vocabulary"`
}

// DictEntry is one Core Dictionary headword.
type DictEntry struct {
	Croatian     string `json:"croatian"`
	English      string `json:"english"`
	PartOfSpeech string `json:"part_of_speech"`
}

// Metadata identifies the source document.
type Metadata struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Revision  string `json:"revision"`
	YearRange string `json:"year_range"`
	Source    string `json:"source"`
}

// Document is the assembled output: lessons sorted by numeric id, the other
// collections in encounter order.
type Document struct {
	Metadata       Metadata    `json:"metadata"`
	Lessons        []Lesson    `json:"lessons"`
	Appendices     []Appendix  `json:"appendices"`
	Lists          []WordList  `json:"lists"`
	CoreDictionary []DictEntry `json:"core_dictionary"`
}
