package assemble

import (
	"fmt"
	"strconv"

	"lessongest/internal/book"
)

// Validate checks the structural invariants of an assembled document:
// every record sits in the collection matching its identifier shape, CORE
// appears in none of them, and lessons are strictly ascending by numeric
// id. The engine itself is best-effort and never asserts these; callers
// opt in (tests, the CLI --check flag).
func Validate(doc *book.Document) error {
	for i, l := range doc.Lessons {
		if !lessonShapeRe.MatchString(l.ID) {
			return fmt.Errorf("lesson %d: id %q does not match the two-digit lesson shape", i, l.ID)
		}
	}
	for i, a := range doc.Appendices {
		if !appendixShapeRe.MatchString(a.ID) {
			return fmt.Errorf("appendix %d: id %q does not match the A-digit shape", i, a.ID)
		}
	}
	for i, l := range doc.Lists {
		if !listShapeRe.MatchString(l.ID) {
			return fmt.Errorf("list %d: id %q does not match the L-digit shape", i, l.ID)
		}
	}
	for i := 1; i < len(doc.Lessons); i++ {
		prev, _ := strconv.Atoi(doc.Lessons[i-1].ID)
		cur, _ := strconv.Atoi(doc.Lessons[i].ID)
		if prev >= cur {
			return fmt.Errorf("lessons out of order: %q before %q", doc.Lessons[i-1].ID, doc.Lessons[i].ID)
		}
	}
	return nil
}
