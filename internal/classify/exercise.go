package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"lessongest/internal/book"
)

// Block markers used by the lesson layout.
var (
	exerciseMarkerRe = regexp.MustCompile(`^• Exercise$`)
	asideMarkerRe    = regexp.MustCompile(`^• Something Possibly Interesting$`)
	separatorRe      = regexp.MustCompile(`^_{4,}$`)
	fillInRe         = regexp.MustCompile(`_{4,}`)
)

// parseExerciseBlock consumes an exercise starting at the "• Exercise"
// marker and returns the exercise plus the index of the first unconsumed
// line. Lines before the first fill-in item form the instruction; items are
// lines containing a blank run of underscores. The block ends at the next
// exercise/aside/separator marker or a "Check answers" line.
func parseExerciseBlock(lines []string, start int) (book.Exercise, int) {
	ex := book.Exercise{Items: []book.ExerciseItem{}}
	var instruction []string

	i := start + 1
	for i < len(lines) {
		stripped := strings.TrimSpace(lines[i])
		if exerciseMarkerRe.MatchString(stripped) || asideMarkerRe.MatchString(stripped) ||
			separatorRe.MatchString(stripped) {
			break
		}
		if strings.HasPrefix(stripped, "Check answers") {
			i++
			break
		}
		if fillInRe.MatchString(stripped) && utf8.RuneCountInString(stripped) > 4 {
			ex.Items = append(ex.Items, book.ExerciseItem{Prompt: stripped})
		} else if len(ex.Items) == 0 && stripped != "" {
			instruction = append(instruction, stripped)
		}
		i++
	}

	ex.Instruction = strings.TrimSpace(strings.Join(instruction, " "))
	return ex, i
}
