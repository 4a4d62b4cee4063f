// Package classify turns a section's raw lines into structured content by
// running an ordered chain of line and block detectors, and parses the Core
// Dictionary glossary.
package classify

import (
	"regexp"
	"strings"
)

// The regional marker flags Serbian/Bosnian dialect variants in the source.
const regionalMarker = "®"

const croatianDiacritics = "čćđšžČĆĐŠŽ"

// Croatian infinitives end in a small closed set of suffixes; together with
// diacritics this is the "looks Croatian" acceptance heuristic.
var infinitiveRe = regexp.MustCompile(`(?i)^[a-zčćđšž]+(ati|iti|eti|ovati|ivati|nuti|sti|ći)$`)

func hasDiacritic(s string) bool {
	return strings.ContainsAny(s, croatianDiacritics)
}

func looksCroatian(word string) bool {
	return hasDiacritic(word) || infinitiveRe.MatchString(word)
}
