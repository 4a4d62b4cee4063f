// Package segment locates the table of contents in a raw line stream and
// partitions the body into named sections, using the TOC as ground truth
// for header recognition.
package segment

import (
	"regexp"
	"strings"
)

// The source PDF stamps every page with a footer line followed by an
// optional blank gap and a page counter out of the fixed total.
var (
	footerRe   = regexp.MustCompile(`^Easy Croa[!t]an \(rev\. 47b\) / .+$`)
	pageLineRe = regexp.MustCompile(`^(\d+) / 600$`)
)

// StripFooters removes every footer occurrence: the stamped footer line, any
// blank lines after it, and the page counter when present. All other lines
// keep their original relative order.
func StripFooters(lines []string) []string {
	clean := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		if footerRe.MatchString(strings.TrimSpace(lines[i])) {
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
			if i < len(lines) && pageLineRe.MatchString(strings.TrimSpace(lines[i])) {
				i++
			}
			continue
		}
		clean = append(clean, lines[i])
		i++
	}
	return clean
}
