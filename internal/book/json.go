package book

import (
	"encoding/json"
	"io"
)

// Encode writes the document as 2-space-indented JSON. HTML escaping is
// disabled so diacritics and markers like "®" stay readable in the output.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
