package source

import (
	"bufio"
	"io"
)

// TextLoader reads a plain text extraction line by line. This is the
// primary path: the pdftotext dump of the book.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
