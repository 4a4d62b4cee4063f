// Package source converts raw document bytes into the flat line stream the
// segmentation engine consumes. The textbook circulates in several forms
// (the pdftotext dump, the PDF itself, HTML/Markdown conversions, a docx
// copy); each gets its own loader.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Loader produces the line stream for one input format.
type Loader interface {
	Load(r io.Reader, filename string) ([]string, error)
}

// SupportedExtensions lists file extensions this module can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate loader for a filename.
func ForFile(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextLoader{}, nil
	case ".md", ".markdown":
		return &MarkdownLoader{}, nil
	case ".html", ".htm":
		return &HTMLLoader{}, nil
	case ".pdf":
		return &PDFLoader{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
