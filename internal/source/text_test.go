package source

import (
	"reflect"
	"strings"
	"testing"
)

func TestTextLoader_PreservesLines(t *testing.T) {
	input := "Contents\n\n01 Alphabet\n5\n"
	l := &TextLoader{}
	lines, err := l.Load(strings.NewReader(input), "extracted_text.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Contents", "", "01 Alphabet", "5"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %v, got %v", want, lines)
	}
}

func TestTextLoader_EmptyInput(t *testing.T) {
	l := &TextLoader{}
	lines, err := l.Load(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"book.txt", false},
		{"book.md", false},
		{"book.markdown", false},
		{"book.html", false},
		{"book.htm", false},
		{"book.pdf", false},
		{"book.docx", false},
		{"book.csv", true},
		{"book", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q): err=%v, wantErr=%v", tt.filename, err, tt.wantErr)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("Book.TXT") {
		t.Error("expected extension check to be case-insensitive")
	}
	if IsSupportedExtension("book.exe") {
		t.Error("expected .exe unsupported")
	}
}
