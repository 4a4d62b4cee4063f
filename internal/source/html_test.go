package source

import (
	"strings"
	"testing"
)

func TestHTMLLoader_BlocksBecomeLines(t *testing.T) {
	input := `<html><body>
<h2>01 Alphabet</h2>
<p>Some prose.</p>
<script>ignored()</script>
<nav>skip this</nav>
</body></html>`
	l := &HTMLLoader{}
	lines, err := l.Load(strings.NewReader(input), "book.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "01 Alphabet") {
		t.Errorf("expected heading text, got %q", joined)
	}
	if !strings.Contains(joined, "Some prose.") {
		t.Errorf("expected paragraph text, got %q", joined)
	}
	if strings.Contains(joined, "ignored()") || strings.Contains(joined, "skip this") {
		t.Errorf("expected script and nav skipped, got %q", joined)
	}
}

func TestHTMLLoader_ListItems(t *testing.T) {
	input := `<html><body><ul><li>mačka cat</li><li>pas dog</li></ul></body></html>`
	l := &HTMLLoader{}
	lines, err := l.Load(strings.NewReader(input), "book.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "mačka cat") || !strings.Contains(joined, "pas dog") {
		t.Errorf("expected list items as lines, got %q", joined)
	}
}
