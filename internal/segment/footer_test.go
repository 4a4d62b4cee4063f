package segment

import (
	"reflect"
	"testing"
)

func TestStripFooters_RemovesFooterAndPageCounter(t *testing.T) {
	lines := []string{
		"Some content",
		"Easy Croa!an (rev. 47b) / 05 Accusative",
		"",
		"9 / 600",
		"More content",
	}
	got := StripFooters(lines)
	want := []string{"Some content", "More content"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStripFooters_FooterWithoutPageCounter(t *testing.T) {
	lines := []string{
		"Before",
		"Easy Croa!an (rev. 47b) / Introduction",
		"After",
	}
	got := StripFooters(lines)
	want := []string{"Before", "After"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStripFooters_PlainTRendering(t *testing.T) {
	// Some extractions render the ti ligature as a plain t.
	lines := []string{
		"Easy Croatan (rev. 47b) / 12 Verbs",
		"112 / 600",
		"Content",
	}
	got := StripFooters(lines)
	want := []string{"Content"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStripFooters_KeepsUnrelatedNumericLines(t *testing.T) {
	// A stray "n / 600" line without a preceding footer stays put.
	lines := []string{"7 / 600", "Content"}
	got := StripFooters(lines)
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("expected lines unchanged, got %v", got)
	}
}

func TestStripFooters_Empty(t *testing.T) {
	if got := StripFooters(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
