package classify

import (
	"testing"
)

func TestParseExerciseBlock_InstructionAndItems(t *testing.T) {
	lines := []string{
		"• Exercise",
		"Fill in the correct form",
		"of the verb in brackets:",
		"1. Ana ____ knjigu. (čitati)",
		"2. Mi ____ kavu. (piti)",
		"Check answers in the key at the back.",
		"Following prose.",
	}
	ex, next := parseExerciseBlock(lines, 0)

	if ex.Instruction != "Fill in the correct form of the verb in brackets:" {
		t.Errorf("unexpected instruction %q", ex.Instruction)
	}
	if len(ex.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(ex.Items))
	}
	if ex.Items[0].Prompt != "1. Ana ____ knjigu. (čitati)" {
		t.Errorf("unexpected first prompt %q", ex.Items[0].Prompt)
	}
	if ex.Items[0].Answer != "" {
		t.Errorf("expected empty answer, got %q", ex.Items[0].Answer)
	}
	// The "Check answers" line is consumed with the block.
	if next != 6 {
		t.Errorf("expected next index 6, got %d", next)
	}
}

func TestParseExerciseBlock_EndsAtNextMarker(t *testing.T) {
	lines := []string{
		"• Exercise",
		"Translate:",
		"1. Ja ____ čitam.",
		"• Exercise",
		"Second instruction:",
	}
	ex, next := parseExerciseBlock(lines, 0)
	if len(ex.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(ex.Items))
	}
	if next != 3 {
		t.Errorf("expected block to stop at the next marker (index 3), got %d", next)
	}
}

func TestParseExerciseBlock_EndsAtSeparator(t *testing.T) {
	lines := []string{
		"• Exercise",
		"Do this:",
		"a ____ b",
		"______________",
		"regional text",
	}
	_, next := parseExerciseBlock(lines, 0)
	if next != 3 {
		t.Errorf("expected block to stop at the separator (index 3), got %d", next)
	}
}

func TestParseExerciseBlock_InstructionStopsAfterFirstItem(t *testing.T) {
	lines := []string{
		"• Exercise",
		"Fill in:",
		"1. Ana ____ kavu.",
		"stray line between items",
		"2. Mi ____ vodu.",
	}
	ex, _ := parseExerciseBlock(lines, 0)
	if ex.Instruction != "Fill in:" {
		t.Errorf("expected the stray line excluded from the instruction, got %q", ex.Instruction)
	}
	if len(ex.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(ex.Items))
	}
}

func TestParseExerciseBlock_NoItems(t *testing.T) {
	lines := []string{
		"• Exercise",
		"Read the dialogue aloud.",
	}
	ex, next := parseExerciseBlock(lines, 0)
	if ex.Instruction != "Read the dialogue aloud." {
		t.Errorf("unexpected instruction %q", ex.Instruction)
	}
	if len(ex.Items) != 0 {
		t.Errorf("expected no items, got %d", len(ex.Items))
	}
	if next != 2 {
		t.Errorf("expected next index 2, got %d", next)
	}
}
