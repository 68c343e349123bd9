package export

import (
	"strings"
	"testing"

	"relabel/internal/models"
)

func TestPreviewTable(t *testing.T) {
	records := []models.LabelRecord{
		{Original: "a", Corrected: "A"},
		{Original: "bb", Corrected: "BB"},
		{Original: "ccc", Corrected: "CCC"},
	}

	table := PreviewTable(records, 2)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")

	// Header, separator, two record rows.
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), table)
	}

	if !strings.Contains(lines[0], "Original") || !strings.Contains(lines[0], "Corrected") {
		t.Errorf("header line = %q", lines[0])
	}

	if !strings.Contains(table, "bb") {
		t.Errorf("table misses second record:\n%s", table)
	}

	if strings.Contains(table, "ccc") {
		t.Errorf("table exceeds limit:\n%s", table)
	}

	// All rows align to the same display width.
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d width %d, want %d:\n%s", i, len(lines[i]), len(lines[0]), table)
		}
	}
}

func TestPreviewTable_NoLimit(t *testing.T) {
	records := []models.LabelRecord{
		{Original: "a", Corrected: "A"},
		{Original: "b", Corrected: "B"},
	}

	table := PreviewTable(records, 0)
	if !strings.Contains(table, "a") || !strings.Contains(table, "b") {
		t.Errorf("limit 0 should render all records:\n%s", table)
	}
}

func TestPreviewTable_Empty(t *testing.T) {
	if got := PreviewTable(nil, 5); got != "" {
		t.Errorf("PreviewTable(nil) = %q, want empty", got)
	}
}

func TestPreviewTable_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 200)

	table := PreviewTable([]models.LabelRecord{{Original: long, Corrected: "Y"}}, 1)
	if strings.Contains(table, long) {
		t.Error("long cell was not truncated")
	}

	if !strings.Contains(table, "...") {
		t.Errorf("truncated cell misses ellipsis:\n%s", table)
	}
}
