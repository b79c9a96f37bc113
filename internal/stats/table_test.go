package stats

import "testing"

func TestTableAlignsColumns(t *testing.T) {
	cols := []column{{Header: "Word"}, {Header: "Weight", Right: true}, {Header: "Missed", Right: true}}
	rows := [][]string{
		{"add", "50.0", "0"},
		{"subtract", "108.0", "12"},
	}

	lines := table(cols, rows)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word     Weight Missed" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "add        50.0      0" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "subtract  108.0     12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTableWideRunes(t *testing.T) {
	lines := table([]column{{Header: "Word"}, {Header: "N", Right: true}}, [][]string{{"日本", "1"}, {"ab", "2"}})
	if lines[2] != "ab   2" {
		t.Fatalf("expected padding to the double-width cell, got %q", lines[2])
	}
}

func TestTableClipsLongCells(t *testing.T) {
	cols := []column{{Header: "Word", Max: 6}, {Header: "Weight", Right: true}}
	lines := table(cols, [][]string{{"antidisestablishment", "103.0"}, {"add", "50.0"}})
	if lines[1] != "antid~  103.0" {
		t.Fatalf("expected clipped word, got %q", lines[1])
	}
	if lines[2] != "add      50.0" {
		t.Fatalf("unexpected short row: %q", lines[2])
	}
}

func TestTableTrimsTrailingBlanks(t *testing.T) {
	lines := table([]column{{Header: "Word"}, {Header: ""}}, [][]string{{"add", ""}, {"subtract", "##"}})
	if lines[0] != "Word" || lines[1] != "add" {
		t.Fatalf("expected trailing blanks trimmed, got %q", lines)
	}
}
