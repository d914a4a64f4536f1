package tui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/retype/internal/session"
)

func typedStrings(cells []cellPair) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.typed.s
	}
	return out
}

func TestBuildCellsVerdicts(t *testing.T) {
	target := []rune("cat")
	verdicts := []session.Verdict{session.Match, session.Match, session.Mismatch}

	cells := buildCells(target, verdicts, 3, plainPalette())
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells including trailing cursor, got %d", len(cells))
	}
	want := []string{"c", "a", "█", "_"}
	if got := typedStrings(cells); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected typed row: %q", got)
	}
}

func TestBuildCellsCursorOnPending(t *testing.T) {
	target := []rune("ab")
	verdicts := []session.Verdict{session.Match, session.Pending}

	cells := buildCells(target, verdicts, 1, plainPalette())
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[1].typed.s != "_" {
		t.Fatalf("expected cursor marker, got %q", cells[1].typed.s)
	}
	if cells[1].target.s != "b" {
		t.Fatalf("expected target rune to stay visible, got %q", cells[1].target.s)
	}
}

func TestBuildCellsPendingIsBlank(t *testing.T) {
	target := []rune("abc")
	verdicts := []session.Verdict{session.Pending, session.Pending, session.Pending}

	cells := buildCells(target, verdicts, 0, plainPalette())
	if cells[2].typed.s != " " {
		t.Fatalf("expected blank pending cell, got %q", cells[2].typed.s)
	}
}

func TestBuildCellsWideRunesKeepAlignment(t *testing.T) {
	target := []rune("日x")
	verdicts := []session.Verdict{session.Mismatch, session.Pending}

	cells := buildCells(target, verdicts, 1, plainPalette())
	if cells[0].target.width != 2 || cells[0].typed.width != 2 {
		t.Fatalf("expected width 2 cells, got %d/%d", cells[0].target.width, cells[0].typed.width)
	}
	if cells[0].typed.s != "█ " {
		t.Fatalf("expected padded mismatch marker, got %q", cells[0].typed.s)
	}
}

func TestFindWordsAndCursorWord(t *testing.T) {
	words := findWords([]rune("one two"))
	if len(words) != 2 || words[0] != (wordRange{0, 3}) || words[1] != (wordRange{4, 7}) {
		t.Fatalf("unexpected words: %+v", words)
	}
	if w := wordForCursor(words, 1); w == nil || *w != words[0] {
		t.Fatalf("expected first word for cursor 1, got %+v", w)
	}
	if w := wordForCursor(words, 3); w == nil || *w != words[1] {
		t.Fatalf("expected next word for cursor on space, got %+v", w)
	}
	if w := wordForCursor(words, 7); w != nil {
		t.Fatalf("expected no word past the end, got %+v", w)
	}
}

func spansFor(text string, width int) []span {
	target := []rune(text)
	verdicts := make([]session.Verdict, len(target))
	return wrapSpans(buildCells(target, verdicts, -1, plainPalette()), width)
}

func TestWrapSpansBreaksAfterSpace(t *testing.T) {
	got := spansFor("one two three", 7)
	want := []span{{0, 8}, {8, 13}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected spans: %+v", got)
	}
}

func TestWrapSpansSplitsLongWord(t *testing.T) {
	got := spansFor("abcdefgh", 3)
	want := []span{{0, 3}, {3, 6}, {6, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected spans: %+v", got)
	}
}

func TestWrapSpansNoWidth(t *testing.T) {
	got := spansFor("one two", 0)
	if !reflect.DeepEqual(got, []span{{0, 7}}) {
		t.Fatalf("expected single span, got %+v", got)
	}
}

func TestWrapSpansTrailingSpacesOvershootWidth(t *testing.T) {
	got := spansFor("ab   cd", 3)
	want := []span{{0, 5}, {5, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected spans: %+v", got)
	}
}

func TestRenderCellsPairsRows(t *testing.T) {
	target := []rune("ab cd")
	verdicts := []session.Verdict{session.Match, session.Mismatch, session.Pending, session.Pending, session.Pending}
	cells := buildCells(target, verdicts, 2, plainPalette())

	lines := strings.Split(renderCells(cells, 3), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	want := []string{"ab", "a█_", "cd", ""}
	for i, line := range lines {
		if strings.TrimRight(line, " ") != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestWrapSpansNewlineEndsLine(t *testing.T) {
	for _, width := range []int{0, 20} {
		got := spansFor("ab\ncd", width)
		want := []span{{0, 3}, {3, 5}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("width %d: unexpected spans: %+v", width, got)
		}
	}
	if got := spansFor("ab\n", 0); !reflect.DeepEqual(got, []span{{0, 3}}) {
		t.Fatalf("expected no empty trailing span, got %+v", got)
	}
}

func TestRenderCellsMultiLineKeepsCursorUnderItsLine(t *testing.T) {
	target := []rune("ab\ncd")
	verdicts := []session.Verdict{session.Match, session.Match, session.Pending, session.Pending, session.Pending}
	cells := buildCells(target, verdicts, 2, plainPalette())

	lines := strings.Split(renderCells(cells, 0), "\n")
	want := []string{"ab↵", "ab_", "cd", ""}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i, line := range lines {
		if strings.TrimRight(line, " ") != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestBuildCellsControlRunesUseGlyphs(t *testing.T) {
	target := []rune("a\tb\r")
	verdicts := []session.Verdict{session.Match, session.Match, session.Pending, session.Pending}
	cells := buildCells(target, verdicts, 2, plainPalette())

	if cells[1].target.s != "→" || cells[1].target.width != 1 {
		t.Fatalf("expected single-cell tab glyph, got %q width %d", cells[1].target.s, cells[1].target.width)
	}
	if cells[1].typed.s != "→" {
		t.Fatalf("expected matched tab to show glyph, got %q", cells[1].typed.s)
	}
	if cells[3].target.s != "·" {
		t.Fatalf("expected control glyph, got %q", cells[3].target.s)
	}
	lines := strings.Split(renderCells(cells, 0), "\n")
	if strings.TrimRight(lines[0], " ") != "a→b·" || strings.TrimRight(lines[1], " ") != "a→_" {
		t.Fatalf("rows out of alignment: %q", lines)
	}
}
