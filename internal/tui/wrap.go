package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/retype/internal/session"
)

const (
	mismatchMarker = '█'
	cursorMarker   = '_'
	newlineGlyph   = '↵'
	tabGlyph       = '→'
	controlGlyph   = '·'
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

// displayRune maps runes that would move the terminal cursor to a visible
// single-cell glyph.
func displayRune(r rune) rune {
	switch {
	case r == '\n':
		return newlineGlyph
	case r == '\t':
		return tabGlyph
	case unicode.IsControl(r):
		return controlGlyph
	default:
		return r
	}
}

// cellPair holds the target rune and the typed rune rendered beneath it.
// Both cells share one width so the two rows stay column-aligned.
type cellPair struct {
	target styledRune
	typed  styledRune
}

func buildCells(targetRunes []rune, verdicts []session.Verdict, cursorIndex int, p palette) []cellPair {
	words := findWords(targetRunes)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]cellPair, 0, len(targetRunes)+1)
	for i, target := range targetRunes {
		shown := displayRune(target)
		width := runewidth.RuneWidth(shown)
		if width < 1 {
			width = 1
		}
		targetStyle := p.target
		if currentWord != nil && i >= currentWord.start && i < currentWord.end {
			targetStyle = p.currentWord
		}

		var typed string
		switch verdicts[i] {
		case session.Match:
			typed = p.match.Render(padRune(shown, width))
		case session.Mismatch:
			typed = p.mismatch.Render(padRune(mismatchMarker, width))
		default:
			if i == cursorIndex {
				typed = p.cursor.Render(padRune(cursorMarker, width))
			} else {
				typed = strings.Repeat(" ", width)
			}
		}
		isSpace := target == ' ' || target == '\t'
		isBreak := target == '\n'
		out = append(out, cellPair{
			target: styledRune{s: targetStyle.Render(padRune(shown, width)), width: width, isSpace: isSpace, isBreak: isBreak},
			typed:  styledRune{s: typed, width: width, isSpace: isSpace, isBreak: isBreak},
		})
	}
	if cursorIndex == len(targetRunes) {
		out = append(out, cellPair{
			target: styledRune{s: " ", width: 1},
			typed:  styledRune{s: p.cursor.Render(string(cursorMarker)), width: 1},
		})
	}
	return out
}

func padRune(r rune, width int) string {
	s := string(r)
	if pad := width - runewidth.RuneWidth(r); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

type wordRange struct {
	start int
	end   int
}

func findWords(targetRunes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range targetRunes {
		if unicode.IsSpace(r) {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(targetRunes)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}

type span struct {
	start int
	end   int
}

// wrapSpans splits cells into lines no wider than width, breaking after the
// last space. Trailing spaces never force a break, so a line may overshoot
// width by the length of its final run of spaces. Words longer than width
// are split, and a newline cell always ends its line. A width <= 0 only
// breaks at newlines.
func wrapSpans(cells []cellPair, width int) []span {
	if len(cells) == 0 {
		return nil
	}
	var spans []span
	start := 0
	lineWidth := 0
	lastSpace := -1
	for i, cell := range cells {
		w := cell.target.width
		if cell.target.isBreak {
			spans = append(spans, span{start: start, end: i + 1})
			start = i + 1
			lineWidth = 0
			lastSpace = -1
			continue
		}
		if cell.target.isSpace {
			lineWidth += w
			lastSpace = i
			continue
		}
		if width > 0 && lineWidth+w > width && i > start {
			if lastSpace >= start {
				spans = append(spans, span{start: start, end: lastSpace + 1})
				start = lastSpace + 1
			} else {
				spans = append(spans, span{start: start, end: i})
				start = i
			}
			lineWidth = widthOf(cells[start:i])
			lastSpace = -1
		}
		lineWidth += w
	}
	if start < len(cells) || len(spans) == 0 {
		spans = append(spans, span{start: start, end: len(cells)})
	}
	return spans
}

func widthOf(cells []cellPair) int {
	total := 0
	for _, c := range cells {
		total += c.target.width
	}
	return total
}

// renderCells lays out each wrapped target line with its typed line below it.
func renderCells(cells []cellPair, width int) string {
	spans := wrapSpans(cells, width)
	lines := make([]string, 0, len(spans)*2)
	for _, sp := range spans {
		var target, typed strings.Builder
		for _, c := range cells[sp.start:sp.end] {
			target.WriteString(c.target.s)
			typed.WriteString(c.typed.s)
		}
		lines = append(lines, target.String(), typed.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
