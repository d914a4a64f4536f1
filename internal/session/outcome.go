package session

import (
	"strings"
	"time"
)

// Outcome summarizes a finished session.
type Outcome struct {
	CharsCorrect int
	CharsTotal   int
	WordsTyped   int
	Elapsed      time.Duration
	// WordsPerMinute is 0 when WPMAvailable is false.
	WordsPerMinute float64
	// WPMAvailable is false when no time elapsed between start and finalize.
	WPMAvailable bool
}

// ElapsedSeconds returns the elapsed time in fractional seconds.
func (o Outcome) ElapsedSeconds() float64 {
	return o.Elapsed.Seconds()
}

// Accuracy returns CharsCorrect/CharsTotal, or 0 for an empty target.
func (o Outcome) Accuracy() float64 {
	if o.CharsTotal <= 0 {
		return 0
	}
	return float64(o.CharsCorrect) / float64(o.CharsTotal)
}

func computeOutcome(target, input []rune, elapsed time.Duration) Outcome {
	words := CountWords(string(input))
	wpm, ok := WordsPerMinute(words, elapsed)
	return Outcome{
		CharsCorrect:   CountCorrect(target, input),
		CharsTotal:     len(target),
		WordsTyped:     words,
		Elapsed:        elapsed,
		WordsPerMinute: wpm,
		WPMAvailable:   ok,
	}
}

// CountCorrect counts positions where input and target hold the same rune.
func CountCorrect(target, input []rune) int {
	n := len(input)
	if len(target) < n {
		n = len(target)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if input[i] == target[i] {
			correct++
		}
	}
	return correct
}

// CountWords counts whitespace-delimited tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(strings.TrimSpace(s)))
}

// WordsPerMinute normalizes words to a 60 second rate. It returns (0, false)
// when elapsed is not positive.
func WordsPerMinute(words int, elapsed time.Duration) (float64, bool) {
	if elapsed <= 0 {
		return 0, false
	}
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0, false
	}
	return float64(words) * 60 / seconds, true
}
