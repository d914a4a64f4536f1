// Package session implements the typing session state machine and scoring.
package session

import "time"

// State is the lifecycle state of a Session.
type State int

const (
	// Active sessions accept keystrokes.
	Active State = iota
	// Finalized sessions are terminal; only queries are meaningful.
	Finalized
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Verdict classifies a single target position.
type Verdict int

const (
	// Pending marks a position that has not been typed yet.
	Pending Verdict = iota
	// Match marks a typed rune equal to the target rune.
	Match
	// Mismatch marks a typed rune different from the target rune.
	Mismatch
)

func (v Verdict) String() string {
	switch v {
	case Pending:
		return "pending"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for the start instant and elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session owns the target text, the typed input, and the start instant.
// It performs no I/O and is not safe for concurrent use.
type Session struct {
	now       func() time.Time
	target    []rune
	input     []rune
	startedAt time.Time
	state     State
	outcome   Outcome
}

// New starts a session for target. The start instant is captured immediately.
func New(target string, opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.target = []rune(target)
	s.input = make([]rune, 0, len(s.target))
	s.startedAt = s.now()
	return s
}

// ApplyCharacter appends r unless the input already covers the whole target.
func (s *Session) ApplyCharacter(r rune) {
	if s.state != Active {
		return
	}
	if len(s.input) >= len(s.target) {
		return
	}
	s.input = append(s.input, r)
}

// ApplyBackspace removes the last typed rune, if any.
func (s *Session) ApplyBackspace() {
	if s.state != Active {
		return
	}
	if len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// Comparison returns one verdict per target rune.
func (s *Session) Comparison() []Verdict {
	out := make([]Verdict, len(s.target))
	for i := range s.target {
		switch {
		case i >= len(s.input):
			out[i] = Pending
		case s.input[i] == s.target[i]:
			out[i] = Match
		default:
			out[i] = Mismatch
		}
	}
	return out
}

// Finalize ends the session and returns its outcome. Later calls return the
// same outcome without recomputing it.
func (s *Session) Finalize() Outcome {
	if s.state == Finalized {
		return s.outcome
	}
	s.outcome = computeOutcome(s.target, s.input, s.now().Sub(s.startedAt))
	s.state = Finalized
	return s.outcome
}

// Live computes the outcome as if the session ended now, without finalizing it.
// A finalized session returns its cached outcome.
func (s *Session) Live() Outcome {
	if s.state == Finalized {
		return s.outcome
	}
	return computeOutcome(s.target, s.input, s.now().Sub(s.startedAt))
}

// Elapsed returns the time since the session started, frozen once finalized.
func (s *Session) Elapsed() time.Duration {
	if s.state == Finalized {
		return s.outcome.Elapsed
	}
	return s.now().Sub(s.startedAt)
}

// State reports the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// TargetRunes returns a copy of the target runes.
func (s *Session) TargetRunes() []rune {
	return append([]rune(nil), s.target...)
}

// Input returns the text typed so far.
func (s *Session) Input() string {
	return string(s.input)
}

// InputRunes returns a copy of the typed runes.
func (s *Session) InputRunes() []rune {
	return append([]rune(nil), s.input...)
}

// Len returns the number of typed runes.
func (s *Session) Len() int {
	return len(s.input)
}

// TargetLen returns the number of target runes.
func (s *Session) TargetLen() int {
	return len(s.target)
}

// Complete reports whether the input covers the whole target.
// An empty target is always complete.
func (s *Session) Complete() bool {
	return len(s.input) == len(s.target)
}
