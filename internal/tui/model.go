// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/retype/internal/model"
	"github.com/verte-zerg/retype/internal/session"
	"github.com/verte-zerg/retype/internal/stats"
)

const tickInterval = time.Second

type tickMsg time.Time

// Model implements the Bubble Tea typing UI. It is the only writer of its session.
type Model struct {
	config  model.Config
	session *session.Session
	keys    keyMap
	help    help.Model
	styles  palette

	width  int
	height int

	submitted bool
	cancelled bool
	outcome   session.Outcome
}

// NewModel constructs a typing TUI model around sess.
func NewModel(cfg model.Config, sess *session.Session) *Model {
	m := &Model{
		config:  cfg,
		session: sess,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  plainPalette(),
	}
	if cfg.Color {
		m.styles = colorPalette()
	} else {
		m.help.Styles = help.Styles{}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if m.Done() {
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Backspace):
		m.session.ApplyBackspace()
		return m, nil
	}
	if msg.Alt || msg.Paste {
		return m, nil
	}
	switch msg.Type {
	case tea.KeySpace:
		m.session.ApplyCharacter(' ')
	case tea.KeyTab:
		m.session.ApplyCharacter('\t')
	case tea.KeyRunes:
		// The terminal reader groups keys that arrive in one read; each rune
		// is still a separate key press.
		for _, r := range msg.Runes {
			m.session.ApplyCharacter(r)
		}
	default:
		return m, nil
	}
	if m.config.AutoSubmit && m.session.TargetLen() > 0 && m.session.Complete() {
		m.submit()
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) submit() {
	m.outcome = m.session.Finalize()
	m.submitted = true
}

// Done reports whether the session was submitted or cancelled.
func (m *Model) Done() bool {
	return m.submitted || m.cancelled
}

// Cancelled reports whether the user aborted without submitting.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Outcome returns the finalized outcome and true after a submit.
func (m *Model) Outcome() (session.Outcome, bool) {
	return m.outcome, m.submitted
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.Done() {
		return ""
	}
	content := m.renderText()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	if m.height <= footerHeight+1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	footerBlock := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + footerBlock
}

func (m *Model) renderText() string {
	if m.session.TargetLen() == 0 {
		return m.styles.placeholder.Render("(empty text, press enter to finish)")
	}
	cells := buildCells(m.session.TargetRunes(), m.session.Comparison(), m.session.Len(), m.styles)
	return renderCells(cells, m.contentWidth())
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 1
	}
	return width
}

func (m *Model) renderFooter() string {
	progress := 100
	if total := m.session.TargetLen(); total > 0 {
		progress = int(float64(m.session.Len()) / float64(total) * 100)
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.config.Scored {
		live := m.session.Live()
		segments = append(segments,
			fmt.Sprintf("Time %ds", int(m.session.Elapsed()/time.Second)),
			fmt.Sprintf("%s WPM · %.1f%%", stats.FormatWPM(live), typedAccuracy(m.session)*100),
		)
	}
	status := m.styles.footer.Render(strings.Join(segments, "  "))
	return status + "\n" + m.help.View(m.keys)
}

// typedAccuracy is the share of typed runes that match, 1 before any typing.
func typedAccuracy(s *session.Session) float64 {
	typed := s.Len()
	if typed == 0 {
		return 1
	}
	return float64(session.CountCorrect(s.TargetRunes(), s.InputRunes())) / float64(typed)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
