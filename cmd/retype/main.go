// Package main provides the CLI entrypoint for retype.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/retype/internal/config"
	"github.com/verte-zerg/retype/internal/generator"
	"github.com/verte-zerg/retype/internal/model"
	"github.com/verte-zerg/retype/internal/session"
	"github.com/verte-zerg/retype/internal/stats"
	"github.com/verte-zerg/retype/internal/textsource"
	"github.com/verte-zerg/retype/internal/tui"
)

const (
	defaultFile       = "typing.txt"
	defaultWords      = 0
	defaultColor      = true
	defaultScored     = true
	defaultAutoSubmit = false
	defaultRaw        = false
)

var (
	sessionFile       string
	sessionWords      int
	sessionSeed       int64
	sessionColor      bool
	sessionScored     bool
	sessionAutoSubmit bool
	sessionRaw        bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "retype",
		Short:         "Terminal typing practice",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.Flags().StringVarP(&sessionFile, "file", "f", defaultFile, "text file to type (UTF-8)")
	rootCmd.Flags().IntVar(&sessionWords, "words", defaultWords, "sample N words from the file instead of typing it whole (0 = whole file)")
	rootCmd.Flags().Int64Var(&sessionSeed, "seed", 0, "random seed for --words (0 = time based)")
	rootCmd.Flags().BoolVar(&sessionColor, "color", defaultColor, "colorize output")
	rootCmd.Flags().BoolVar(&sessionScored, "scored", defaultScored, "track time and WPM")
	rootCmd.Flags().BoolVar(&sessionAutoSubmit, "auto-submit", defaultAutoSubmit, "submit as soon as the whole text is typed")
	rootCmd.Flags().BoolVar(&sessionRaw, "raw", defaultRaw, "keep the text as is instead of joining lines")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		var unknown *config.UnknownKeysError
		if !errors.As(err, &unknown) {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logErrf("ignoring %v\n", unknown)
	}
	applyStringConfig(cmd, "file", &sessionFile, fileCfg.Session.File)
	applyIntConfig(cmd, "words", &sessionWords, fileCfg.Session.Words)
	applyInt64Config(cmd, "seed", &sessionSeed, fileCfg.Session.Seed)
	applyBoolConfig(cmd, "color", &sessionColor, fileCfg.Session.Color)
	applyBoolConfig(cmd, "scored", &sessionScored, fileCfg.Session.Scored)
	applyBoolConfig(cmd, "auto-submit", &sessionAutoSubmit, fileCfg.Session.AutoSubmit)
	applyBoolConfig(cmd, "raw", &sessionRaw, fileCfg.Session.Raw)

	cfg := model.Config{
		File:       sessionFile,
		Words:      sessionWords,
		Seed:       sessionSeed,
		Color:      sessionColor,
		Scored:     sessionScored,
		AutoSubmit: sessionAutoSubmit,
		Raw:        sessionRaw,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	target, err := loadTarget(cfg)
	if err != nil {
		return textLoadError(cfg.File, err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	sess := session.New(target)
	m, err := runSession(cfg, sess, tea.WithAltScreen())
	if err != nil {
		return err
	}
	return printOutcome(cmd.OutOrStdout(), cfg, m)
}

func loadTarget(cfg model.Config) (string, error) {
	var text string
	var err error
	if cfg.Raw {
		text, err = textsource.Load(cfg.File)
		text = textsource.TrimFinalNewline(text)
	} else {
		text, err = textsource.LoadNormalized(cfg.File)
	}
	if err != nil {
		return "", err
	}
	if cfg.Words <= 0 {
		return text, nil
	}
	words := textsource.Words(text)
	if len(words) == 0 {
		return "", fmt.Errorf("no words to sample")
	}
	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	return gen.Text(words, cfg.Words), nil
}

func runSession(cfg model.Config, sess *session.Session, opts ...tea.ProgramOption) (*tui.Model, error) {
	program := tea.NewProgram(tui.NewModel(cfg, sess), opts...)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run TUI: %w", err)
	}
	m, ok := final.(*tui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected TUI model %T", final)
	}
	return m, nil
}

func printOutcome(w io.Writer, cfg model.Config, m *tui.Model) error {
	out, ok := m.Outcome()
	if !ok {
		return nil
	}
	opts := stats.ReportOptions{Scored: cfg.Scored, Color: cfg.Color}
	if err := stats.WriteReport(w, out, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# retype configuration
# Uncomment a value to enable it. CLI flags override config values.

[session]
# file = %q          # Text file to type (UTF-8)
# words = %d                    # Sample N words from the file (0 = whole file)
# seed = 0                     # Random seed for sampling (0 = time based)
# color = %t                 # Colorize output
# scored = %t                # Track time and WPM
# auto-submit = %t          # Submit as soon as the whole text is typed
# raw = %t                  # Keep line breaks and tabs as they are
`,
		defaultFile,
		defaultWords,
		defaultColor,
		defaultScored,
		defaultAutoSubmit,
		defaultRaw,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.File) == "" {
		return fmt.Errorf("--file must not be empty")
	}
	if cfg.Words < 0 {
		return fmt.Errorf("--words must be >= 0")
	}
	return nil
}

func textLoadError(path string, err error) error {
	return fmt.Errorf("failed to load text: %w\nexpected text at: %s\nPass another file with: retype --file <path>", err, path)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
