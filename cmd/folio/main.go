// Package main provides the CLI entrypoint for folio.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/content"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/particles"
	"github.com/verte-zerg/folio/internal/render"
	"github.com/verte-zerg/folio/internal/state"
	"github.com/verte-zerg/folio/internal/tracker"
	"github.com/verte-zerg/folio/internal/tui"
)

const (
	defaultParticles   = particles.DefaultCount
	defaultThreshold   = tracker.DefaultThreshold
	defaultExportWidth = 100
	maxParticles       = 200
)

var (
	viewDark      bool
	viewParticles int
	viewNoMouse   bool
	viewThreshold float64
	viewLogFile   string

	exportWidth int
	exportDark  bool
	exportColor   bool
	exportSection string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "folio",
		Short:         "Terminal portfolio viewer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runViewCmd,
	}

	rootCmd.Flags().BoolVar(&viewDark, "dark", false, "start with the dark theme")
	rootCmd.Flags().IntVar(&viewParticles, "particles", defaultParticles, "number of floating particles (0 disables)")
	rootCmd.Flags().BoolVar(&viewNoMouse, "no-mouse", false, "disable mouse tracking and the pointer follower")
	rootCmd.Flags().Float64Var(&viewThreshold, "threshold", defaultThreshold, "share of a section that must be on screen to count as visible (0-1)")
	rootCmd.Flags().StringVar(&viewLogFile, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newLinksCmd())

	return rootCmd
}

func runViewCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "dark", &viewDark, fileCfg.View.Dark)
	applyIntConfig(cmd, "particles", &viewParticles, fileCfg.View.Particles)
	applyFloatConfig(cmd, "threshold", &viewThreshold, fileCfg.View.Threshold)
	applyStringConfig(cmd, "log-file", &viewLogFile, fileCfg.View.LogFile)
	if fileCfg.View.Mouse != nil && !cmd.Flags().Changed("no-mouse") {
		viewNoMouse = !*fileCfg.View.Mouse
	}

	cfg := model.Config{
		Dark:      viewDark,
		Particles: viewParticles,
		Mouse:     !viewNoMouse,
		Threshold: viewThreshold,
		LogFile:   viewLogFile,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewModel(cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(m, opts...)
	_, err = program.Run()
	m.Unmount()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it so nothing
// writes over the alternate screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "folio")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
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

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole page with every section revealed",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().IntVar(&exportWidth, "width", 0, "page width (default: terminal width)")
	cmd.Flags().BoolVar(&exportDark, "dark", false, "use the dark theme")
	cmd.Flags().BoolVar(&exportColor, "color", false, "force colored output")
	cmd.Flags().StringVar(&exportSection, "section", "", "print only this section (home, about, experience, projects, contact)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	width := exportWidth
	if width < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	if width == 0 {
		width = terminalWidth()
	}
	out := cmd.OutOrStdout()
	color := shouldUseColor(out, exportColor)
	if color && exportColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
	page, spans := exportPage(width, exportDark)
	if exportSection != "" {
		region, ok := model.ParseRegion(exportSection)
		if !ok {
			return fmt.Errorf("unknown section %q", exportSection)
		}
		page = sectionLines(page, spans, region)
	}
	if !color {
		page = ansi.Strip(page)
	}
	if _, err := fmt.Fprintln(out, page); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// exportPage renders the page as it looks once every region has been revealed.
func exportPage(width int, dark bool) (string, []model.Span) {
	s := state.New()
	s.Dark = dark
	for _, r := range model.Regions {
		s.Visible[r] = true
	}
	bars := make([]float64, len(content.Skills))
	for i, skill := range content.Skills {
		bars[i] = render.SkillTarget(skill.Level, true)
	}
	return render.Page(render.Frame{State: s, Width: width, Bars: bars})
}

func sectionLines(page string, spans []model.Span, region model.Region) string {
	lines := strings.Split(page, "\n")
	for _, span := range spans {
		if span.Region != region {
			continue
		}
		top := min(span.Top, len(lines))
		bottom := min(span.Bottom(), len(lines))
		return strings.Join(lines[top:bottom], "\n")
	}
	return ""
}

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List contact links",
		Args:  cobra.NoArgs,
		RunE:  runLinksCmd,
	}
}

func runLinksCmd(cmd *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(content.Links))
	for _, l := range content.Links {
		rows = append(rows, []string{string(l.Kind), l.Label, l.URL})
	}
	for _, line := range render.FormatTable([]string{"Kind", "Label", "URL"}, rows, nil) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultExportWidth
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if force {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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
	return fmt.Sprintf(`# folio configuration
# Uncomment a value to enable it. CLI flags override config values.

[view]
# dark = false            # Start with the dark theme
# particles = %d          # Number of floating particles (0 disables)
# mouse = true            # Track the mouse and draw the pointer follower
# threshold = %.1f        # Share of a section on screen to count as visible (0-1)
# log-file = %q
`,
		defaultParticles,
		defaultThreshold,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Particles < 0 {
		return fmt.Errorf("--particles must be >= 0")
	}
	if cfg.Particles > maxParticles {
		return fmt.Errorf("--particles must be <= %d", maxParticles)
	}
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		return fmt.Errorf("--threshold must be greater than 0 and at most 1")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
