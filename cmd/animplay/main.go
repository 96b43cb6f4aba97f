package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"animplay/internal/config"
	"animplay/internal/demo"
	"animplay/internal/motion"
	"animplay/internal/render"
	"animplay/internal/telemetry"
	"animplay/internal/ui"
)

// flags holds the parsed CLI flags. Zero values leave the config untouched.
type flags struct {
	configPath string
	screen     string
	list       bool
	fps        int
	slow       float64
	logFile    string
	noMouse    bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "path to a config file (default ~/.config/animplay/config.*)")
	flag.StringVar(&f.screen, "screen", "", "screen to open at startup; a unique prefix is enough")
	flag.BoolVar(&f.list, "list", false, "list screens and exit")
	flag.IntVar(&f.fps, "fps", 0, "frames per second while animating")
	flag.Float64Var(&f.slow, "slow", 0, "stretch animation time by this factor (2 = half speed)")
	flag.StringVar(&f.logFile, "log", "", "append debug logs to this file")
	flag.BoolVar(&f.noMouse, "no-mouse", false, "disable mouse input")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: animplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "animplay is a terminal playground for animation primitives:\n")
		fmt.Fprintf(os.Stderr, "transitions, visibility, infinite loops, animated content and crossfades.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func (f flags) apply(cfg *config.Config) {
	if f.screen != "" {
		cfg.UI.Screen = f.screen
	}
	if f.fps > 0 {
		cfg.UI.FPS = f.fps
	}
	if f.slow > 0 {
		cfg.Motion.TimeScale = f.slow
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.noMouse {
		cfg.UI.Mouse = false
	}
}

func listScreens(w io.Writer, catalog *demo.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range catalog.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%d demos\n", e.Name, e.Title, len(e.Demos))
	}
	return tw.Flush()
}

// setupLogging sends the standard logger to path, or discards it. The TUI
// owns the terminal, so logs never go to stderr while it runs.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	return tea.LogToFile(path, "animplay")
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog := demo.NewCatalog(render.Units{DPPerCol: cfg.Render.DPPerCol, DPPerRow: cfg.Render.DPPerRow})
	if f.list {
		return listScreens(os.Stdout, catalog)
	}
	// Fail before taking over the terminal when the screen name is wrong.
	screen, err := catalog.Resolve(cfg.UI.Screen)
	if err != nil {
		return err
	}

	logs, err := setupLogging(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log %q: %w", cfg.Log.File, err)
	}
	defer logs.Close()
	log.Printf("config: screen=%s fps=%d time-scale=%g mouse=%v", screen, cfg.UI.FPS, cfg.Motion.TimeScale, cfg.UI.Mouse)

	ctx := context.Background()
	tracer, err := telemetry.New(ctx, cfg.Tracing)
	if err != nil {
		log.Printf("telemetry: %v; tracing disabled", err)
		tracer = telemetry.Disabled()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	app := ui.NewAppModel(ui.Options{
		Catalog:       catalog,
		Tracer:        tracer,
		Clock:         motion.Clock{FPS: cfg.UI.FPS, TimeScale: cfg.Motion.TimeScale},
		InitialScreen: screen,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app.AsTeaModel(), opts...)
	_, err = p.Run()
	app.Shutdown()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func main() {
	f := parseFlags()
	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "animplay: %v\n", err)
		os.Exit(1)
	}
}
