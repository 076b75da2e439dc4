package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"widgetlab/internal/config"
	"widgetlab/internal/news"
	"widgetlab/internal/telemetry"
	"widgetlab/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// stdout belongs to the TUI; logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "widgetlab")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("telemetry: disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	start, ok := ui.ParseScreen(cfg.StartScreen)
	if !ok {
		log.Printf("config: unknown start screen %q, using %s", cfg.StartScreen, start)
	}

	fetcher := news.NewHTTPClient(cfg.NewsURL, cfg.FetchTimeout,
		news.WithTracerProvider(tp.TracerProvider()))
	model := ui.NewAppModel(fetcher, ui.DefaultUser, start).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
