package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"lens/internal/config"
	"lens/internal/editor"
	"lens/internal/preview"
	"lens/internal/search"
	"lens/internal/session"
	"lens/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lens: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line arguments
	var targetDir, configPath string
	var debug bool
	flag.StringVar(&targetDir, "dir", "", "Directory to search")
	flag.StringVar(&targetDir, "d", "", "Directory to search (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// If still no directory, use current directory
	if targetDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		targetDir = wd
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", targetDir, err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absDir)
	}

	// Load configuration
	configSvc, err := config.NewConfigService(configPath)
	if err != nil {
		return err
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configSvc.Path(), err)
	}

	// Set up logging
	logger, closeLog := setupLogger(cfg, debug)
	defer closeLog()
	logger.Info("starting", "dir", absDir, "config", configSvc.Path())

	// Without a session location lens still runs; :w and :q! report why
	var store ui.SessionStore
	sessionPath, err := cfg.SessionPath()
	if err != nil {
		logger.Warn("session storage unavailable", "err", err)
		store = session.UnavailableStore{Err: err}
	} else {
		store = session.NewFileStore(sessionPath)
	}

	launcher := editor.NewLauncher(cfg.ResolveEditor(), absDir, editor.ExecRunner{}, logger)
	pager := editor.NewPager(absDir)

	model := ui.NewModel(cfg, ui.Deps{
		Searcher:  search.NewSearcher(cfg.Search.Binary, absDir, search.ExecRunner{}, logger),
		Previewer: preview.NewProvider(absDir, logger),
		Launcher:  launcher,
		Pager:     pager,
		Store:     store,
		Logger:    logger,
	})

	// A missing or unreadable session starts fresh
	if snap, err := store.Load(); err == nil {
		model.Restore(snap)
		logger.Info("session restored", "path", sessionPath)
	} else if !errors.Is(err, session.ErrNotFound) {
		logger.Warn("ignoring session", "path", sessionPath, "err", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}

// setupLogger writes logs to the configured file, or lens.log in the
// config directory, so the TUI stays undisturbed
func setupLogger(cfg *config.Config, debug bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	path := cfg.LogFile
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
		}
		path = filepath.Join(dir, "lens.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = logFile.Close() }
}
