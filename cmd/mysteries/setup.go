package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mysteries/internal/config"
	"github.com/vovakirdan/mysteries/internal/core"
	"github.com/vovakirdan/mysteries/internal/platform/tui"
	"github.com/vovakirdan/mysteries/internal/storage"
)

// kiosk bundles what the interactive commands need.
type kiosk struct {
	opts    tui.Options
	logFile *os.File
}

// newKiosk loads content, opens the journal and the log file.
// The journal is optional: if it cannot be opened the kiosk runs without it.
func newKiosk() (*kiosk, error) {
	k := &kiosk{}

	logger, logFile, err := newLogger(flagLogPath)
	if err != nil {
		return nil, err
	}
	k.logFile = logFile

	content, err := config.LoadContent(flagContentPath)
	if err != nil {
		k.Close()
		return nil, fmt.Errorf("cannot load content: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal database", "path", flagDBPath, "error", err)
		// Continue without storage
		store = nil
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	k.opts = tui.Options{
		Content: content,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	}
	logger.Info("kiosk ready", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "journal", store != nil)
	return k, nil
}

// Close releases the journal and the log file.
func (k *kiosk) Close() {
	if k.opts.Store != nil {
		k.opts.Store.Close()
	}
	if k.logFile != nil {
		k.logFile.Close()
	}
}

// newLogger writes to path, or discards everything when path is empty.
// The terminal belongs to the UI, so logs never go to stderr.
func newLogger(path string) (*log.Logger, *os.File, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mysteries",
	})
	return logger, f, nil
}
