package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/fastdeck/internal/ctxlog"
	"github.com/vk/fastdeck/internal/deck"
	"github.com/vk/fastdeck/internal/fsutil"
	"github.com/vk/fastdeck/internal/manifest"
)

// deckExtensions are the file suffixes recognized when DeckPath is a
// directory.
var deckExtensions = []string{".fst", ".dat"}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. The rendered document is
// written to outW; diagnostics go to errW through the app's own logger.
func New(outW, errW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		config: cfg,
	}
}

// input is one deck file scheduled for parsing.
type input struct {
	path        string
	headerLines int
}

// Run resolves the configured inputs, parses them all into one logical
// document, and renders it as indented JSON.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	inputs, err := a.resolveInputs()
	if err != nil {
		return err
	}
	a.logger.Debug("Deck inputs resolved.", "count", len(inputs))

	doc, err := a.parseAll(ctx, inputs)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// resolveInputs turns the configured path or manifest into an ordered list
// of deck files.
func (a *App) resolveInputs() ([]input, error) {
	if a.config.ManifestPath != "" {
		decks, err := manifest.Load(a.config.ManifestPath)
		if err != nil {
			return nil, err
		}
		inputs := make([]input, len(decks))
		for i, d := range decks {
			inputs[i] = input{path: d.Path, headerLines: d.HeaderLines}
		}
		return inputs, nil
	}

	info, err := os.Stat(a.config.DeckPath)
	if err != nil {
		return nil, fmt.Errorf("stat deck path %s: %w", a.config.DeckPath, err)
	}
	if !info.IsDir() {
		return []input{{path: a.config.DeckPath, headerLines: a.config.HeaderLines}}, nil
	}

	files, err := fsutil.FindFilesByExtensions(a.config.DeckPath, deckExtensions...)
	if err != nil {
		return nil, fmt.Errorf("scan deck directory %s: %w", a.config.DeckPath, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no deck files found under %s", a.config.DeckPath)
	}
	inputs := make([]input, len(files))
	for i, f := range files {
		inputs[i] = input{path: f, headerLines: a.config.HeaderLines}
	}
	return inputs, nil
}

// parseAll parses the first input into a fresh document and appends every
// further input into it.
func (a *App) parseAll(ctx context.Context, inputs []input) (*deck.Document, error) {
	first := inputs[0]
	doc, err := deck.ParseFile(ctx, first.path, deck.Options{
		HeaderLines: first.headerLines,
		KeepHeader:  a.config.KeepHeader,
	})
	if err != nil {
		return nil, err
	}

	for _, in := range inputs[1:] {
		opts := deck.Options{HeaderLines: in.headerLines}
		if err := deck.ParseFileInto(ctx, in.path, opts, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
