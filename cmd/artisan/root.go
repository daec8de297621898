package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dkoosis/artisan/internal/config"
	"github.com/dkoosis/artisan/internal/logging"
	"github.com/dkoosis/artisan/internal/version"
	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/entry"
	"github.com/dkoosis/artisan/pkg/preset"
	"github.com/dkoosis/artisan/pkg/render"
)

// app carries the state shared by all commands once the configuration is
// loaded.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        *config.Config
	log        zerolog.Logger
	closers    []io.Closer
	store      preset.Store
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "artisan",
		Short:         "Build, preview and project styled console statements",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default .artisan.yaml in the working or config directory)")
	pf.String("theme", config.DefaultTheme, "theme: default, orca, mono")
	pf.String("format", config.FormatAuto, "output format: auto, terminal, plain, json")
	pf.Bool("no-color", false, "disable colour output")
	pf.Bool("expand", false, "show the body of collapsed groups")
	pf.String("store", config.DefaultDriver, "preset store: file, sqlite, memory")
	pf.String("store-path", "", "preset store location")
	pf.String("log-level", config.DefaultLevel, "log level: debug, info, warn, error")
	pf.String("log-file", "", "also write JSON logs to this file")

	root.AddCommand(
		newRunCmd(a),
		newCodeCmd(a),
		newPresetCmd(a),
		newBrowseCmd(a),
		newShowcaseCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{File: a.configFile, Flags: cmd.Flags()})
	if err != nil {
		return usageError{err}
	}
	a.cfg = cfg

	log, closer, err := logging.New(logging.Options{
		Out:     a.stderr,
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		NoColor: cfg.NoColor,
	})
	if err != nil {
		return usageError{err}
	}
	a.log = log
	a.closers = append(a.closers, closer)
	if cfg.File != "" {
		a.log.Debug().Str("file", cfg.File).Msg("loaded config")
	}
	return nil
}

// library opens the configured preset store.
func (a *app) library() (*preset.Library, error) {
	if a.store == nil {
		store, err := preset.Open(a.cfg.Store.Driver, a.cfg.Store.Path, a.log)
		if err != nil {
			return nil, fmt.Errorf("open preset store: %w", err)
		}
		if c, ok := store.(io.Closer); ok {
			a.closers = append(a.closers, c)
		}
		a.store = store
		a.log.Debug().Str("driver", a.cfg.Store.Driver).Str("path", a.cfg.Store.Path).Msg("opened preset store")
	}
	return preset.NewLibrary(a.store, preset.WithLogger(a.log)), nil
}

// format resolves "auto" against the output writer.
func (a *app) format() render.Format {
	if a.cfg.Format != config.FormatAuto {
		if f, err := render.ParseFormat(a.cfg.Format); err == nil {
			return f
		}
	}
	if isTTYWriter(a.stdout) {
		return render.FormatTerminal
	}
	return render.FormatPlain
}

func (a *app) renderOptions() render.Options {
	theme := render.ThemeByName(a.cfg.Theme)
	if a.cfg.NoColor {
		theme = render.MonoTheme()
	}
	return render.Options{
		Theme:   theme,
		Width:   termWidth(a.stdout),
		Expand:  a.cfg.ExpandGroups,
		NoColor: a.cfg.NoColor,
	}
}

// emit runs items through the sink for the configured format.
func (a *app) emit(items []entry.Item) error {
	sink := render.New(a.format(), a.stdout, a.renderOptions())
	entry.Run(sink, items)
	if err := render.Err(sink); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// readDocument decodes the document named by args: a path, "-" or nothing
// for stdin.
func (a *app) readDocument(args []string) ([]entry.Item, error) {
	var (
		data []byte
		err  error
		name = "stdin"
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, usageError{err}
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, usagef("no input on %s", name)
	}
	items, err := entry.Decode(data)
	if err != nil {
		return nil, usageError{fmt.Errorf("parsing %s: %w", name, err)}
	}
	a.log.Debug().Str("source", name).Int("items", len(items)).Msg("decoded document")
	return items, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return usagef("accepts at most %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			if lo == hi {
				return usagef("accepts %d arg(s), received %d", lo, len(args))
			}
			return usagef("accepts between %d and %d arg(s), received %d", lo, hi, len(args))
		}
		return nil
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// sink is the table/log sink used for listings.
func (a *app) sink() console.Sink {
	return render.New(a.format(), a.stdout, a.renderOptions())
}
