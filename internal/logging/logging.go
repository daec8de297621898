// Package logging builds the zerolog logger used for diagnostics: a
// lipgloss-styled console writer on stderr and an optional rotating JSON
// log file.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level colours.
const (
	ColorDebug = "#3ddbd9"
	ColorInfo  = "#4589ff"
	ColorWarn  = "#ff832b"
	ColorError = "#da1e28"
	ColorFatal = "#ff0000"
	ColorMuted = "#8d8d8d"
	ColorText  = "#f4f4f4"
)

// Rotation limits for the log file.
const (
	RotateMaxMB   = 10
	RotateBackups = 3
	RotateMaxAge  = 28 // days
)

// Options configure New.
type Options struct {
	// Out receives human-readable output; nil disables it.
	Out     io.Writer
	Level   string
	File    string
	NoColor bool
}

// New returns a logger and a closer for any opened log file.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := zerolog.WarnLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = l
	}

	var writers []io.Writer
	if opts.Out != nil {
		writers = append(writers, ConsoleWriter(opts.Out, opts.NoColor))
	}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    RotateMaxMB,
			MaxBackups: RotateBackups,
			MaxAge:     RotateMaxAge,
		}
		writers = append(writers, lj)
		closer = lj
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return log, closer, nil
}

// ConsoleWriter builds a zerolog.ConsoleWriter whose level badges, field
// names and messages are styled with lipgloss.
func ConsoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	muted := r.NewStyle().Foreground(lipgloss.Color(ColorMuted))

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			if len(lvl) < 3 {
				lvl = "???"
			}
			return r.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(lvl))).
				Padding(0, 1).
				Render(strings.ToUpper(lvl[:3]))
		},
		FormatTimestamp: func(i any) string {
			return muted.Render(fmt.Sprint(i))
		},
		FormatFieldName: func(i any) string {
			return r.NewStyle().Foreground(lipgloss.Color(ColorInfo)).Render(fmt.Sprint(i)) + muted.Render("=")
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return r.NewStyle().Foreground(lipgloss.Color(ColorText)).Render(fmt.Sprint(i))
		},
	}
}

func levelColor(lvl string) string {
	switch lvl {
	case "debug":
		return ColorDebug
	case "info":
		return ColorInfo
	case "warn":
		return ColorWarn
	case "error":
		return ColorError
	case "fatal", "panic":
		return ColorFatal
	}
	return ColorMuted
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
