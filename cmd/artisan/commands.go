package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/dkoosis/artisan/internal/tui"
	"github.com/dkoosis/artisan/internal/version"
	"github.com/dkoosis/artisan/pkg/codegen"
	"github.com/dkoosis/artisan/pkg/entry"
)

func newRunCmd(a *app) *cobra.Command {
	var presetID string
	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Render a document or a saved preset",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presetID != "" {
				if len(args) > 0 {
					return usagef("--preset and a document are mutually exclusive")
				}
				lib, err := a.library()
				if err != nil {
					return err
				}
				items, err := lib.Load(contextOf(cmd), presetID)
				if err != nil {
					return err
				}
				return a.emit(items)
			}
			items, err := a.readDocument(args)
			if err != nil {
				return err
			}
			return a.emit(items)
		},
	}
	cmd.Flags().StringVar(&presetID, "preset", "", "render the saved preset with this id")
	return cmd
}

func newCodeCmd(a *app) *cobra.Command {
	var (
		modeName string
		pretty   bool
	)
	cmd := &cobra.Command{
		Use:   "code [file|-]",
		Short: "Print the Go code that reproduces a document",
		Args:  maxArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, err := codegen.ParseMode(modeName)
			if err != nil {
				return usageError{err}
			}
			var code string
			if mode == codegen.Library {
				code = codegen.LibrarySource()
			} else {
				items, err := a.readDocument(args)
				if err != nil {
					return err
				}
				code = codegen.ProjectAll(items, mode)
			}
			if pretty {
				out, err := a.highlight(code)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(a.stdout, out)
				return err
			}
			_, err = fmt.Fprintln(a.stdout, code)
			return err
		},
	}
	cmd.Flags().StringVarP(&modeName, "mode", "m", string(codegen.Usage), "projection: usage, inline, library")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "syntax-highlight the code")
	return cmd
}

// highlight renders code as a fenced Go block through glamour.
func (a *app) highlight(code string) (string, error) {
	styleName := "dark"
	if a.cfg.NoColor {
		styleName = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(termWidth(a.stdout)),
	)
	if err != nil {
		return "", fmt.Errorf("create highlighter: %w", err)
	}
	out, err := r.Render("```go\n" + code + "\n```\n")
	if err != nil {
		return "", fmt.Errorf("highlight code: %w", err)
	}
	return out, nil
}

func newShowcaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "showcase",
		Short: "Render the built-in welcome sequence",
		Args:  maxArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.emit(entry.Showcase())
		},
	}
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse saved presets interactively",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTTYWriter(a.stdout) {
				return usagef("browse needs a terminal")
			}
			lib, err := a.library()
			if err != nil {
				return err
			}
			presets, err := lib.List(contextOf(cmd))
			if err != nil {
				return err
			}
			opts := a.renderOptions()
			return tui.Run(contextOf(cmd), presets, tui.Options{
				Theme:   opts.Theme,
				Expand:  opts.Expand,
				NoColor: opts.NoColor,
			})
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  maxArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(a.stdout, version.String())
			return err
		},
	}
}

func typeList(items []entry.Item) string {
	seen := make(map[entry.Type]bool)
	var names []string
	for _, it := range items {
		if !seen[it.Config.Type] {
			seen[it.Config.Type] = true
			names = append(names, it.Config.Type.Title())
		}
	}
	return strings.Join(names, ", ")
}
