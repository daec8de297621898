package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/preset"
	"github.com/dkoosis/artisan/pkg/render"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved presets",
	}
	cmd.AddCommand(
		newPresetListCmd(a),
		newPresetSaveCmd(a),
		newPresetDeleteCmd(a),
		newPresetShowCmd(a),
		newPresetExportCmd(a),
	)
	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets, newest first",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			presets, err := lib.List(contextOf(cmd))
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				_, err := fmt.Fprintln(a.stdout, "no presets saved")
				return err
			}
			rows := make([]any, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, map[string]any{
					"id":      p.ID,
					"name":    p.Name,
					"items":   len(p.Logs),
					"types":   typeList(p.Logs),
					"created": time.UnixMilli(p.CreatedAt).UTC().Format(time.DateTime),
				})
			}
			sink := a.sink()
			sink.Table(console.NormalizeForTable(rows))
			return render.Err(sink)
		},
	}
}

func newPresetSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME [file|-]",
		Short: "Save a document as a new preset",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.readDocument(args[1:])
			if err != nil {
				return err
			}
			lib, err := a.library()
			if err != nil {
				return err
			}
			p, err := lib.Save(contextOf(cmd), args[0], items)
			if errors.Is(err, preset.ErrEmptyName) {
				return usageError{err}
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "saved %q as %s\n", p.Name, p.ID)
			return err
		},
	}
}

func newPresetDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved preset",
		Args:  rangeArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			if err := lib.Delete(contextOf(cmd), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "deleted %s\n", args[0])
			return err
		},
	}
}

func newPresetShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Render a saved preset",
		Args:  rangeArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			items, err := lib.Load(contextOf(cmd), args[0])
			if err != nil {
				return err
			}
			return a.emit(items)
		},
	}
}

func newPresetExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export ID",
		Short: "Print a saved preset as JSON",
		Args:  rangeArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			p, err := lib.Find(contextOf(cmd), args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return fmt.Errorf("encode preset: %w", err)
			}
			_, err = fmt.Fprintln(a.stdout, string(data))
			return err
		},
	}
}
