package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/promowidget-go/internal/config"
	"github.com/ukaji3/promowidget-go/pkg/promowidget"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/render"
)

// addAppearanceFlags registers the flags that share names with config keys.
func addAppearanceFlags(cmd *cobra.Command) {
	def := config.Default()
	cmd.Flags().String("accent-color", def.AccentColor, "Accent color (#rgb, #rrggbb, rgb(), hsl(), or a color name)")
	cmd.Flags().String("columns", def.Columns, "Grid columns: auto, 2, 3, or 4")
	cmd.Flags().String("theme", def.Theme, "Color theme: light or dark")
	cmd.Flags().String("corners", def.Corners, "Card corners: rounded or sharp")
	cmd.Flags().Bool("show-item-number", def.ShowItemNumber, "Show item numbers on cards")
}

func addClockFlags(cmd *cobra.Command, now *string) {
	cmd.Flags().String("timezone", config.Default().Timezone, "IANA time zone flash windows are evaluated in")
	cmd.Flags().StringVar(now, "now", "", "Evaluate flash windows at this date (YYYY-MM-DD, noon) or RFC 3339 time")
}

func newGenerateCommand(a *app) *cobra.Command {
	var outputPath, previewPath, filterValue, nowValue string

	cmd := &cobra.Command{
		Use:   "generate [input.xlsx|input.csv]",
		Short: "Generate the embeddable widget for a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flash.ParseFilter(filterValue)
			if err != nil {
				return err
			}
			now, err := a.clock(nowValue)
			if err != nil {
				return err
			}

			opts := a.options()
			opts.Filter = filter
			opts.Generator = &render.Generator{IDs: render.UUIDSource{}, Now: now}

			result, err := promowidget.Build(args[0], opts)
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.Widget.Embeddable)
			} else if err := os.WriteFile(outputPath, []byte(result.Widget.Embeddable+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			if previewPath != "" {
				if err := os.WriteFile(previewPath, []byte(result.Widget.Preview+"\n"), 0o644); err != nil {
					return fmt.Errorf("failed to write preview: %w", err)
				}
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s generated %s from sheet %q (header row %d, %d products)\n",
				statusOK("✓"), result.Widget.ID, result.SheetName, result.HeaderRow, len(result.Rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file for the embeddable snippet (default: stdout)")
	cmd.Flags().StringVar(&previewPath, "preview", "", "Also write the preview markup to this file")
	cmd.Flags().StringVar(&filterValue, "filter", "all", "Preview filter: all, flash, or brand:NAME")
	addAppearanceFlags(cmd)
	addClockFlags(cmd, &nowValue)
	return cmd
}

// clock returns the evaluation clock. An empty value means the wall clock
// in the configured zone.
func (a *app) clock(value string) (func() time.Time, error) {
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	if value == "" {
		return func() time.Time { return time.Now().In(loc) }, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.In(loc)
		return func() time.Time { return t }, nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q (expected YYYY-MM-DD or RFC 3339)", value)
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
	return func() time.Time { return t }, nil
}
