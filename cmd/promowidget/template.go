package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/promowidget-go/pkg/promowidget/sample"
)

func newTemplateCommand() *cobra.Command {
	var formatValue, outputPath, dateValue string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a starter spreadsheet with example products",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipConfig: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := sample.ParseFormat(formatValue)
			if err != nil {
				return err
			}
			if outputPath == "" {
				outputPath = format.FileName()
			}
			today := time.Now()
			if dateValue != "" {
				if today, err = time.ParseInLocation("2006-01-02", dateValue, time.Local); err != nil {
					return fmt.Errorf("invalid --now %q (expected YYYY-MM-DD)", dateValue)
				}
			}

			file, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create template: %w", err)
			}
			if err := sample.Write(file, format, today); err != nil {
				file.Close()
				return fmt.Errorf("failed to write template: %w", err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s wrote %s (%d example products)\n",
				statusOK("✓"), outputPath, len(sample.Products(today)))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatValue, "format", string(sample.FormatXLSX), "Template format: xlsx or csv")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path (default: product_template.<format>)")
	cmd.Flags().StringVar(&dateValue, "now", "", "Date the example flash sale is relative to, YYYY-MM-DD (default: today)")
	return cmd
}
