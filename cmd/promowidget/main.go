// Package main provides the CLI entry point for promowidget-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/promowidget-go/internal/config"
	"github.com/ukaji3/promowidget-go/internal/logging"
	"github.com/ukaji3/promowidget-go/pkg/promowidget"
)

// skipConfig marks commands that must run without loading the config.
const skipConfig = "promowidget/skip-config"

var (
	statusOK   = color.New(color.FgGreen).SprintFunc()
	statusWarn = color.New(color.FgYellow).SprintFunc()
	statusErr  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	envFile    string
	noColor    bool

	cfg *config.Config
	log logr.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	handleError(stderr, err)
	if err != nil {
		return 1
	}
	return 0
}

func newRootCommand() *cobra.Command {
	a := &app{}
	logLevel := "info"
	cmd := &cobra.Command{
		Use:   "promowidget",
		Short: "Turn product spreadsheets into embeddable promotion widgets",
		Long: `promowidget reads a product spreadsheet (.xlsx or .csv), finds its header
row, and writes a self-contained HTML widget with product cards, brand and
flash-sale filters, and the script that drives them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a promowidget.yaml config file")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored status output")

	cmd.AddCommand(
		newGenerateCommand(a),
		newInspectCommand(a),
		newTemplateCommand(),
		newConfigCommand(),
	)
	cmd.Example = `  # Write a starter spreadsheet, then turn it into a widget
  promowidget template -o products.xlsx
  promowidget generate products.xlsx -o widget.html --preview preview.html

  # Check which rows are live flash sales on a given day
  promowidget inspect products.xlsx --now 2025-09-16`
	return cmd
}

// setup loads .env, the config file, env vars and bound flags, then
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		color.NoColor = true
	}
	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	v := config.NewViper(a.configPath)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	log.V(1).Info("configuration loaded", "file", v.ConfigFileUsed())
	return nil
}

func (a *app) options() promowidget.Options {
	opts := promowidget.DefaultOptions()
	opts.Appearance = a.cfg.Appearance()
	opts.ExpectedColumns = a.cfg.ExpectedColumns
	opts.Header = a.cfg.HeaderParams()
	opts.Logger = a.log
	return opts
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	fmt.Fprintf(w, "%s %s\n", statusErr("Error:"), err)

	var hnf *promowidget.HeaderNotFoundError
	switch {
	case errors.As(err, &hnf):
		fmt.Fprintln(w, "Expected a header row with these columns:")
		for _, col := range hnf.Expected {
			fmt.Fprintf(w, "  - %s\n", col)
		}
		fmt.Fprintf(w, "%s run 'promowidget template' for a starter spreadsheet.\n", statusWarn("Hint:"))
	case errors.Is(err, promowidget.ErrUnreadableFile):
		fmt.Fprintf(w, "%s save the file as .xlsx or .csv and try again.\n", statusWarn("Hint:"))
	}
}
