package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ukaji3/promowidget-go/pkg/promowidget"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/fields"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/flash"
	"github.com/ukaji3/promowidget-go/pkg/promowidget/render"
)

const maxNameWidth = 32

var inspectColumns = []string{"#", "PRODUCT", "BRAND", "FLASH", "WINDOW", "LIVE", "MSRP", "MAP", "DEALER", "ELITE"}

func newInspectCommand(a *app) *cobra.Command {
	var nowValue string

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx|input.csv]",
		Short: "Show how each spreadsheet row is read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clock, err := a.clock(nowValue)
			if err != nil {
				return err
			}
			now := clock()

			table, err := promowidget.Load(args[0], a.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: sheet %q, header row %d, %d rows, evaluated at %s\n\n",
				table.BookName, table.SheetName, table.HeaderRow, len(table.Rows), now.Format("2006-01-02 15:04 MST"))

			lines := make([][]string, 0, len(table.Rows))
			for i, row := range table.Rows {
				p := render.Derive(i, row, now.Location())
				lines = append(lines, []string{
					strconv.Itoa(i + 1),
					runewidth.Truncate(p.Name, maxNameWidth, "…"),
					p.BrandName,
					yesNo(p.IsFlash),
					window(p.FlashStart, p.FlashEnd, p.IsFlash),
					yesNo(flash.Active(p.IsFlash, p.FlashStart, p.FlashEnd, now)),
					price(p.Prices.MSRP),
					price(p.Prices.MAP),
					price(p.Prices.Dealer),
					price(p.Prices.Elite),
				})
			}
			writeTable(out, inspectColumns, lines)
			return nil
		},
	}

	addClockFlags(cmd, &nowValue)
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func window(start, end string, isFlash bool) string {
	if !isFlash {
		return "-"
	}
	if start == "" {
		start = "…"
	}
	if end == "" {
		end = "…"
	}
	return start + " → " + end
}

func price(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return fields.FormatPrice(d.Decimal)
}

// writeTable writes rows aligned by display width.
func writeTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeLine := func(cells []string) {
		var sb strings.Builder
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			if i == len(cells)-1 {
				sb.WriteString(cell)
				continue
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	writeLine(header)
	for _, row := range rows {
		writeLine(row)
	}
}
