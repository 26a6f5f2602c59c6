package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"qq/internal/assets"
	"qq/internal/cache"
	"qq/internal/grid"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the column layout of the demo grid",
	Long:  "Measure the demo grid with the configured font and print the width of every column",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := assets.Load(cfg.ResourceDir, cfg.FontFile, cfg.FontSize)
		defer a.Close()
		return printLayout(cmd.OutOrStdout(), a, cfg.Rows, cfg.RowPitch)
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func printLayout(w io.Writer, m grid.Measurer, rows int, rowPitch float64) error {
	spacing := grid.DefaultSpacing()
	spacing.RowHeight = rowPitch

	g := grid.Fixture(rows)
	defer g.Release()
	l := cache.NewLayouts(m, spacing).Get(g)

	if _, err := fmt.Fprintf(w, "%-4s %-30s %8s %8s\n", "COL", "HEADER", "OFFSET", "WIDTH"); err != nil {
		return err
	}
	fmt.Fprintf(w, "%-4s %-30s %8.1f %8.1f\n", "#", "(row counter)", 0.0, l.CounterWidth)
	for col, width := range l.Columns {
		fmt.Fprintf(w, "%-4d %-30s %8.1f %8.1f\n", col, g.Header(col), l.ColumnOffset(col), width)
	}
	fmt.Fprintf(w, "content %.1f x %.1f, %d rows\n", l.Width(), l.Height(), l.Rows)
	return nil
}
