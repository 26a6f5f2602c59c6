package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"qq/internal/app"
	"qq/internal/assets"
	"qq/internal/config"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "qq",
	Short: "Split-pane scrollable grid viewer",
	Long:  "A terminal viewer with two scrollable zones split by a draggable divider, the lower one showing a data grid",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// This is the default behavior - start the TUI
		return startTUI(cmd)
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.ResourceDir, "resources", cfg.ResourceDir, "name of the resource directory to search for")
	flags.StringVar(&cfg.FontFile, "font", cfg.FontFile, "font file inside the resource directory")
	flags.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "font size in virtual pixels")
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows in the demo grid")
	flags.Float64Var(&cfg.RowPitch, "row-pitch", cfg.RowPitch, "height of one terminal row in virtual pixels")

	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file to write logs to")
	rootCmd.Flags().Float64Var(&cfg.SplitRatio, "split-ratio", cfg.SplitRatio, "initial divider position as a fraction of the window height")
	rootCmd.Flags().BoolVar(&cfg.PointerShapes, "pointer-shapes", cfg.PointerShapes, "ask the terminal for resize and hand pointer shapes")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func startTUI(cmd *cobra.Command) error {
	// Setup logging to file to avoid interfering with TUI
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	a := assets.Load(cfg.ResourceDir, cfg.FontFile, cfg.FontSize)
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.New(screen, cfg, a, a.CharWidth, os.Stdout).Run(ctx)
}
