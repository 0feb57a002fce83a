package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/cardtable"
	"github.com/phanxgames/cardtable/term"
)

func newTermCmd(opts *options) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the table in the terminal",
		Long: `term runs the table in the current terminal using mouse reporting.
Each cell covers an 8x16 block of the table. Press q or Ctrl+C to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The viewport is replaced with the screen size once it is known.
			viewport := cardtable.Rect{Width: 80 * term.CellWidth, Height: 25 * term.CellHeight}
			table, log, cleanup, err := opts.setup(viewport)
			if err != nil {
				return err
			}
			defer cleanup()

			return term.Run(table, term.RunConfig{
				FrameInterval: interval,
				ScreenshotDir: opts.screenshotDir,
				Logger:        log,
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "frame", 16*time.Millisecond, "time between frames")
	return cmd
}
