package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kobzarvs/gridsel/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridsel:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		overrides app.Overrides
		printSel  bool
	)
	cmd := &cobra.Command{
		Use:           "gridsel",
		Short:         "Select rectangular cell regions in a terminal table",
		Long:          "Drag with the mouse to select a rectangle of cells. Hold Ctrl (or Meta), or press space, to add further rectangles.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printSel {
				overrides.Out = cmd.OutOrStdout()
			}
			return app.New(overrides).Run()
		},
	}
	cmd.Flags().IntVar(&overrides.Columns, "columns", 0, "number of columns (default from config)")
	cmd.Flags().IntVar(&overrides.Rows, "rows", 0, "number of rows (default from config)")
	cmd.Flags().BoolVar(&overrides.Debug, "debug", false, "write debug logs")
	cmd.Flags().BoolVar(&printSel, "print", false, "print the selected cell ids on exit")
	return cmd
}
