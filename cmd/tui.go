package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/ui"
	"github.com/arodionov/timesheet/internal/workbook"
)

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireWorkbook()
		if err != nil {
			return err
		}

		ref, err := workbook.LoadReference(cfg.WorkbookPath, cfg.WorkbookSheets())
		if err != nil {
			return structureHint(err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		return ui.Run(cfg, store, ref)
	},
}
