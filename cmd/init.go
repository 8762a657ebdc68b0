package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/config"
	"github.com/arodionov/timesheet/internal/workbook"
)

var (
	initForce bool
	initUse   bool
)

// initCmd writes a workbook with the required sheet layout: a reference sheet
// with project/activity columns and a time-log sheet with
// date/project/activity/duration columns.
var initCmd = &cobra.Command{
	Use:   "init <path.xlsx>",
	Short: "Create a template workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := workbook.CreateTemplate(path, cfg.WorkbookSheets(), initForce); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		fmt.Println("Fill in the reference sheet with your projects and activities before starting a timer.")

		if initUse {
			cfg.WorkbookPath = path
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Printf("Workbook path saved to config\n")
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&initUse, "use", false, "Save the new workbook as the configured path")
}
