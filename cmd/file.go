package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/config"
	"github.com/arodionov/timesheet/internal/workbook"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Manage the configured workbook",
}

var fileSetCmd = &cobra.Command{
	Use:   "set <path.xlsx>",
	Short: "Validate a workbook and save its path to config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		sheets := cfg.WorkbookSheets()

		if err := workbook.Verify(path, sheets); err != nil {
			return structureHint(err)
		}
		// The reference sheet must actually offer selections, not just exist.
		if _, err := workbook.LoadReference(path, sheets); err != nil {
			return structureHint(err)
		}

		cfg.WorkbookPath = path
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Workbook set to %s\n", path)
		return nil
	},
}

var fileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured workbook path",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.WorkbookPath == "" {
			fmt.Println("No workbook configured")
			return nil
		}
		fmt.Println(cfg.WorkbookPath)
		return nil
	},
}

var fileOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the configured workbook in the default application",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireWorkbook()
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.WorkbookPath); err != nil {
			return fmt.Errorf("configured workbook does not exist: %w", err)
		}
		return openInDefaultApp(cfg.WorkbookPath)
	},
}

func openInDefaultApp(path string) error {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		c = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		c = exec.Command("open", path)
	default:
		c = exec.Command("xdg-open", path)
	}
	if err := c.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

func init() {
	fileCmd.AddCommand(fileSetCmd, fileShowCmd, fileOpenCmd)
}
