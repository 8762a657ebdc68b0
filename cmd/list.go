package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/utils"
	"github.com/arodionov/timesheet/internal/workbook"
)

var (
	listSince   string
	listFormat  string
	listNoColor bool
	listProject string
	listLimit   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions logged in the workbook",
	Long: `Examples:
	timesheet list                             # everything on the log sheet
	timesheet list --since yesterday           # recent entries only
	timesheet list --since "this month" --project Backend
	timesheet list --format csv > report.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireWorkbook()
		if err != nil {
			return err
		}
		loc := cfg.Location()

		renderConfig := utils.DefaultRenderConfig()
		if listNoColor {
			renderConfig.Color = false
		}
		if listFormat != "" {
			renderConfig.Format = utils.OutputFormat(listFormat)
		}

		var sinceTime time.Time
		if listSince != "" {
			sinceTime, err = utils.ParseFlexibleDate(listSince, loc)
			if err != nil {
				return fmt.Errorf("invalid --since date %q: %w", listSince, err)
			}
		}

		entries, err := workbook.Entries(cfg.WorkbookPath, cfg.WorkbookSheets())
		if err != nil {
			return structureHint(err)
		}

		filtered := entries[:0]
		for _, e := range entries {
			if !sinceTime.IsZero() && e.Date.Before(sinceTime) {
				continue
			}
			if listProject != "" && e.Project != listProject {
				continue
			}
			filtered = append(filtered, e)
		}
		if listLimit > 0 && len(filtered) > listLimit {
			filtered = filtered[len(filtered)-listLimit:]
		}

		renderer := utils.NewRenderer(renderConfig)
		output, err := renderer.RenderEntries(filtered)
		if err != nil {
			return err
		}
		fmt.Print(output)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSince, "since", "", "Date filter (supports: yesterday, 'this week', 2026-01-15, etc.)")
	listCmd.Flags().StringVar(&listFormat, "format", "default", "Output format: default, table, json, csv, quiet")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	listCmd.Flags().StringVar(&listProject, "project", "", "Only show entries for this project")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Show at most the last N entries")
}
