package notify

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("Timesheet", message, "")
}

// FormatSaved builds the notification shown after a session is written to the
// workbook.
func FormatSaved(project, activity string, elapsed time.Duration) string {
	return fmt.Sprintf("Logged %s for %s / %s", formatClock(elapsed), project, activity)
}

// FormatLogReminder builds the daily reminder prompt.
func FormatLogReminder() (string, string) {
	return "Timesheet reminder", "Have you logged your work time today?"
}

func formatClock(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
