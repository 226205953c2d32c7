package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logLimit int

// statsCmd prints the dashboard counters
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		dashboard, err := svc.Dashboard.Summary(cmd.Context())
		if err != nil {
			return fmt.Errorf("load dashboard: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Email accounts:      %d\n", dashboard.Stats.TotalEmails)
		fmt.Fprintf(out, "Websites:            %d\n", dashboard.Stats.TotalWebsites)
		fmt.Fprintf(out, "Pending submissions: %d\n", dashboard.Stats.PendingSubmissions)
		fmt.Fprintf(out, "Overdue:             %d\n", dashboard.Stats.Overdue)
		return nil
	},
}

// logCmd represents the activity log command group
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Activity log",
}

// logListCmd prints the most recent activity log rows
var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := svc.Logs.GetRecentLogs(cmd.Context(), logLimit)
		if err != nil {
			return fmt.Errorf("list activity: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(logs) == 0 {
			fmt.Fprintln(out, "No activity recorded.")
			return nil
		}
		for _, l := range logs {
			fmt.Fprintf(out, "%s %-5s %-10s %-14s %s %s\n",
				l.CreatedAt.Local().Format("2006-01-02 15:04:05"), l.Level, l.Module, l.Action, l.Message, l.Details)
		}
		return nil
	},
}

func init() {
	logListCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of rows to show")
	logCmd.AddCommand(logListCmd)
}
