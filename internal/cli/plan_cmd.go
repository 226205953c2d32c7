package cli

import (
	"fmt"

	"github.com/luo-one/organizer/internal/services"
	"github.com/spf13/cobra"
)

var planDate string

// planCmd represents the day planner command group
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Day planner",
}

// planShowCmd prints one day's tasks and stats
var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tasks planned for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := svc.Dashboard.Today()
		if planDate != "" {
			parsed, err := services.ParseDate(planDate)
			if err != nil {
				return err
			}
			date = parsed
		}

		view, err := svc.Dashboard.DayPlanner(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("load day planner: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan for %s\n", date.Format("Monday, Jan 02, 2006"))
		fmt.Fprintln(out, separator)
		if len(view.Tasks) == 0 {
			fmt.Fprintln(out, "Nothing planned.")
		}
		for _, t := range view.Tasks {
			start, end := "--:--", ""
			if t.StartTime != nil {
				start = *t.StartTime
			}
			if t.EndTime != nil {
				end = "-" + *t.EndTime
			}
			fmt.Fprintf(out, "[%d] %-12s %-10s %-7s %s\n", t.ID, start+end, t.Status, t.Priority, t.TaskTitle)
		}
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "total %d, completed %d, pending %d, high priority %d\n",
			view.Stats.Total, view.Stats.Completed, view.Stats.Pending, view.Stats.HighPriority)

		if len(view.SubmissionsDue) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Submissions due:")
			for _, s := range view.SubmissionsDue {
				fmt.Fprintf(out, "  %s %s\n", s.DueDate.Local().Format("15:04"), s.Title)
			}
		}
		return nil
	},
}

func init() {
	planShowCmd.Flags().StringVar(&planDate, "date", "", "day to show as YYYY-MM-DD (default today)")
	planCmd.AddCommand(planShowCmd)
}
