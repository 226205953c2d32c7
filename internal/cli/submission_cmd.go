package cli

import (
	"errors"
	"fmt"

	"github.com/luo-one/organizer/internal/services"
	"github.com/spf13/cobra"
)

var (
	submissionUpcoming bool
	submissionOverdue  bool
)

// submissionCmd represents the submission command group
var submissionCmd = &cobra.Command{
	Use:   "submission",
	Short: "Submission deadlines",
}

// submissionListCmd lists submissions by due date
var submissionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions by due date",
	Long: `List submissions ordered by due date. --upcoming limits the list to the
next pending deadlines, --overdue to pending ones already past due.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if submissionUpcoming && submissionOverdue {
			return errors.New("--upcoming and --overdue cannot be combined")
		}
		filter := services.SubmissionFilterAll
		switch {
		case submissionUpcoming:
			filter = services.SubmissionFilterUpcoming
		case submissionOverdue:
			filter = services.SubmissionFilterOverdue
		}

		submissions, err := svc.Submissions.List(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("list submissions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(submissions) == 0 {
			fmt.Fprintln(out, "No submissions.")
			return nil
		}

		now := svc.Submissions.Now()
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "%-6s %-18s %-10s %s\n", "ID", "Due", "Status", "Title")
		fmt.Fprintln(out, separator)
		for i := range submissions {
			s := &submissions[i]
			status := s.Status
			if s.IsOverdue(now) {
				status = "overdue"
			}
			fmt.Fprintf(out, "%-6d %-18s %-10s %s\n", s.ID, s.DueDate.Local().Format("2006-01-02 15:04"), status, s.Title)
		}
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "%d submission(s)\n", len(submissions))
		return nil
	},
}

func init() {
	submissionListCmd.Flags().BoolVar(&submissionUpcoming, "upcoming", false, "only pending submissions due from now on")
	submissionListCmd.Flags().BoolVar(&submissionOverdue, "overdue", false, "only pending submissions past due")
	submissionCmd.AddCommand(submissionListCmd)
}
