package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// emailCmd represents the email command group
var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Email accounts",
}

// emailListCmd lists every account with its website count
var emailListCmd = &cobra.Command{
	Use:   "list",
	Short: "List email accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		emails, err := svc.Emails.ListSummaries(cmd.Context())
		if err != nil {
			return fmt.Errorf("list email accounts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(emails) == 0 {
			fmt.Fprintln(out, "No email accounts yet.")
			return nil
		}

		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "%-6s %-32s %-8s %s\n", "ID", "Email", "Sites", "Purpose")
		fmt.Fprintln(out, separator)
		for _, e := range emails {
			fmt.Fprintf(out, "%-6d %-32s %-8d %s\n", e.ID, e.Email, e.WebsiteCount, e.Purpose)
		}
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "%d account(s)\n", len(emails))
		return nil
	},
}

const separator = "----------------------------------------------------------------"

func init() {
	emailCmd.AddCommand(emailListCmd)
}
