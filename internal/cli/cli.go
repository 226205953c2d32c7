package cli

import (
	"github.com/luo-one/organizer/internal/api"
	"github.com/luo-one/organizer/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	db     *gorm.DB
	cfg    *config.Config
	logger *zap.Logger
	svc    *api.Services
)

// rootCmd represents the base command. Without a subcommand it serves the web UI.
var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "Personal organizer for email accounts, deadlines and daily plans",
	Long: `Organizer tracks which email address each website uses, the submission
deadlines on those websites, and a day-by-day task planner.

Running the binary without a command starts the web server. The other
commands read the same database from the terminal.

Examples:
  organizer                          # start the web server
  organizer email list               # accounts with their website counts
  organizer submission list --overdue
  organizer plan show --date 2025-03-10
  organizer stats                    # dashboard counters
  organizer log list -n 20           # recent activity`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

// Execute runs the CLI with the provided database and config
func Execute(database *gorm.DB, config *config.Config, log *zap.Logger) error {
	setup(database, config, log)
	return rootCmd.Execute()
}

func setup(database *gorm.DB, config *config.Config, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	db = database
	cfg = config
	logger = log
	svc = api.NewServices(db, cfg, logger)
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(submissionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(logCmd)
}
