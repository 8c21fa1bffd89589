package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every command that touches the catalog.
type globalFlags struct {
	projectPath string
	catalogDir  string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "brandaudit",
		Short: "Check websites against brand guidelines",
		Long:  "brandaudit detects which brand a website belongs to and scores how closely the page follows that brand's color, typography, logo and tone guidelines.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.projectPath, "project", ".", "Project directory holding .brandaudit.yaml")
	cmd.PersistentFlags().StringVar(&flags.catalogDir, "catalog", "", "Guideline directory (overrides catalog_dir and database_url)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log_level)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newBrandsCmd(flags))
	cmd.AddCommand(newDetectCmd(flags))
	cmd.AddCommand(newSuggestCmd(flags))
	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
