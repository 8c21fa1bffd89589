package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/tui"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
)

func newHistoryCmd(flags *globalFlags) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
		oneline    bool
	)

	cmd := &cobra.Command{
		Use:   "history <url>",
		Short: "Show stored audits for a website",
		Long:  "List audits saved for the registrable domain of a URL, newest first, with the score change between runs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags, appOptions{store: true, stderr: logWriter(cmd, flags)})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			records, err := a.audits.History(cmd.Context(), args[0], limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, records)
			}
			if oneline {
				for _, r := range records {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.CreatedAt.Format("2006-01-02"), r.Headline())
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(matching.ParseURL(args[0]).Registrable, records))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of audits to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().BoolVar(&oneline, "oneline", false, "Print one plain line per audit")

	return cmd
}
