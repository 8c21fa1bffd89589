package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/tui"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain/matching"
)

func newDetectCmd(flags *globalFlags) *cobra.Command {
	var (
		company    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "detect <url>",
		Short: "Detect which brand a website belongs to",
		Long:  "Rank the guideline catalog against a URL and an optional company name. Prints the detected brand with its confidence, or suggestions when detection is not confident.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags, appOptions{stderr: logWriter(cmd, flags)})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			res, err := a.detect.DetectBrand(cmd.Context(), args[0], company)
			if err != nil {
				return fmt.Errorf("detection failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDetection(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name hint")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output detection as JSON")

	return cmd
}

func newSuggestCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Search the catalog for brands by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags, appOptions{stderr: logWriter(cmd, flags)})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			suggestions, err := a.detect.Suggest(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("suggest failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, suggestions)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuggestions(args[0], suggestions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output suggestions as JSON")

	return cmd
}

func newBrandsCmd(flags *globalFlags) *cobra.Command {
	var (
		jsonOutput bool
		mappings   bool
	)

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List the brands in the guideline catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), flags, appOptions{stderr: logWriter(cmd, flags)})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if mappings {
				return renderMappings(cmd, a.hosts, jsonOutput)
			}

			summaries, err := a.detect.Guidelines(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, summaries)
			}
			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No brand guidelines found.")
				return nil
			}
			for _, s := range summaries {
				fmt.Fprintf(out, "%-20s %-28s %s\n", s.BrandName, s.CompanyName, s.Industry)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output brands as JSON")
	cmd.Flags().BoolVar(&mappings, "mappings", false, "List the hostname to brand mappings used for detection")

	return cmd
}

func renderMappings(cmd *cobra.Command, hosts *matching.HostnameTable, jsonOutput bool) error {
	if jsonOutput {
		m := make(map[string]string, hosts.Len())
		for _, h := range hosts.Hosts() {
			m[h], _ = hosts.Lookup(h)
		}
		return renderJSON(cmd, m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d hostname mappings\n", hosts.Len())
	for _, h := range hosts.Hosts() {
		brand, _ := hosts.Lookup(h)
		fmt.Fprintf(out, "%-28s %s\n", h, brand)
	}
	return nil
}
