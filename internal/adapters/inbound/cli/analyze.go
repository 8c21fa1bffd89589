package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/observation"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/report"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/outbound/tui"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/application"
	"github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/domain"
)

const (
	formatTUI      = "tui"
	formatJSON     = "json"
	formatMarkdown = "md"
)

type analyzeResult struct {
	File   string              `json:"file"`
	Record *domain.AuditRecord `json:"record,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func newAnalyzeCmd(flags *globalFlags) *cobra.Command {
	var (
		brand      string
		url        string
		company    string
		format     string
		jsonOutput bool
		ciMode     bool
		minScore   int
		noStore    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <observation|dir>...",
		Short: "Audit website observations against brand guidelines",
		Long: "Load one or more website observations (.json from a scraper, or saved .html pages; " +
			"directories are searched for both), " +
			"detect or select the brand guideline, and print a compliance report. " +
			"Several observations are audited concurrently.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				format = formatJSON
			}
			switch format {
			case formatTUI, formatJSON, formatMarkdown:
			default:
				return fmt.Errorf("unknown format %q (valid: tui, json, md)", format)
			}

			// 1. Load observations
			files, err := observation.Expand(args)
			if err != nil {
				return err
			}
			loader := observation.New()
			reqs := make([]application.AuditRequest, len(files))
			for i, path := range files {
				obs, err := loader.Load(path)
				if err != nil {
					return fmt.Errorf("loading observation: %w", err)
				}
				reqs[i] = application.AuditRequest{URL: url, BrandName: brand, CompanyHint: company, Observation: obs}
			}

			// 2. Wire services
			a, err := openApp(cmd.Context(), flags, appOptions{store: !noStore, stderr: logWriter(cmd, flags)})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()
			if !cmd.Flags().Changed("min") {
				minScore = a.cfg.MinScore
			}

			// 3. Audit
			var results []analyzeResult
			if len(reqs) == 1 {
				rec, err := a.audits.Audit(cmd.Context(), reqs[0])
				if err != nil {
					return explainAuditError(cmd, format, err)
				}
				results = append(results, analyzeResult{File: files[0], Record: rec})
			} else {
				items, err := a.batch().Run(cmd.Context(), reqs)
				if err != nil {
					return fmt.Errorf("audit batch: %w", err)
				}
				for i, item := range items {
					r := analyzeResult{File: files[i], Record: item.Record}
					if item.Err != nil {
						r.Error = item.Err.Error()
					}
					results = append(results, r)
				}
			}

			// 4. Render
			if err := renderResults(cmd, format, results); err != nil {
				return err
			}

			// 5. CI gate
			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
					continue
				}
				if ciMode && r.Record.Report.Score < minScore {
					return fmt.Errorf("%s: score %d is below minimum %d", r.File, r.Record.Report.Score, minScore)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d audits failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Audit against this brand instead of detecting it")
	cmd.Flags().StringVar(&url, "url", "", "Page URL (defaults to the observation's url)")
	cmd.Flags().StringVar(&company, "company", "", "Company name hint for detection")
	cmd.Flags().StringVar(&format, "format", formatTUI, "Output format: tui, json or md")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON (same as --format json)")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if a score is below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode (defaults to min_score)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not save audits to history")

	return cmd
}

func renderResults(cmd *cobra.Command, format string, results []analyzeResult) error {
	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		if len(results) == 1 {
			return renderJSON(cmd, results[0].Record)
		}
		return renderJSON(cmd, results)
	case formatMarkdown:
		w := report.NewMarkdownWriter(out)
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(out, "> %s: %s\n\n", r.File, r.Error)
				continue
			}
			if err := w.Write(r.Record); err != nil {
				return fmt.Errorf("writing markdown report: %w", err)
			}
		}
		return nil
	default:
		for _, r := range results {
			if r.Error != "" {
				fmt.Fprintf(out, "  %s: %s\n", r.File, r.Error)
				continue
			}
			fmt.Fprint(out, tui.RenderReport(r.Record.BrandName, r.Record.URL, r.Record.Report))
		}
		return nil
	}
}

// explainAuditError shows the detection suggestions when the brand could not
// be detected, then returns err.
func explainAuditError(cmd *cobra.Command, format string, err error) error {
	var nd *application.NotDetectedError
	if !errors.As(err, &nd) || nd.Detection == nil {
		return fmt.Errorf("audit failed: %w", err)
	}
	if format == formatJSON {
		if jerr := renderJSON(cmd, nd.Detection); jerr != nil {
			return jerr
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderDetection(nd.Detection))
	}
	return fmt.Errorf("%w (pass --brand to choose one)", err)
}
