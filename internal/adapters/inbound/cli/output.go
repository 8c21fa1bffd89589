package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// logWriter returns stderr when the user asked for logs on a short-lived
// command, and nil otherwise.
func logWriter(cmd *cobra.Command, flags *globalFlags) io.Writer {
	if flags.logLevel == "" {
		return nil
	}
	return cmd.ErrOrStderr()
}
