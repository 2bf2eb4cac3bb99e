package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/qsgal/internal/ir"
)

// VersionInfo is the JSON payload of the version command.
type VersionInfo struct {
	Version   string `json:"version"`
	IRVersion string `json:"ir_version"`
}

// VersionString returns the one-line version banner.
func VersionString() string {
	return fmt.Sprintf("qsgal %s (ir %s)", ir.CompilerVersion, ir.IRVersion)
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the compiler version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			if formatter.Format == "json" {
				return formatter.Success(VersionInfo{Version: ir.CompilerVersion, IRVersion: ir.IRVersion})
			}
			return formatter.Success(VersionString())
		},
	}
}
