package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/qsgal/internal/emit"
)

// EmitOptions holds flags for the emit command.
type EmitOptions struct {
	*RootOptions
	Target string // target name
	DBPath string // build ledger path
}

// MeshResult is the JSON payload of an obj emit.
type MeshResult struct {
	Mesh string `json:"mesh"`
}

// NewEmitCommand creates the emit command.
func NewEmitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EmitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "emit <input>",
		Short: "Emit a QSGAL program for a target",
		Long: `Compile a QSGAL source file and emit it for a target.

Targets:
  manifest - command manifest JSON (default)
  obj      - Wavefront OBJ dual-cube mesh
  wasm     - same output as manifest

Examples:
  qsgal emit grow.qsgal
  qsgal emit grow.qsgal --target obj > grow.obj`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", string(emit.DefaultTarget), "output target (manifest|obj|wasm)")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record the build in this ledger database")

	return cmd
}

func runEmit(opts *EmitOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := opts.NewLogger(cmd.ErrOrStderr()).With("command", "emit")

	// The target is decoded before the source is touched.
	target, err := emit.ParseTarget(opts.Target)
	if err != nil {
		return commandError(formatter, err)
	}

	b, err := runPipeline(input, target, logger)
	if err != nil {
		return commandError(formatter, err)
	}

	if opts.DBPath != "" {
		if err := recordBuild(cmd.Context(), opts.DBPath, b, logger); err != nil {
			return commandError(formatter, ledgerError(err))
		}
	}

	if formatter.Format == "json" {
		if b.Output.Manifest != nil {
			return formatter.Success(b.Output.Manifest)
		}
		return formatter.Success(MeshResult{Mesh: b.Output.Mesh})
	}

	data, err := b.Output.Bytes()
	if err != nil {
		return commandError(formatter, err)
	}
	return formatter.Raw(data)
}
