package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/qsgal/internal/emit"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Output string // output file path
	DBPath string // build ledger path
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <input>",
		Short: "Compile a QSGAL program to a command manifest",
		Long: `Compile a QSGAL source file to a command manifest.

The source is parsed, analyzed and emitted as pretty JSON on stdout.
With --output the manifest is also written to a file. With --db the
build is recorded in the SQLite build ledger.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record the build in this ledger database")

	return cmd
}

func runCompile(opts *CompileOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := opts.NewLogger(cmd.ErrOrStderr()).With("command", "compile")

	b, err := runPipeline(input, emit.TargetManifest, logger)
	if err != nil {
		return commandError(formatter, err)
	}

	data, err := b.Output.Bytes()
	if err != nil {
		return commandError(formatter, err)
	}

	// Write to file if --output specified
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, data, 0644); err != nil {
			return commandError(formatter, &LoadError{
				Code:    ErrCodeWriteFailed,
				Message: fmt.Sprintf("writing output file: %v", err),
			})
		}
		formatter.VerboseLog("Wrote manifest to %s", opts.Output)
	}

	if opts.DBPath != "" {
		if err := recordBuild(cmd.Context(), opts.DBPath, b, logger); err != nil {
			return commandError(formatter, ledgerError(err))
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(b.Output.Manifest)
	}
	return formatter.Raw(data)
}
