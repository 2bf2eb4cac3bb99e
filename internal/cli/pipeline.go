package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/qsgal/internal/compiler"
	"github.com/roach88/qsgal/internal/emit"
	"github.com/roach88/qsgal/internal/ir"
	"github.com/roach88/qsgal/internal/store"
)

// newFormatter builds the output formatter for one command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// build is one run of the pipeline from source file to emitted output.
type build struct {
	Path   string
	Source string
	IR     *ir.IR
	Output *emit.Output
}

// runPipeline reads path, compiles it and emits target.
func runPipeline(path string, target emit.Target, logger *slog.Logger) (*build, error) {
	source, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("read source", "path", path, "bytes", len(source))

	prog, err := compiler.Compile(source, compiler.Options{Logger: logger})
	if err != nil {
		return nil, err
	}

	out, err := emit.Emit(prog, target)
	if err != nil {
		return nil, err
	}
	logger.Debug("emitted", "target", target)

	return &build{Path: path, Source: source, IR: prog, Output: out}, nil
}

// recordBuild appends b to the build ledger at dbPath.
func recordBuild(ctx context.Context, dbPath string, b *build, logger *slog.Logger) error {
	outputHash, err := b.Output.Hash()
	if err != nil {
		return fmt.Errorf("hashing output: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.RecordBuild(ctx, store.NewBuild(b.Path, b.Source, string(b.Output.Target), outputHash, b.IR))
	if err != nil {
		return err
	}
	logger.Debug("recorded build", "id", rec.ID, "seq", rec.Seq, "run_id", rec.RunID)
	return nil
}

// ledgerError marks err as a build ledger failure.
func ledgerError(err error) error {
	return &LoadError{Code: ErrCodeLedger, Message: err.Error()}
}
