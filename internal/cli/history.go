package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/qsgal/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DBPath string
	Target string // only builds for this target
	Source string // only builds read from this path
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded builds",
		Long: `List the builds recorded in a build ledger by compile --db or emit --db,
oldest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "build ledger database path (required)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "only list builds for this target")
	cmd.Flags().StringVar(&opts.Source, "source", "", "only list builds of this source path")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// filter returns the ledger predicate selected by flags, nil for all builds.
func (o *HistoryOptions) filter() store.Predicate {
	var preds []store.Predicate
	if o.Target != "" {
		preds = append(preds, store.TargetIs(o.Target))
	}
	if o.Source != "" {
		preds = append(preds, store.SourcePathIs(o.Source))
	}
	if len(preds) == 0 {
		return nil
	}
	return store.And{Predicates: preds}
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Listing never creates a ledger.
	if _, err := os.Stat(opts.DBPath); err != nil {
		code := ErrCodeGeneric
		if errors.Is(err, fs.ErrNotExist) {
			code = ErrCodeNotFound
		}
		return commandError(formatter, &LoadError{Code: code, Message: err.Error(), Path: opts.DBPath})
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return commandError(formatter, ledgerError(err))
	}
	defer st.Close()

	builds, err := st.QueryBuilds(cmd.Context(), opts.filter())
	if err != nil {
		return commandError(formatter, ledgerError(err))
	}

	if formatter.Format == "json" {
		return formatter.Success(builds)
	}

	w := cmd.OutOrStdout()
	if len(builds) == 0 {
		fmt.Fprintln(w, "No builds recorded.")
		return nil
	}
	for _, b := range builds {
		fmt.Fprintf(w, "%d  %s  %-8s  %s  rules=%d  %s\n",
			b.Seq, b.ID[:12], b.Target, b.SourcePath, b.RuleCount, b.CompilerVersion)
	}
	return nil
}
