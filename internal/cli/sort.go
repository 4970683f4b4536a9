package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagemill/pagemill/internal/content"
	"github.com/pagemill/pagemill/internal/engine"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	By      string
	Workers int
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort <batch-file>",
		Short: "Order a record batch by the given criterion",
		Long: `Order a batch of content records by one criterion.

The batch file is YAML (or JSON, by extension) holding already-materialized
records. Records missing the fields the criterion needs are reported
separately as unsortable; nothing is dropped.

The result is deterministic: the same batch and criterion produce the same
ordering at any --workers value.

Example:
  pagemill sort --by date posts.yaml
  pagemill sort --by title --workers 8 --format json posts.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "", fmt.Sprintf("ordering criterion (%s)", criterionNames()))
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker count for partition and sort (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func criterionNames() string {
	names := make([]string, 0, len(content.Criteria()))
	for _, by := range content.Criteria() {
		names = append(names, by.String())
	}
	return strings.Join(names, "|")
}

// sortResult is the sort command's output payload.
type sortResult struct {
	By         string   `json:"by"`
	Sorted     []string `json:"sorted"`
	Unsortable []string `json:"unsortable"`
}

// String renders the human-readable form used by text output.
func (r sortResult) String() string {
	lines := make([]string, 0, len(r.Sorted)+len(r.Unsortable)+2)
	lines = append(lines, fmt.Sprintf("Sorted by %s (%d):", r.By, len(r.Sorted)))
	for _, p := range r.Sorted {
		lines = append(lines, "  "+p)
	}
	lines = append(lines, fmt.Sprintf("Unsortable (%d):", len(r.Unsortable)))
	for _, p := range r.Unsortable {
		lines = append(lines, "  "+p)
	}
	return strings.Join(lines, "\n")
}

func runSort(opts *SortOptions, batchPath string, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose).With("run_id", newRunToken())

	by, ok := content.ParseSortBy(opts.By)
	if !ok || by == content.SortByNone {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid criterion %q: must be one of %s", opts.By, criterionNames()))
	}

	logger.Debug("loading batch", "file", batchPath)
	records, err := LoadBatch(batchPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load batch", err)
	}
	logger.Debug("batch loaded", "records", len(records))

	sorted, unsortable := engine.SortRecords(records, by, engine.WithWorkers(opts.Workers))
	logger.Info("batch ordered", "by", by.String(), "sorted", len(sorted), "unsortable", len(unsortable))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(sortResult{
		By:         by.String(),
		Sorted:     sorted,
		Unsortable: unsortable,
	})
}

// newLogger configures slog for one command invocation.
func newLogger(verbose bool) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
