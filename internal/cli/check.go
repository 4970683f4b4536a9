package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagemill/pagemill/internal/content"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <batch-file>",
		Short: "Validate the preconditions a record batch must uphold",
		Long: `Validate a record batch against the preconditions the ordering engine
assumes but never enforces: unique paths, unique permalinks, and a
permalink on every record. Also reports how many records are orderable
under each criterion.

Exit code 1 means the batch violates at least one precondition.

Example:
  pagemill check posts.yaml
  pagemill check --format json posts.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	return cmd
}

// checkResult is the check command's output payload.
type checkResult struct {
	Records   int            `json:"records"`
	Problems  []string       `json:"problems,omitempty"`
	Orderable map[string]int `json:"orderable"`
}

// String renders the human-readable form used by text output.
func (r checkResult) String() string {
	lines := make([]string, 0, len(r.Problems)+len(r.Orderable)+2)
	lines = append(lines, fmt.Sprintf("Records: %d", r.Records))
	for _, by := range content.Criteria() {
		lines = append(lines, fmt.Sprintf("  orderable by %s: %d", by.String(), r.Orderable[by.String()]))
	}
	if len(r.Problems) == 0 {
		lines = append(lines, "No problems found.")
	} else {
		lines = append(lines, fmt.Sprintf("Problems (%d):", len(r.Problems)))
		for _, p := range r.Problems {
			lines = append(lines, "  "+p)
		}
	}
	return strings.Join(lines, "\n")
}

func runCheck(opts *CheckOptions, batchPath string, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose).With("run_id", newRunToken())

	logger.Debug("loading batch", "file", batchPath)
	records, err := LoadBatch(batchPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load batch", err)
	}

	result := checkResult{
		Records:   len(records),
		Problems:  CheckBatch(records),
		Orderable: orderableCounts(records),
	}
	logger.Info("batch checked", "records", result.Records, "problems", len(result.Problems))

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if err := formatter.Success(result); err != nil {
		return err
	}

	if n := len(result.Problems); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("batch has %d problems", n))
	}
	return nil
}

// CheckBatch reports every precondition violation in the batch, in input
// order. An empty result means the batch is safe to hand to the engine
// under any criterion.
func CheckBatch(records []*content.Record) []string {
	var problems []string
	seenPaths := make(map[string]bool, len(records))
	seenPermalinks := make(map[string]bool, len(records))

	for i, r := range records {
		if r.Path == "" {
			problems = append(problems, fmt.Sprintf("record %d: empty path", i))
		} else if seenPaths[r.Path] {
			problems = append(problems, fmt.Sprintf("record %d: duplicate path %q", i, r.Path))
		} else {
			seenPaths[r.Path] = true
		}

		// Every record is orderable under at least the path criterion, so
		// every record needs a tie-break permalink.
		if r.Permalink == "" {
			problems = append(problems, fmt.Sprintf("record %d (%s): missing permalink", i, r.Path))
			continue
		}
		if seenPermalinks[r.Permalink] {
			problems = append(problems, fmt.Sprintf("record %d (%s): duplicate permalink %q", i, r.Path, r.Permalink))
		} else {
			seenPermalinks[r.Permalink] = true
		}
	}
	return problems
}

func orderableCounts(records []*content.Record) map[string]int {
	counts := make(map[string]int, len(content.Criteria()))
	for _, by := range content.Criteria() {
		n := 0
		for _, r := range records {
			if content.Sortable(r, by) {
				n++
			}
		}
		counts[by.String()] = n
	}
	return counts
}
