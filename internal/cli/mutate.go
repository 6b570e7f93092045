package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/tracker"
)

// The four mutation commands share one shape: open the tracker, apply a
// single progress mutation, report the new completed count.

// NewToggleCommand creates the toggle command.
func NewToggleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <quest-id>",
		Short: "Flip completion of a single quest",
		Long: `Toggle flips completion of one quest without touching any other quest.
The flip is unconditional: toggling a quest whose prerequisites are
incomplete is allowed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(rootOpts, cmd, "toggled", func(ctx context.Context, tr *tracker.Tracker) error {
				return tr.Toggle(ctx, args[0])
			})
		},
	}
}

// NewCompleteCommand creates the complete (fast-forward) command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <quest-id>",
		Short: "Complete every prerequisite of a quest (fast-forward)",
		Long: `Complete marks every transitive prerequisite of the quest as completed,
leaving the quest itself untouched: the player is fast-forwarded to the
point just before the quest.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(rootOpts, cmd, "fast-forwarded to", func(ctx context.Context, tr *tracker.Tracker) error {
				return tr.CompleteAncestors(ctx, args[0])
			})
		},
	}
}

// NewRewindCommand creates the rewind command.
func NewRewindCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rewind <quest-id>",
		Short: "Un-complete a quest and everything that depends on it",
		Long: `Rewind removes the quest and all of its transitive dependants from the
completed set. Unlike complete, the quest itself is included: rewinding
a quest also un-completes it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(rootOpts, cmd, "rewound", func(ctx context.Context, tr *tracker.Tracker) error {
				return tr.UncompleteDescendants(ctx, args[0])
			})
		},
	}
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "reset",
		Short:         "Clear all progress",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(rootOpts, cmd, "reset", func(ctx context.Context, tr *tracker.Tracker) error {
				return tr.Reset(ctx)
			})
		},
	}
}

// MutationResult is the JSON payload after a successful mutation.
type MutationResult struct {
	Action    string `json:"action"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

func runMutation(opts *RootOptions, cmd *cobra.Command, action string, mutate func(context.Context, *tracker.Tracker) error) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	tr, cleanup, err := openTracker(cmd.Context(), opts, formatter)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := mutate(cmd.Context(), tr); err != nil {
		var unknownErr *tracker.UnknownQuestError
		if errors.As(err, &unknownErr) {
			formatter.Error(ErrCodeNotFound, err.Error(), nil)
			return NewExitError(ExitFailure, err.Error())
		}
		formatter.Error(ErrCodeStorage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "applying mutation", err)
	}

	result := MutationResult{
		Action:    action,
		Completed: tr.Progress().Len(),
		Total:     tr.Catalog().Len(),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ %s; %d/%d completed\n", result.Action, result.Completed, result.Total)
	return nil
}
