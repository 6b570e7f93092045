package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/tracker"
)

// QuestStatus is the derived state of one quest, as shown to the user.
type QuestStatus struct {
	ID                    string `json:"id"`
	Title                 string `json:"title"`
	Completed             bool   `json:"completed"`
	Available             bool   `json:"available"`
	HasCompletedDependant bool   `json:"has_completed_dependant"`
}

// TierStatus groups quest statuses by tier.
type TierStatus struct {
	Tier   int           `json:"tier"`
	Quests []QuestStatus `json:"quests"`
}

// StatusReport is the full status payload.
type StatusReport struct {
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
	Tiers     []TierStatus `json:"tiers"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "status",
		Short:         "Show per-tier quest completion and availability",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd)
		},
	}

	return cmd
}

func runStatus(opts *RootOptions, cmd *cobra.Command) error {
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

	report := buildStatusReport(tr)
	return outputStatus(formatter, report)
}

// buildStatusReport derives the per-quest predicates for every tier.
// Everything here is recomputed from the completed set; nothing is cached.
func buildStatusReport(tr *tracker.Tracker) StatusReport {
	report := StatusReport{Total: tr.Catalog().Len()}

	for i, tier := range tr.Catalog() {
		ts := TierStatus{Tier: i}
		for _, q := range tier {
			qs := QuestStatus{
				ID:                    q.ID,
				Title:                 q.Title,
				Completed:             tr.Completed(q.ID),
				Available:             tr.Available(q.ID),
				HasCompletedDependant: tr.HasCompletedDependant(q.ID),
			}
			if qs.Completed {
				report.Completed++
			}
			ts.Quests = append(ts.Quests, qs)
		}
		report.Tiers = append(report.Tiers, ts)
	}

	return report
}

func outputStatus(formatter *OutputFormatter, report StatusReport) error {
	if formatter.Format == "json" {
		return formatter.Success(report)
	}

	fmt.Fprintf(formatter.Writer, "Progress: %d/%d completed\n", report.Completed, report.Total)
	for _, tier := range report.Tiers {
		fmt.Fprintf(formatter.Writer, "\nTier %d:\n", tier.Tier)
		for _, q := range tier.Quests {
			fmt.Fprintf(formatter.Writer, "  %s %s (%s)\n", statusMarker(q), q.Title, q.ID)
		}
	}
	return nil
}

// statusMarker picks the one-cell marker for a quest:
// [x] completed, [ ] available, [-] locked behind unmet dependencies.
func statusMarker(q QuestStatus) string {
	switch {
	case q.Completed:
		return "[x]"
	case q.Available:
		return "[ ]"
	default:
		return "[-]"
	}
}
