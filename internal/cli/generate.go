package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/sorter"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Output string // output artifact path
}

// GenerateStats summarizes a successful generation.
type GenerateStats struct {
	Quests int `json:"quests"`
	Tiers  int `json:"tiers"`
	Edges  int `json:"edges"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <source.json>",
		Short: "Generate the tiered catalog artifact from a scraped source",
		Long: `Generate validates a scraped catalog source, resolves quest titles to
stable ids, sorts the quests into dependency tiers, and writes the
catalog artifact consumed at runtime.

A dependency cycle in the source aborts generation: no partial catalog
is ever written.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "catalog.json", "output artifact path")

	return cmd
}

func runGenerate(opts *GenerateOptions, sourcePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	src, err := catalog.LoadSource(sourcePath)
	if err != nil {
		var schemaErr *catalog.SchemaError
		if errors.As(err, &schemaErr) {
			formatter.Error(ErrCodeSchema, schemaErr.Error(), nil)
			return NewExitError(ExitFailure, "catalog source failed validation")
		}
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading catalog source", err)
	}
	formatter.VerboseLog("Loaded %d quest(s) from %s", len(src), sourcePath)

	cat, err := sorter.Sort(src)
	if err != nil {
		var cycleErr *sorter.CycleError
		if errors.As(err, &cycleErr) {
			formatter.Error(ErrCodeCycle, cycleErr.Error(), cycleErr.Stuck)
			return NewExitError(ExitFailure, "dependency cycle in catalog source")
		}
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "sorting catalog", err)
	}

	if err := catalog.WriteFile(cat, opts.Output); err != nil {
		formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "writing catalog artifact", err)
	}

	stats := GenerateStats{
		Quests: cat.Len(),
		Tiers:  len(cat),
		Edges:  len(cat.Edges()),
	}
	return outputGenerateSuccess(formatter, stats, opts.Output)
}

func outputGenerateSuccess(formatter *OutputFormatter, stats GenerateStats, output string) error {
	if formatter.Format == "json" {
		return formatter.Success(stats)
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %d quest(s) in %d tier(s), %d edge(s)\n",
		stats.Quests, stats.Tiers, stats.Edges)
	fmt.Fprintf(formatter.Writer, "Catalog written to %s\n", output)
	return nil
}
