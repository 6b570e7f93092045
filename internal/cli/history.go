package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/storage"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command, which lists recorded
// progress mutations newest first.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List recorded progress mutations",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "max entries to show (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if dir := filepath.Dir(opts.config.Database); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			formatter.Error(ErrCodeStorage, err.Error(), nil)
			return WrapExitError(ExitCommandError, "creating database directory", err)
		}
	}

	st, err := storage.Open(opts.config.Database)
	if err != nil {
		formatter.Error(ErrCodeStorage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening progress database", err)
	}
	defer st.Close()

	entries, err := st.History(cmd.Context(), opts.Limit)
	if err != nil {
		formatter.Error(ErrCodeStorage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading journal", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No recorded mutations")
		return nil
	}
	for _, e := range entries {
		if e.QuestID == "" {
			fmt.Fprintf(formatter.Writer, "%s  %s\n", e.CreatedAt, e.Op)
			continue
		}
		fmt.Fprintf(formatter.Writer, "%s  %s %s\n", e.CreatedAt, e.Op, e.QuestID)
	}
	return nil
}
