package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
)

// NewValidateCommand creates the validate command: a schema-only check of
// a scraped catalog source, without generating anything.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate <source.json>",
		Short:         "Validate a scraped catalog source against the schema",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, sourcePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading catalog source", err)
	}

	if err := catalog.ValidateSource(sourcePath, data); err != nil {
		var schemaErr *catalog.SchemaError
		if errors.As(err, &schemaErr) {
			formatter.Error(ErrCodeSchema, schemaErr.Error(), nil)
			return NewExitError(ExitFailure, "catalog source failed validation")
		}
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "validating catalog source", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"valid": true, "source": sourcePath})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s is a valid catalog source\n", sourcePath)
	return nil
}
