package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/catalog"
	"github.com/SureDisappointment/arc-raiders-quest-tracker/internal/layout"
)

// LayoutOptions holds flags for the layout command.
type LayoutOptions struct {
	*RootOptions
	NodeWidth  float64
	NodeHeight float64
	GapX       float64
	GapY       float64
}

// NewLayoutCommand creates the layout command: it runs the hierarchical
// layout over the catalog and prints node boxes and connector curves.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LayoutOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "layout",
		Short:         "Compute node positions and edge curves for the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(opts, cmd)
		},
	}

	def := layout.DefaultOptions
	cmd.Flags().Float64Var(&opts.NodeWidth, "node-width", def.NodeWidth, "node width")
	cmd.Flags().Float64Var(&opts.NodeHeight, "node-height", def.NodeHeight, "node height")
	cmd.Flags().Float64Var(&opts.GapX, "gap-x", def.GapX, "horizontal gap between nodes")
	cmd.Flags().Float64Var(&opts.GapY, "gap-y", def.GapY, "vertical gap between rows")

	return cmd
}

func runLayout(opts *LayoutOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cat, err := catalog.ReadFile(opts.config.Catalog)
	if err != nil {
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}

	adapter := layout.New(cat, nil, layout.Options{
		NodeWidth:  opts.NodeWidth,
		NodeHeight: opts.NodeHeight,
		GapX:       opts.GapX,
		GapY:       opts.GapY,
	})
	result := adapter.Layout()

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	ids := make([]string, 0, len(result.Nodes))
	for id := range result.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(formatter.Writer, "Nodes (%d):\n", len(ids))
	for _, id := range ids {
		n := result.Nodes[id]
		fmt.Fprintf(formatter.Writer, "  %s at (%.0f, %.0f) %gx%g\n", id, n.X, n.Y, n.Width, n.Height)
	}
	fmt.Fprintf(formatter.Writer, "Curves (%d):\n", len(result.Curves))
	for _, c := range result.Curves {
		fmt.Fprintf(formatter.Writer, "  %s -> %s: (%.0f, %.0f) .. (%.0f, %.0f)\n",
			c.From, c.To, c.Start.X, c.Start.Y, c.End.X, c.End.Y)
	}
	return nil
}
