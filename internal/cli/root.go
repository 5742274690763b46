package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the uaclass command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "uaclass",
		Short:         "Classify User-Agent strings by platform and browser",
		SilenceUsage: true,
	}
	root.AddCommand(newClassifyCmd(), newServeCmd())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
