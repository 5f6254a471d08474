package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewLegalCommand creates the legal command group.
func NewLegalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "legal",
		Aliases: []string{"legaltags"},
		Short:   "Manage legal tags",
		Long:    "List and inspect legal tags",
	}

	cmd.AddCommand(newLegalListCommand())
	cmd.AddCommand(newLegalGetCommand())

	return cmd
}

func newLegalListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List legal tags",
		Long:  "List all legal tags of the data partition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Legal().ListLegalTags(ctx, opts...)
			})
		},
	}
}

func newLegalGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LEGAL_TAG_NAME",
		Short: "Get a legal tag",
		Long:  "Display a single legal tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Legal().GetLegalTag(ctx, args[0], opts...)
			})
		},
	}
}
