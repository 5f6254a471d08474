package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewEntitlementsCommand creates the entitlements command group.
func NewEntitlementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entitlements",
		Aliases: []string{"ent"},
		Short:   "Inspect entitlements",
		Long:    "Inspect entitlements groups of the calling identity",
	}

	cmd.AddCommand(newEntitlementsGroupsCommand())

	return cmd
}

func newEntitlementsGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List groups of the caller",
		Long:  "List the entitlements groups the calling identity belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Entitlements().GetGroupsForUser(ctx, opts...)
			})
		},
	}
}
