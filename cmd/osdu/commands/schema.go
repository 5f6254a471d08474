package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewSchemaCommand creates the schema command group.
func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect schemas",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get SCHEMA_ID",
		Short: "Get a schema",
		Long:  "Display a schema by its id, for example osdu:wks:master-data--Well:1.0.0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Schema().GetSchemaByID(ctx, args[0], opts...)
			})
		},
	})

	return cmd
}
