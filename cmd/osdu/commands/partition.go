package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewPartitionCommand creates the partition command group.
func NewPartitionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Inspect data partitions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get PARTITION_ID",
		Short: "Get partition properties",
		Long:  "Display the properties of a data partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Partition().GetPartition(ctx, args[0], opts...)
			})
		},
	})

	return cmd
}
