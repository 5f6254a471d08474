package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewRecordsCommand creates the records command group.
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record", "storage"},
		Short:   "Manage storage records",
		Long:    "Get, list versions of and delete records in the storage service",
	}

	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsVersionsCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

func newRecordsGetCommand() *cobra.Command {
	var (
		version    string
		attributes []string
	)

	cmd := &cobra.Command{
		Use:   "get RECORD_ID",
		Short: "Get a record",
		Long:  "Get the latest version of a record, or a specific version with --version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				if version != "" {
					return client.Records().GetSpecificRecord(ctx, args[0], version, attributes, opts...)
				}

				return client.Records().GetLatestRecord(ctx, args[0], attributes, opts...)
			})
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "record version")
	cmd.Flags().StringSliceVar(&attributes, "attribute", nil, "data attributes to return (repeatable)")

	return cmd
}

func newRecordsVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions RECORD_ID",
		Short: "List record versions",
		Long:  "List all versions of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Records().GetRecordVersions(ctx, args[0], opts...)
			})
		},
	}
}

func newRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete RECORD_ID",
		Short: "Delete a record",
		Long:  "Logically delete a record from the storage service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error) {
				return client.Records().DeleteRecord(ctx, args[0], opts...)
			})
		},
	}
}
