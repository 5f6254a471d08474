package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// SearchQueryOptions holds the options for a search query.
type SearchQueryOptions struct {
	Kind           string
	Query          string
	Limit          int
	Cursor         string
	UseCursor      bool
	ReturnedFields []string
}

// NewSearchCommand creates the search command group.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search records",
		Long:  "Query the search service index",
	}

	cmd.AddCommand(newSearchQueryCommand())

	return cmd
}

func newSearchQueryCommand() *cobra.Command {
	var opts SearchQueryOptions

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a search query",
		Long:  "Run a search query; --cursor or --paged uses the cursor endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &osdu.QueryRequest{
				Kind:           opts.Kind,
				Query:          opts.Query,
				Limit:          opts.Limit,
				Cursor:         opts.Cursor,
				ReturnedFields: opts.ReturnedFields,
			}

			return runCall(cmd, func(ctx context.Context, client osdu.Client, callOpts []osdu.CallOption) (*osdu.Response, error) {
				if opts.UseCursor || opts.Cursor != "" {
					return client.Search().QueryWithCursor(ctx, request, callOpts...)
				}

				return client.Search().QueryRecords(ctx, request, callOpts...)
			})
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "", "record kind, wildcards allowed")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "query string")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of results")
	cmd.Flags().StringVar(&opts.Cursor, "cursor", "", "cursor returned by a previous paged query")
	cmd.Flags().BoolVar(&opts.UseCursor, "paged", false, "use the cursor endpoint")
	cmd.Flags().StringSliceVar(&opts.ReturnedFields, "field", nil, "fields to return (repeatable)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}
