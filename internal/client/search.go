package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// SearchClient implements osdu.SearchClient.
type SearchClient struct {
	service service
}

// NewSearchClient creates a new search client.
func NewSearchClient(httpClient *http.Client, searchURL string) *SearchClient {
	return &SearchClient{
		service: newService(httpClient, "search", searchURL),
	}
}

// QueryRecords implements osdu.SearchClient.QueryRecords.
func (c *SearchClient) QueryRecords(ctx context.Context, request *osdu.QueryRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "query", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("searching records: %w", err)
	}

	return resp, nil
}

// QueryWithCursor implements osdu.SearchClient.QueryWithCursor.
func (c *SearchClient) QueryWithCursor(ctx context.Context, request *osdu.QueryRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "query_with_cursor", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("searching records with cursor: %w", err)
	}

	return resp, nil
}
