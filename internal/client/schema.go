package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// SchemaClient implements osdu.SchemaClient.
type SchemaClient struct {
	service service
}

// NewSchemaClient creates a new schema client.
func NewSchemaClient(httpClient *http.Client, schemaURL string) *SchemaClient {
	return &SchemaClient{
		service: newService(httpClient, "schema", schemaURL),
	}
}

// GetSchemaByID implements osdu.SchemaClient.GetSchemaByID.
func (c *SchemaClient) GetSchemaByID(ctx context.Context, schemaID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "schema/"+escape(schemaID), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting schema: %w", err)
	}

	return resp, nil
}
