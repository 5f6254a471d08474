package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// PartitionClient implements osdu.PartitionClient.
type PartitionClient struct {
	service service
}

// NewPartitionClient creates a new partition client.
func NewPartitionClient(httpClient *http.Client, partitionURL string) *PartitionClient {
	return &PartitionClient{
		service: newService(httpClient, "partition", partitionURL),
	}
}

// GetPartition implements osdu.PartitionClient.GetPartition.
func (c *PartitionClient) GetPartition(ctx context.Context, partitionID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "partitions/"+escape(partitionID), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting partition: %w", err)
	}

	return resp, nil
}
