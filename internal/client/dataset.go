package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// DatasetRegistryClient implements osdu.DatasetRegistryClient.
type DatasetRegistryClient struct {
	service service
}

// NewDatasetRegistryClient creates a new dataset registry client.
func NewDatasetRegistryClient(httpClient *http.Client, datasetURL string) *DatasetRegistryClient {
	return &DatasetRegistryClient{
		service: newService(httpClient, "dataset", datasetURL),
	}
}

// RegisterDataset implements osdu.DatasetRegistryClient.RegisterDataset.
func (c *DatasetRegistryClient) RegisterDataset(ctx context.Context, request *osdu.CreateDatasetRegistriesRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPut, "registerDataset", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("registering dataset: %w", err)
	}

	return resp, nil
}

// GetDatasetRegistry implements osdu.DatasetRegistryClient.GetDatasetRegistry.
func (c *DatasetRegistryClient) GetDatasetRegistry(ctx context.Context, recordID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "getDatasetRegistry", url.Values{"id": {recordID}}, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting dataset registry: %w", err)
	}

	return resp, nil
}

// GetDatasetRegistries implements osdu.DatasetRegistryClient.GetDatasetRegistries.
func (c *DatasetRegistryClient) GetDatasetRegistries(ctx context.Context, request *osdu.GetDatasetRegistryRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "getDatasetRegistry", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("getting dataset registries: %w", err)
	}

	return resp, nil
}

// DatasetDMSClient implements osdu.DatasetDMSClient.
type DatasetDMSClient struct {
	service service
}

// NewDatasetDMSClient creates a new dataset DMS client.
func NewDatasetDMSClient(httpClient *http.Client, datasetURL string) *DatasetDMSClient {
	return &DatasetDMSClient{
		service: newService(httpClient, "dataset", datasetURL),
	}
}

// GetStorageInstructions implements osdu.DatasetDMSClient.GetStorageInstructions.
func (c *DatasetDMSClient) GetStorageInstructions(ctx context.Context, kindSubType string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "getStorageInstructions", url.Values{"kindSubType": {kindSubType}}, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting storage instructions: %w", err)
	}

	return resp, nil
}

// GetRetrievalInstructions implements osdu.DatasetDMSClient.GetRetrievalInstructions.
func (c *DatasetDMSClient) GetRetrievalInstructions(ctx context.Context, recordID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "getRetrievalInstructions", url.Values{"id": {recordID}}, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting retrieval instructions: %w", err)
	}

	return resp, nil
}

// GetMultipleRetrievalInstructions implements osdu.DatasetDMSClient.GetMultipleRetrievalInstructions.
func (c *DatasetDMSClient) GetMultipleRetrievalInstructions(ctx context.Context, request *osdu.GetDatasetRegistryRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "getRetrievalInstructions", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("getting retrieval instructions: %w", err)
	}

	return resp, nil
}
