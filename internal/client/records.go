package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// RecordsClient implements osdu.RecordsClient.
type RecordsClient struct {
	storage  service
	workflow service
}

// NewRecordsClient creates a new records client. Ingestion goes through the
// data workflow service, the other operations through storage.
func NewRecordsClient(httpClient *http.Client, storageURL, workflowURL string) *RecordsClient {
	return &RecordsClient{
		storage:  newService(httpClient, "storage", storageURL),
		workflow: newService(httpClient, "data workflow", workflowURL),
	}
}

// CreateOrUpdateRecords implements osdu.RecordsClient.CreateOrUpdateRecords.
func (c *RecordsClient) CreateOrUpdateRecords(ctx context.Context, records []osdu.Record, opts ...osdu.CallOption) (*osdu.Response, error) {
	if records == nil {
		records = []osdu.Record{}
	}

	resp, err := c.storage.do(ctx, osdu.MethodPut, "records", nil, records, opts)
	if err != nil {
		return resp, fmt.Errorf("creating or updating records: %w", err)
	}

	return resp, nil
}

// GetLatestRecord implements osdu.RecordsClient.GetLatestRecord.
func (c *RecordsClient) GetLatestRecord(ctx context.Context, recordID string, attributes []string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.storage.do(ctx, osdu.MethodGet, "records/"+escape(recordID), attributeQuery(attributes), nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting latest record: %w", err)
	}

	return resp, nil
}

// GetSpecificRecord implements osdu.RecordsClient.GetSpecificRecord.
func (c *RecordsClient) GetSpecificRecord(ctx context.Context, recordID, version string, attributes []string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.storage.do(ctx, osdu.MethodGet, "records/"+escape(recordID, version), attributeQuery(attributes), nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting record version: %w", err)
	}

	return resp, nil
}

// GetRecordVersions implements osdu.RecordsClient.GetRecordVersions.
func (c *RecordsClient) GetRecordVersions(ctx context.Context, recordID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.storage.do(ctx, osdu.MethodGet, "records/versions/"+escape(recordID), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting record versions: %w", err)
	}

	return resp, nil
}

// DeleteRecord implements osdu.RecordsClient.DeleteRecord.
func (c *RecordsClient) DeleteRecord(ctx context.Context, recordID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.storage.do(ctx, osdu.MethodDelete, "records/"+escape(recordID), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("deleting record: %w", err)
	}

	return resp, nil
}

// QueryRecords implements osdu.RecordsClient.QueryRecords.
func (c *RecordsClient) QueryRecords(ctx context.Context, request *osdu.QueryRecordsRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.storage.do(ctx, osdu.MethodPost, "query/records", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("querying records: %w", err)
	}

	return resp, nil
}

// IngestRecords implements osdu.RecordsClient.IngestRecords. body is sent
// as-is, so pre-serialised JSON passes through untouched.
func (c *RecordsClient) IngestRecords(ctx context.Context, body interface{}, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.workflow.do(ctx, osdu.MethodPost, "workflowRun", nil, body, opts)
	if err != nil {
		return resp, fmt.Errorf("ingesting records: %w", err)
	}

	return resp, nil
}

// QueryRecord implements osdu.RecordsClient.QueryRecord.
func (c *RecordsClient) QueryRecord(ctx context.Context, recordID string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.storage.do(ctx, osdu.MethodGet, "records/"+escape(recordID), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("querying record: %w", err)
	}

	return resp, nil
}

func attributeQuery(attributes []string) url.Values {
	if len(attributes) == 0 {
		return nil
	}

	return url.Values{"attribute": attributes}
}
