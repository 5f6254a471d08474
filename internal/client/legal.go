package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// LegalClient implements osdu.LegalClient.
type LegalClient struct {
	service service
}

// NewLegalClient creates a new legal tags client.
func NewLegalClient(httpClient *http.Client, legalURL string) *LegalClient {
	return &LegalClient{
		service: newService(httpClient, "legal", legalURL),
	}
}

// GetLegalTag implements osdu.LegalClient.GetLegalTag.
func (c *LegalClient) GetLegalTag(ctx context.Context, name string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "legaltags/"+escape(name), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting legal tag: %w", err)
	}

	return resp, nil
}

// CreateLegalTag implements osdu.LegalClient.CreateLegalTag.
func (c *LegalClient) CreateLegalTag(ctx context.Context, tag *osdu.LegalTag, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "legaltags", nil, tag, opts)
	if err != nil {
		return resp, fmt.Errorf("creating legal tag: %w", err)
	}

	return resp, nil
}

// DeleteLegalTag implements osdu.LegalClient.DeleteLegalTag.
func (c *LegalClient) DeleteLegalTag(ctx context.Context, name string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodDelete, "legaltags/"+escape(name), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("deleting legal tag: %w", err)
	}

	return resp, nil
}

// ListLegalTags implements osdu.LegalClient.ListLegalTags.
func (c *LegalClient) ListLegalTags(ctx context.Context, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "legaltags", nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("listing legal tags: %w", err)
	}

	return resp, nil
}

// UpdateLegalTag implements osdu.LegalClient.UpdateLegalTag.
func (c *LegalClient) UpdateLegalTag(ctx context.Context, update *osdu.UpdateLegalTag, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPut, "legaltags", nil, update, opts)
	if err != nil {
		return resp, fmt.Errorf("updating legal tag: %w", err)
	}

	return resp, nil
}

// GetLegalTags implements osdu.LegalClient.GetLegalTags.
func (c *LegalClient) GetLegalTags(ctx context.Context, names *osdu.LegalTagNames, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "legaltags:batchRetrieve", nil, names, opts)
	if err != nil {
		return resp, fmt.Errorf("retrieving legal tags: %w", err)
	}

	return resp, nil
}

// ValidateLegalTags implements osdu.LegalClient.ValidateLegalTags.
func (c *LegalClient) ValidateLegalTags(ctx context.Context, names *osdu.LegalTagNames, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "legaltags:validate", nil, names, opts)
	if err != nil {
		return resp, fmt.Errorf("validating legal tags: %w", err)
	}

	return resp, nil
}

// GetLegalTagProperties implements osdu.LegalClient.GetLegalTagProperties.
func (c *LegalClient) GetLegalTagProperties(ctx context.Context, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "legaltags:properties", nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting legal tag properties: %w", err)
	}

	return resp, nil
}
