package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// EntitlementsClient implements osdu.EntitlementsClient.
type EntitlementsClient struct {
	service service
}

// NewEntitlementsClient creates a new entitlements client.
func NewEntitlementsClient(httpClient *http.Client, entitlementsURL string) *EntitlementsClient {
	return &EntitlementsClient{
		service: newService(httpClient, "entitlements", entitlementsURL),
	}
}

// GetGroupsForUser implements osdu.EntitlementsClient.GetGroupsForUser.
func (c *EntitlementsClient) GetGroupsForUser(ctx context.Context, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "groups", nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting groups: %w", err)
	}

	return resp, nil
}

// GetGroupMembers implements osdu.EntitlementsClient.GetGroupMembers.
func (c *EntitlementsClient) GetGroupMembers(ctx context.Context, groupEmail string, limit int, role string, opts ...osdu.CallOption) (*osdu.Response, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("role", role)

	resp, err := c.service.do(ctx, osdu.MethodGet, "groups/"+escape(groupEmail, "members"), query, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("getting group members: %w", err)
	}

	return resp, nil
}

// DeleteGroupMember implements osdu.EntitlementsClient.DeleteGroupMember.
func (c *EntitlementsClient) DeleteGroupMember(ctx context.Context, groupEmail, memberEmail string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodDelete, "groups/"+escape(groupEmail, "members", memberEmail), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("deleting group member: %w", err)
	}

	return resp, nil
}

// CreateGroup implements osdu.EntitlementsClient.CreateGroup.
func (c *EntitlementsClient) CreateGroup(ctx context.Context, group *osdu.Group, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "groups", nil, group, opts)
	if err != nil {
		return resp, fmt.Errorf("creating group: %w", err)
	}

	return resp, nil
}

// CreateGroupMember implements osdu.EntitlementsClient.CreateGroupMember.
func (c *EntitlementsClient) CreateGroupMember(ctx context.Context, groupEmail string, member *osdu.GroupMember, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "groups/"+escape(groupEmail, "members"), nil, member, opts)
	if err != nil {
		return resp, fmt.Errorf("adding group member: %w", err)
	}

	return resp, nil
}
