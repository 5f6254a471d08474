package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// WorkflowClient implements osdu.WorkflowClient.
type WorkflowClient struct {
	service service
}

// NewWorkflowClient creates a new data workflow client.
func NewWorkflowClient(httpClient *http.Client, workflowURL string) *WorkflowClient {
	return &WorkflowClient{
		service: newService(httpClient, "data workflow", workflowURL),
	}
}

// StartWorkflow implements osdu.WorkflowClient.StartWorkflow.
func (c *WorkflowClient) StartWorkflow(ctx context.Context, request *osdu.StartWorkflow, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "startWorkflow", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("starting workflow: %w", err)
	}

	return resp, nil
}

// UpdateStatus implements osdu.WorkflowClient.UpdateStatus.
func (c *WorkflowClient) UpdateStatus(ctx context.Context, request *osdu.UpdateStatusRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "updateStatus", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("updating workflow status: %w", err)
	}

	return resp, nil
}

// WorkflowSchedulingClient implements osdu.WorkflowSchedulingClient.
type WorkflowSchedulingClient struct {
	service service
}

// NewWorkflowSchedulingClient creates a new workflow scheduling client.
func NewWorkflowSchedulingClient(httpClient *http.Client, workflowURL string) *WorkflowSchedulingClient {
	return &WorkflowSchedulingClient{
		service: newService(httpClient, "data workflow", workflowURL),
	}
}

// CreateWorkflowSchedule implements osdu.WorkflowSchedulingClient.CreateWorkflowSchedule.
func (c *WorkflowSchedulingClient) CreateWorkflowSchedule(ctx context.Context, schedule *osdu.WorkflowSchedule, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "scheduling", nil, schedule, opts)
	if err != nil {
		return resp, fmt.Errorf("creating workflow schedule: %w", err)
	}

	return resp, nil
}

// ListWorkflowSchedules implements osdu.WorkflowSchedulingClient.ListWorkflowSchedules.
func (c *WorkflowSchedulingClient) ListWorkflowSchedules(ctx context.Context, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodGet, "scheduling", nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("listing workflow schedules: %w", err)
	}

	return resp, nil
}

// GetWorkflowSchedules implements osdu.WorkflowSchedulingClient.GetWorkflowSchedules.
func (c *WorkflowSchedulingClient) GetWorkflowSchedules(ctx context.Context, request *osdu.GetWorkflowSchedulesRequest, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodPost, "scheduling/getSchedules", nil, request, opts)
	if err != nil {
		return resp, fmt.Errorf("getting workflow schedules: %w", err)
	}

	return resp, nil
}

// DeleteWorkflowSchedule implements osdu.WorkflowSchedulingClient.DeleteWorkflowSchedule.
func (c *WorkflowSchedulingClient) DeleteWorkflowSchedule(ctx context.Context, name string, opts ...osdu.CallOption) (*osdu.Response, error) {
	resp, err := c.service.do(ctx, osdu.MethodDelete, "scheduling/"+escape(name), nil, nil, opts)
	if err != nil {
		return resp, fmt.Errorf("deleting workflow schedule: %w", err)
	}

	return resp, nil
}
