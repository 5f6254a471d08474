package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/internal/http"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// Client implements the osdu.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials osdu.CredentialProvider
	config      *osdu.Config

	// Resource clients
	records            osdu.RecordsClient
	search             osdu.SearchClient
	legal              osdu.LegalClient
	entitlements       osdu.EntitlementsClient
	schema             osdu.SchemaClient
	datasetRegistry    osdu.DatasetRegistryClient
	datasetDMS         osdu.DatasetDMSClient
	workflow           osdu.WorkflowClient
	workflowScheduling osdu.WorkflowSchedulingClient
	partition          osdu.PartitionClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *osdu.Config, credentials osdu.CredentialProvider) []http.Option {
	httpOpts := []http.Option{
		http.WithDataPartition(config.DataPartitionID),
		http.WithVerifyTLS(config.VerifyTLS),
		http.WithAutoAuthentication(config.UseServicePrincipal && credentials != nil),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a client for the platform services described by config.
//
// credentials may be nil when automated authentication is off. When
// config.UseServicePrincipal is set the first token is obtained here, so a
// misconfigured identity backend is reported before any service call.
func New(ctx context.Context, config *osdu.Config, credentials osdu.CredentialProvider) (*Client, error) {
	if config == nil {
		return nil, osdu.ErrConfigRequired
	}

	if config.UseServicePrincipal && credentials == nil {
		return nil, osdu.ErrNoProviderConfigured
	}

	httpClient := http.NewClient(credentials, createHTTPClientOptions(config, credentials)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: credentials,
		config:      config,
	}

	client.initializeResourceClients()

	if config.UseServicePrincipal {
		_, err := credentials.RefreshToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("obtaining initial token: %w", err)
		}
	}

	return client, nil
}

// NewWithHTTPClient creates a client around an existing request executor.
func NewWithHTTPClient(config *osdu.Config, httpClient *http.Client) *Client {
	client := &Client{
		httpClient:  httpClient,
		credentials: httpClient.Credentials(),
		config:      config,
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	cfg := c.config

	c.records = NewRecordsClient(c.httpClient, cfg.StorageURL, cfg.WorkflowURL)
	c.search = NewSearchClient(c.httpClient, cfg.SearchURL)
	c.legal = NewLegalClient(c.httpClient, cfg.LegalURL)
	c.entitlements = NewEntitlementsClient(c.httpClient, cfg.EntitlementsURL)
	c.schema = NewSchemaClient(c.httpClient, cfg.SchemaURL)
	c.datasetRegistry = NewDatasetRegistryClient(c.httpClient, cfg.DatasetURL)
	c.datasetDMS = NewDatasetDMSClient(c.httpClient, cfg.DatasetURL)
	c.workflow = NewWorkflowClient(c.httpClient, cfg.WorkflowURL)
	c.workflowScheduling = NewWorkflowSchedulingClient(c.httpClient, cfg.WorkflowURL)
	c.partition = NewPartitionClient(c.httpClient, cfg.PartitionURL)
}

// Execute implements osdu.Client.Execute.
func (c *Client) Execute(ctx context.Context, request *osdu.Request) (*osdu.Response, error) {
	resp, err := c.httpClient.Do(ctx, request)
	if err != nil {
		return resp, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

// Credentials implements osdu.Client.Credentials.
func (c *Client) Credentials() osdu.CredentialProvider {
	return c.credentials
}

// Config implements osdu.Client.Config.
func (c *Client) Config() *osdu.Config {
	return c.config
}

// Resource client accessors

// Records implements osdu.Client.Records.
func (c *Client) Records() osdu.RecordsClient {
	return c.records
}

// Search implements osdu.Client.Search.
func (c *Client) Search() osdu.SearchClient {
	return c.search
}

// Legal implements osdu.Client.Legal.
func (c *Client) Legal() osdu.LegalClient {
	return c.legal
}

// Entitlements implements osdu.Client.Entitlements.
func (c *Client) Entitlements() osdu.EntitlementsClient {
	return c.entitlements
}

// Schema implements osdu.Client.Schema.
func (c *Client) Schema() osdu.SchemaClient {
	return c.schema
}

// DatasetRegistry implements osdu.Client.DatasetRegistry.
func (c *Client) DatasetRegistry() osdu.DatasetRegistryClient {
	return c.datasetRegistry
}

// DatasetDMS implements osdu.Client.DatasetDMS.
func (c *Client) DatasetDMS() osdu.DatasetDMSClient {
	return c.datasetDMS
}

// Workflow implements osdu.Client.Workflow.
func (c *Client) Workflow() osdu.WorkflowClient {
	return c.workflow
}

// WorkflowScheduling implements osdu.Client.WorkflowScheduling.
func (c *Client) WorkflowScheduling() osdu.WorkflowSchedulingClient {
	return c.workflowScheduling
}

// Partition implements osdu.Client.Partition.
func (c *Client) Partition() osdu.PartitionClient {
	return c.partition
}

var _ osdu.Client = (*Client)(nil)
