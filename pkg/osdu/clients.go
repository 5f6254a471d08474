package osdu

import (
	"context"
)

// RecordsClient talks to the storage service record API.
type RecordsClient interface {
	CreateOrUpdateRecords(ctx context.Context, records []Record, opts ...CallOption) (*Response, error)
	GetLatestRecord(ctx context.Context, recordID string, attributes []string, opts ...CallOption) (*Response, error)
	GetSpecificRecord(ctx context.Context, recordID, version string, attributes []string, opts ...CallOption) (*Response, error)
	GetRecordVersions(ctx context.Context, recordID string, opts ...CallOption) (*Response, error)
	DeleteRecord(ctx context.Context, recordID string, opts ...CallOption) (*Response, error)
	QueryRecords(ctx context.Context, request *QueryRecordsRequest, opts ...CallOption) (*Response, error)
	IngestRecords(ctx context.Context, body interface{}, opts ...CallOption) (*Response, error)
	QueryRecord(ctx context.Context, recordID string, opts ...CallOption) (*Response, error)
}

// SearchClient talks to the search query API.
type SearchClient interface {
	QueryRecords(ctx context.Context, request *QueryRequest, opts ...CallOption) (*Response, error)
	QueryWithCursor(ctx context.Context, request *QueryRequest, opts ...CallOption) (*Response, error)
}

// LegalClient talks to the legal tag API.
type LegalClient interface {
	GetLegalTag(ctx context.Context, name string, opts ...CallOption) (*Response, error)
	CreateLegalTag(ctx context.Context, tag *LegalTag, opts ...CallOption) (*Response, error)
	DeleteLegalTag(ctx context.Context, name string, opts ...CallOption) (*Response, error)
	ListLegalTags(ctx context.Context, opts ...CallOption) (*Response, error)
	UpdateLegalTag(ctx context.Context, update *UpdateLegalTag, opts ...CallOption) (*Response, error)
	GetLegalTags(ctx context.Context, names *LegalTagNames, opts ...CallOption) (*Response, error)
	ValidateLegalTags(ctx context.Context, names *LegalTagNames, opts ...CallOption) (*Response, error)
	GetLegalTagProperties(ctx context.Context, opts ...CallOption) (*Response, error)
}

// EntitlementsClient talks to the entitlements groups API.
type EntitlementsClient interface {
	GetGroupsForUser(ctx context.Context, opts ...CallOption) (*Response, error)
	GetGroupMembers(ctx context.Context, groupEmail string, limit int, role string, opts ...CallOption) (*Response, error)
	DeleteGroupMember(ctx context.Context, groupEmail, memberEmail string, opts ...CallOption) (*Response, error)
	CreateGroup(ctx context.Context, group *Group, opts ...CallOption) (*Response, error)
	CreateGroupMember(ctx context.Context, groupEmail string, member *GroupMember, opts ...CallOption) (*Response, error)
}

// SchemaClient talks to the schema API.
type SchemaClient interface {
	GetSchemaByID(ctx context.Context, schemaID string, opts ...CallOption) (*Response, error)
}

// DatasetRegistryClient talks to the dataset registry API.
type DatasetRegistryClient interface {
	RegisterDataset(ctx context.Context, request *CreateDatasetRegistriesRequest, opts ...CallOption) (*Response, error)
	GetDatasetRegistry(ctx context.Context, recordID string, opts ...CallOption) (*Response, error)
	GetDatasetRegistries(ctx context.Context, request *GetDatasetRegistryRequest, opts ...CallOption) (*Response, error)
}

// DatasetDMSClient talks to the dataset registry DMS API.
type DatasetDMSClient interface {
	GetStorageInstructions(ctx context.Context, kindSubType string, opts ...CallOption) (*Response, error)
	GetRetrievalInstructions(ctx context.Context, recordID string, opts ...CallOption) (*Response, error)
	GetMultipleRetrievalInstructions(ctx context.Context, request *GetDatasetRegistryRequest, opts ...CallOption) (*Response, error)
}

// WorkflowClient talks to the data workflow API.
type WorkflowClient interface {
	StartWorkflow(ctx context.Context, request *StartWorkflow, opts ...CallOption) (*Response, error)
	UpdateStatus(ctx context.Context, request *UpdateStatusRequest, opts ...CallOption) (*Response, error)
}

// WorkflowSchedulingClient talks to the data workflow scheduling API.
type WorkflowSchedulingClient interface {
	CreateWorkflowSchedule(ctx context.Context, schedule *WorkflowSchedule, opts ...CallOption) (*Response, error)
	ListWorkflowSchedules(ctx context.Context, opts ...CallOption) (*Response, error)
	GetWorkflowSchedules(ctx context.Context, request *GetWorkflowSchedulesRequest, opts ...CallOption) (*Response, error)
	DeleteWorkflowSchedule(ctx context.Context, name string, opts ...CallOption) (*Response, error)
}

// PartitionClient talks to the partition API.
type PartitionClient interface {
	GetPartition(ctx context.Context, partitionID string, opts ...CallOption) (*Response, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Records() RecordsClient
	Search() SearchClient
	Legal() LegalClient
	Entitlements() EntitlementsClient
	Schema() SchemaClient
	DatasetRegistry() DatasetRegistryClient
	DatasetDMS() DatasetDMSClient
	Workflow() WorkflowClient
	WorkflowScheduling() WorkflowSchedulingClient
	Partition() PartitionClient
}

// Client is the entry point to every platform service.
type Client interface {
	ResourceClients

	// Execute issues an arbitrary authenticated request with the same
	// token and retry handling the resource clients use.
	Execute(ctx context.Context, request *Request) (*Response, error)

	// Credentials returns the active credential provider, or nil when
	// automated authentication is disabled.
	Credentials() CredentialProvider

	// Config returns the configuration the client was built with.
	Config() *Config
}
