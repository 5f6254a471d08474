package osdu

// Storage

// LegalCompliance is the compliance status of a record.
type LegalCompliance string

const (
	LegalCompliant   LegalCompliance = "compliant"
	LegalIncompliant LegalCompliance = "incompliant"
)

// Acl lists the groups allowed to view and own a record.
type Acl struct {
	Viewers []string `json:"viewers"`
	Owners  []string `json:"owners"`
}

// Legal holds the legal tags attached to a record.
type Legal struct {
	Legaltags                  []string        `json:"legaltags"`
	OtherRelevantDataCountries []string        `json:"otherRelevantDataCountries"`
	Status                     LegalCompliance `json:"status,omitempty"`
}

// RecordAncestry lists the parent records a record was derived from.
type RecordAncestry struct {
	Parents []string `json:"parents"`
}

// Record is a storage record.
type Record struct {
	ID       string                   `json:"id,omitempty"`
	Version  int64                    `json:"version,omitempty"`
	Kind     string                   `json:"kind"`
	Acl      Acl                      `json:"acl"`
	Legal    Legal                    `json:"legal"`
	Data     map[string]interface{}   `json:"data"`
	Ancestry *RecordAncestry          `json:"ancestry,omitempty"`
	Meta     []map[string]interface{} `json:"meta,omitempty"`
}

// QueryRecordsRequest fetches several records by id.
type QueryRecordsRequest struct {
	Records    []string `json:"records"`
	Attributes []string `json:"attributes,omitempty"`
}

// Search

// SortQuery orders search results.
type SortQuery struct {
	Field []string `json:"field"`
	Order []string `json:"order"`
}

// SpatialFilter restricts search results geographically. The filter body is
// passed through to the search service as-is.
type SpatialFilter struct {
	Field           string                 `json:"field"`
	ByBoundingBox   map[string]interface{} `json:"byBoundingBox,omitempty"`
	ByDistance      map[string]interface{} `json:"byDistance,omitempty"`
	ByGeoPolygon    map[string]interface{} `json:"byGeoPolygon,omitempty"`
	ByIntersection  map[string]interface{} `json:"byIntersection,omitempty"`
	ByWithinPolygon map[string]interface{} `json:"byWithinPolygon,omitempty"`
}

// QueryRequest is the body of the search query endpoints.
type QueryRequest struct {
	Kind                    string         `json:"kind"`
	Query                   string         `json:"query,omitempty"`
	Limit                   int            `json:"limit,omitempty"`
	ReturnHighlightedFields *bool          `json:"returnHighlightedFields,omitempty"`
	ReturnedFields          []string       `json:"returnedFields,omitempty"`
	Sort                    *SortQuery     `json:"sort,omitempty"`
	QueryAsOwner            *bool          `json:"queryAsOwner,omitempty"`
	SpatialFilter           *SpatialFilter `json:"spatialFilter,omitempty"`
	From                    int            `json:"from,omitempty"`
	AggregateBy             string         `json:"aggregateBy,omitempty"`
	Cursor                  string         `json:"cursor,omitempty"`
}

// Legal

// LegalTagProperties describes the terms a legal tag enforces.
type LegalTagProperties struct {
	CountryOfOrigin        []string `json:"countryOfOrigin"`
	ContractID             string   `json:"contractId"`
	ExpirationDate         string   `json:"expirationDate,omitempty"`
	Originator             string   `json:"originator"`
	DataType               string   `json:"dataType"`
	SecurityClassification string   `json:"securityClassification"`
	PersonalData           string   `json:"personalData"`
	ExportClassification   string   `json:"exportClassification"`
}

// LegalTag is a named set of legal properties.
type LegalTag struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Properties  LegalTagProperties `json:"properties"`
}

// UpdateLegalTag changes the mutable fields of a legal tag.
type UpdateLegalTag struct {
	Name                string                 `json:"name"`
	ContractID          string                 `json:"contractId,omitempty"`
	Description         string                 `json:"description,omitempty"`
	ExpirationDate      string                 `json:"expirationDate,omitempty"`
	ExtensionProperties map[string]interface{} `json:"extensionProperties,omitempty"`
}

// LegalTagNames is a batch of legal tag names.
type LegalTagNames struct {
	Names []string `json:"names"`
}

// Entitlements

// Group is an entitlements group.
type Group struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GroupMember adds a member to a group with a role (MEMBER or OWNER).
type GroupMember struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Data workflow

// StartWorkflow is the body of the start workflow endpoint.
type StartWorkflow struct {
	WorkflowType string                 `json:"WorkflowType"`
	DataType     string                 `json:"DataType"`
	Context      map[string]interface{} `json:"Context"`
}

// UpdateStatusRequest changes the status of a workflow run.
type UpdateStatusRequest struct {
	WorkflowID string `json:"WorkflowID"`
	Status     string `json:"Status"`
}

// WorkflowSchedule runs a workflow on a cron schedule.
type WorkflowSchedule struct {
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	CronExpression     string                 `json:"cronExpression"`
	WorkflowName       string                 `json:"workflowName"`
	WorkflowParameters map[string]interface{} `json:"workflowParameters,omitempty"`
}

// GetWorkflowSchedulesRequest fetches schedules by name.
type GetWorkflowSchedulesRequest struct {
	ScheduleNames []string `json:"scheduleNames"`
}

// Dataset

// CreateDatasetRegistriesRequest registers dataset records.
type CreateDatasetRegistriesRequest struct {
	DatasetRegistries []Record `json:"datasetRegistries"`
}

// GetDatasetRegistryRequest fetches dataset registries by id.
type GetDatasetRegistryRequest struct {
	DatasetRegistryIDs []string `json:"datasetRegistryIds"`
}
