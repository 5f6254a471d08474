package constants

import "time"

// File and directory permissions.
const (
	// ConfigFilePerm is the permission for files written by the CLI.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for identity backend and metadata calls.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRefreshAttempts is the number of identity backend attempts
	// made by a single token refresh.
	DefaultRefreshAttempts = 3

	// DefaultRefreshDelay is the fixed wait between refresh attempts.
	DefaultRefreshDelay = 10 * time.Second

	// DefaultRetryWaitMin is the minimum wait between transport retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between transport retries.
	DefaultRetryWaitMax = 30 * time.Second

	// MaxUnauthorizedRetries is the number of times a request is reissued
	// after a 401 or 403.
	MaxUnauthorizedRetries = 1
)

// Standard headers and values.
const (
	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderDataPartitionID = "data-partition-id"
	HeaderUserAgent       = "User-Agent"

	ContentTypeJSON = "application/json"

	// BearerPrefix is prepended to tokens that do not already carry it.
	BearerPrefix = "Bearer "

	// DefaultUserAgent identifies the client library.
	DefaultUserAgent = "osdu-client-go"
)

// Environment variables.
const (
	// EnvCloudProvider selects the provider id when none is given explicitly.
	EnvCloudProvider = "CLOUD_PROVIDER"

	// EnvConfigPath points at the ini configuration file.
	EnvConfigPath = "OSDU_API_CONFIG_INI"

	// EnvPrefix prefixes environment overrides of configuration keys.
	EnvPrefix = "OSDU_API"

	// DefaultConfigFile is read from the working directory as a last resort.
	DefaultConfigFile = "osdu_api.ini"
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
