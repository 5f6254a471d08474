package osdu

import (
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an osdu.Client.
//
// A Config is resolved once (usually by loading an ini file, see
// osduclient.NewFromFile) and is treated as read-only afterwards.
//
// # Authentication
//
// When UseServicePrincipal is true the client resolves a CredentialProvider
// for Provider from the provider registry and obtains a token before the
// first request. Any request answered with 401 or 403 triggers exactly one
// token refresh and one reissue of the request. When UseServicePrincipal is
// false requests carry only a per-call bearer token (see WithBearerToken),
// or no Authorization header at all.
//
// # TLS
//
// Certificate validation is disabled unless VerifyTLS is set. This mirrors
// how the platform services are commonly deployed behind self-signed
// ingress certificates and is a known risk; set VerifyTLS in production.
type Config struct {
	// Service base URLs. Resource clients append fixed path suffixes.
	StorageURL           string
	SearchURL            string
	LegalURL             string
	SchemaURL            string
	EntitlementsURL      string
	DatasetURL           string
	WorkflowURL          string
	PartitionURL         string
	FileDMSURL           string
	IngestionWorkflowURL string

	// Provider is the cloud provider identifier (gcp, azure, aws) as read from
	// configuration. It is consulted after an explicit id and the
	// CLOUD_PROVIDER environment variable.
	Provider string

	// DataPartitionID is sent as the data-partition-id header on every request.
	DataPartitionID string

	// UseServicePrincipal enables automated authentication.
	UseServicePrincipal bool

	// ProviderSettings holds provider-specific values such as secret names,
	// vault URIs or SSM parameter paths.
	ProviderSettings map[string]string

	// Timeout bounds every HTTP call made by the client. Zero means
	// DefaultHTTPTimeout.
	Timeout time.Duration

	// VerifyTLS enables certificate validation.
	VerifyTLS bool

	UserAgent string
	Debug     bool
	Logger    Logger

	// RetryMax enables retries of 429 and 5xx responses at the transport
	// level. Zero disables them.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// RefreshAttempts and RefreshDelay bound the identity backend retry loop.
	RefreshAttempts int
	RefreshDelay    time.Duration
}

// Setting returns a provider setting, or "" when it is not present.
func (c *Config) Setting(key string) string {
	if c == nil || c.ProviderSettings == nil {
		return ""
	}

	return c.ProviderSettings[key]
}

// SettingOr returns a provider setting, or fallback when it is empty.
func (c *Config) SettingOr(key, fallback string) string {
	value := c.Setting(key)
	if value == "" {
		return fallback
	}

	return value
}

// BoolSetting reports whether a provider setting is "true" or "1".
func (c *Config) BoolSetting(key string) bool {
	switch c.Setting(key) {
	case "true", "True", "TRUE", "1", "yes":
		return true
	default:
		return false
	}
}

// RequireSetting returns a provider setting or an error naming the key.
func (c *Config) RequireSetting(key string) (string, error) {
	value := c.Setting(key)
	if value == "" {
		return "", &MissingSettingError{Key: key}
	}

	return value, nil
}
