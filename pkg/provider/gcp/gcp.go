// Package gcp provides the Google Cloud credential and blob storage
// plugins. Importing it registers both under the "gcp" provider id.
package gcp

import (
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
)

// Provider settings read from osdu.Config.ProviderSettings.
const (
	SettingServiceAccountFile = "sa_file_path"
	SettingScopes             = "scopes"
	SettingUseMetadataServer  = "use_metadata_server"
	SettingMetadataURL        = "metadata_url"
	SettingStorageEndpoint    = "gcs_endpoint"

	// EnvServiceAccountFile is consulted when sa_file_path is not set.
	EnvServiceAccountFile = "SA_FILE_PATH"
)

// DefaultMetadataURL is the GCE metadata server token endpoint.
const DefaultMetadataURL = "http://metadata.google.internal/computeMetadata/v1/instance/service-accounts/default/token"

// DefaultScopes are requested when no scopes are configured.
var DefaultScopes = []string{"openid", "email", "profile"}

func init() {
	provider.RegisterCredentials(osdu.ProviderGCP, NewCredentials)
	provider.RegisterBlobStorage(osdu.ProviderGCP, NewBlobStorage)
}
