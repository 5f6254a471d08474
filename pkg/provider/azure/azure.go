// Package azure provides the Azure credential and blob storage plugins.
// Importing it registers both under the "azure" provider id.
package azure

import (
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
)

// Provider settings read from osdu.Config.ProviderSettings.
const (
	SettingEnableMSI     = "azure_enable_msi"
	SettingKeyVaultURI   = "keyvault_uri"
	SettingIMDSURL       = "imds_url"
	SettingMSIResource   = "msi_resource"
	SettingAuthorityHost = "authority_host"

	// Inline service principal values; when client_id is set Key Vault is
	// not consulted.
	SettingClientID     = "client_id"
	SettingClientSecret = "client_secret"
	SettingTenantID     = "tenant_id"
	SettingResourceID   = "resource_id"

	// SettingAnonymousStorage disables authentication for blob access, for
	// SAS URLs and the storage emulator.
	SettingAnonymousStorage = "storage_anonymous"
)

// Environment variables consulted when the settings are absent.
const (
	EnvEnableMSI   = "AIRFLOW_VAR_AZURE_ENABLE_MSI"
	EnvKeyVaultURI = "AIRFLOW_VAR_KEYVAULT_URI"
)

// Key Vault secret names holding the service principal.
const (
	SecretClientID     = "app-dev-sp-username"
	SecretClientSecret = "app-dev-sp-password"
	SecretTenantID     = "app-dev-sp-tenant-id"
	SecretResourceID   = "aad-client-id"
)

// Defaults.
const (
	DefaultIMDSURL       = "http://169.254.169.254/metadata/identity/oauth2/token"
	DefaultIMDSVersion   = "2018-02-01"
	DefaultMSIResource   = "https://management.azure.com/"
	DefaultAuthorityHost = "https://login.microsoftonline.com"
)

func init() {
	provider.RegisterCredentials(osdu.ProviderAzure, NewCredentials)
	provider.RegisterBlobStorage(osdu.ProviderAzure, NewBlobStorage)
}
