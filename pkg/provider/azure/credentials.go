package azure

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/osdu-client/internal/auth"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// NewCredentials builds the Azure credential provider: the instance
// metadata service when MSI is enabled, a service principal otherwise.
func NewCredentials(cfg *osdu.Config) (osdu.CredentialProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	opts := []auth.Option{
		auth.WithRefreshPolicy(auth.PolicyFromConfig(cfg)),
		auth.WithLogger(cfg.Logger),
	}

	if cfg.BoolSetting(SettingEnableMSI) || os.Getenv(EnvEnableMSI) == "true" {
		return auth.NewManagedIdentityProvider(osdu.ProviderAzure, auth.MetadataEndpoint{
			URL: cfg.SettingOr(SettingIMDSURL, DefaultIMDSURL),
			Query: url.Values{
				"api-version": {DefaultIMDSVersion},
				"resource":    {cfg.SettingOr(SettingMSIResource, DefaultMSIResource)},
			},
			Headers: map[string]string{"Metadata": "true"},
		}, opts...), nil
	}

	store, err := secretStore(cfg)
	if err != nil {
		return nil, err
	}

	authority := strings.TrimSuffix(cfg.SettingOr(SettingAuthorityHost, DefaultAuthorityHost), "/")

	return auth.NewServicePrincipalProvider(osdu.ProviderAzure, ServicePrincipalLoader(store, authority), true, opts...), nil
}

func secretStore(cfg *osdu.Config) (auth.SecretStore, error) {
	if cfg.Setting(SettingClientID) != "" {
		return auth.StaticSecretStore{
			SecretClientID:     cfg.Setting(SettingClientID),
			SecretClientSecret: cfg.Setting(SettingClientSecret),
			SecretTenantID:     cfg.Setting(SettingTenantID),
			SecretResourceID:   cfg.Setting(SettingResourceID),
		}, nil
	}

	vault := cfg.SettingOr(SettingKeyVaultURI, os.Getenv(EnvKeyVaultURI))
	if vault == "" {
		return nil, &osdu.MissingSettingError{Key: SettingKeyVaultURI}
	}

	return NewKeyVaultStore(vault)
}

// ServicePrincipalLoader reads the service principal from store and targets
// the v2 token endpoint of its tenant under authority.
func ServicePrincipalLoader(store auth.SecretStore, authority string) auth.CredentialsLoader {
	return func(ctx context.Context) (*auth.ClientCredentials, error) {
		values := make(map[string]string, 4)

		for _, name := range []string{SecretClientID, SecretClientSecret, SecretTenantID, SecretResourceID} {
			value, err := store.GetSecret(ctx, name)
			if err != nil {
				return nil, err
			}

			if value == "" {
				return nil, &osdu.MissingSettingError{Key: name}
			}

			values[name] = value
		}

		return &auth.ClientCredentials{
			ClientID:     values[SecretClientID],
			ClientSecret: values[SecretClientSecret],
			TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", authority, values[SecretTenantID]),
			Scopes:       []string{values[SecretResourceID] + "/.default"},
			AuthStyle:    oauth2.AuthStyleInParams,
		}, nil
	}
}
