package aws

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"golang.org/x/oauth2"

	"github.com/fivetwenty-io/osdu-client/internal/auth"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// ServicePrincipalSettings names where the service principal lives.
type ServicePrincipalSettings struct {
	ClientIDPath        string
	TokenURLPath        string
	ScopePath           string
	ClientSecretName    string
	ClientSecretDictKey string
}

func settingsFromConfig(cfg *osdu.Config) (ServicePrincipalSettings, error) {
	var (
		settings ServicePrincipalSettings
		err      error
	)

	fields := []struct {
		key    string
		target *string
	}{
		{SettingClientIDPath, &settings.ClientIDPath},
		{SettingTokenURLPath, &settings.TokenURLPath},
		{SettingScopePath, &settings.ScopePath},
		{SettingClientSecretName, &settings.ClientSecretName},
		{SettingClientSecretDictKey, &settings.ClientSecretDictKey},
	}

	for _, field := range fields {
		*field.target, err = cfg.RequireSetting(field.key)
		if err != nil {
			return ServicePrincipalSettings{}, err
		}
	}

	return settings, nil
}

// NewCredentials builds the AWS credential provider. Its client id, token
// URL and scope come from SSM and its client secret from Secrets Manager,
// all in region_name.
func NewCredentials(cfg *osdu.Config) (osdu.CredentialProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	settings, err := settingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	region, err := cfg.RequireSetting(SettingRegion)
	if err != nil {
		return nil, err
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS configuration: %w", err)
	}

	return NewServicePrincipal(
		ssm.NewFromConfig(awsConfig),
		secretsmanager.NewFromConfig(awsConfig),
		settings,
		auth.WithRefreshPolicy(auth.PolicyFromConfig(cfg)),
		auth.WithLogger(cfg.Logger),
	), nil
}

// NewServicePrincipal creates the client credentials provider over the given
// SSM and Secrets Manager clients. Secrets are re-read on every refresh.
func NewServicePrincipal(
	parameters SSMAPI,
	secrets SecretsManagerAPI,
	settings ServicePrincipalSettings,
	opts ...auth.Option,
) *auth.ServicePrincipalProvider {
	return auth.NewServicePrincipalProvider(osdu.ProviderAWS, ServicePrincipalLoader(parameters, secrets, settings), false, opts...)
}

// ServicePrincipalLoader reads the client credentials. The client secret is
// sent with HTTP basic authentication.
func ServicePrincipalLoader(parameters SSMAPI, secrets SecretsManagerAPI, settings ServicePrincipalSettings) auth.CredentialsLoader {
	store := NewParameterStore(parameters)

	return func(ctx context.Context) (*auth.ClientCredentials, error) {
		clientID, err := store.GetSecret(ctx, settings.ClientIDPath)
		if err != nil {
			return nil, err
		}

		clientSecret, err := SecretValue(ctx, secrets, settings.ClientSecretName, settings.ClientSecretDictKey)
		if err != nil {
			return nil, err
		}

		tokenURL, err := store.GetSecret(ctx, settings.TokenURLPath)
		if err != nil {
			return nil, err
		}

		scope, err := store.GetSecret(ctx, settings.ScopePath)
		if err != nil {
			return nil, err
		}

		return &auth.ClientCredentials{
			ClientID:       clientID,
			ClientSecret:   clientSecret,
			TokenURL:       tokenURL,
			Scopes:         []string{scope},
			AuthStyle:      oauth2.AuthStyleInHeader,
			EndpointParams: url.Values{"client_id": {clientID}},
		}, nil
	}
}
