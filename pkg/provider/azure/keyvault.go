package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
)

// SecretGetter is the part of azsecrets.Client used by KeyVaultStore.
type SecretGetter interface {
	GetSecret(ctx context.Context, name string, version string, options *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error)
}

// KeyVaultStore reads secrets from Azure Key Vault.
type KeyVaultStore struct {
	client SecretGetter
}

// NewKeyVaultStore creates a store for vaultURL authenticated with the
// default Azure credential chain.
func NewKeyVaultStore(vaultURL string) (*KeyVaultStore, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("creating azure credential: %w", err)
	}

	client, err := azsecrets.NewClient(vaultURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("creating key vault client: %w", err)
	}

	return NewKeyVaultStoreFromClient(client), nil
}

// NewKeyVaultStoreFromClient wraps an existing client.
func NewKeyVaultStoreFromClient(client SecretGetter) *KeyVaultStore {
	return &KeyVaultStore{client: client}
}

// GetSecret implements auth.SecretStore with the latest secret version.
func (s *KeyVaultStore) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := s.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", fmt.Errorf("reading key vault secret %s: %w", name, err)
	}

	if resp.Value == nil {
		return "", fmt.Errorf("%w: %s", constants.ErrSecretNotFound, name)
	}

	return *resp.Value, nil
}
