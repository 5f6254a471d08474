// Package provider is the registry of cloud provider plugins.
//
// A plugin supplies factories for one or more capabilities (credentials,
// blob storage) under a provider id such as "gcp", "azure" or "aws". The
// bundled plugins register themselves with the Default registry from their
// init functions; import them for side effects:
//
//	import _ "github.com/fivetwenty-io/osdu-client/pkg/provider/all"
package provider

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// CredentialsFactory builds a credential provider from configuration.
type CredentialsFactory func(cfg *osdu.Config) (osdu.CredentialProvider, error)

// BlobStorageFactory builds a blob storage provider from configuration.
type BlobStorageFactory func(cfg *osdu.Config) (osdu.BlobStorageProvider, error)

// Registry maps provider ids to factories, per capability. The zero value
// is not usable; use NewRegistry.
type Registry struct {
	mu          sync.RWMutex
	credentials map[string]CredentialsFactory
	blobStorage map[string]BlobStorageFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		credentials: make(map[string]CredentialsFactory),
		blobStorage: make(map[string]BlobStorageFactory),
	}
}

// RegisterCredentials registers factory for id. A later registration for
// the same id replaces the earlier one.
func (r *Registry) RegisterCredentials(id string, factory CredentialsFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.credentials[normalize(id)] = factory
}

// RegisterBlobStorage registers factory for id. A later registration for
// the same id replaces the earlier one.
func (r *Registry) RegisterBlobStorage(id string, factory BlobStorageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blobStorage[normalize(id)] = factory
}

// Resolve builds the implementation of capability registered for id. The
// result is an osdu.CredentialProvider or an osdu.BlobStorageProvider.
func (r *Registry) Resolve(capability osdu.Capability, id string, cfg *osdu.Config) (interface{}, error) {
	switch capability {
	case osdu.CapabilityCredentials:
		return r.Credentials(id, cfg)
	case osdu.CapabilityBlobStorage:
		return r.BlobStorage(id, cfg)
	default:
		return nil, &osdu.UnsupportedProviderError{Capability: capability, ProviderID: id}
	}
}

// Credentials builds the credential provider registered for id.
func (r *Registry) Credentials(id string, cfg *osdu.Config) (osdu.CredentialProvider, error) {
	r.mu.RLock()
	factory, ok := r.credentials[normalize(id)]
	r.mu.RUnlock()

	if !ok || factory == nil {
		return nil, &osdu.UnsupportedProviderError{Capability: osdu.CapabilityCredentials, ProviderID: id}
	}

	provider, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating %s credentials: %w", id, err)
	}

	if provider == nil {
		return nil, fmt.Errorf("%w: %s credentials factory returned nil", osdu.ErrInvalidFactory, id)
	}

	return provider, nil
}

// BlobStorage builds the blob storage provider registered for id.
func (r *Registry) BlobStorage(id string, cfg *osdu.Config) (osdu.BlobStorageProvider, error) {
	r.mu.RLock()
	factory, ok := r.blobStorage[normalize(id)]
	r.mu.RUnlock()

	if !ok || factory == nil {
		return nil, &osdu.UnsupportedProviderError{Capability: osdu.CapabilityBlobStorage, ProviderID: id}
	}

	provider, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating %s blob storage: %w", id, err)
	}

	if provider == nil {
		return nil, fmt.Errorf("%w: %s blob storage factory returned nil", osdu.ErrInvalidFactory, id)
	}

	return provider, nil
}

// Providers lists the ids registered for capability, sorted.
func (r *Registry) Providers(capability osdu.Capability) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string

	switch capability {
	case osdu.CapabilityCredentials:
		for id := range r.credentials {
			ids = append(ids, id)
		}
	case osdu.CapabilityBlobStorage:
		for id := range r.blobStorage {
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)

	return ids
}

// ResolveProviderID picks the provider id to use: explicit if set, then the
// CLOUD_PROVIDER environment variable, then cfg.Provider.
func ResolveProviderID(explicit string, cfg *osdu.Config) (string, error) {
	if id := normalize(explicit); id != "" {
		return id, nil
	}

	if id := normalize(os.Getenv(constants.EnvCloudProvider)); id != "" {
		return id, nil
	}

	if cfg != nil {
		if id := normalize(cfg.Provider); id != "" {
			return id, nil
		}
	}

	return "", osdu.ErrNoProviderConfigured
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Default is the registry the bundled plugins register with.
var Default = NewRegistry()

// RegisterCredentials registers factory with the Default registry.
func RegisterCredentials(id string, factory CredentialsFactory) {
	Default.RegisterCredentials(id, factory)
}

// RegisterBlobStorage registers factory with the Default registry.
func RegisterBlobStorage(id string, factory BlobStorageFactory) {
	Default.RegisterBlobStorage(id, factory)
}

// Resolve resolves capability for id from the Default registry.
func Resolve(capability osdu.Capability, id string, cfg *osdu.Config) (interface{}, error) {
	return Default.Resolve(capability, id, cfg)
}

// Credentials builds a credential provider from the Default registry.
func Credentials(id string, cfg *osdu.Config) (osdu.CredentialProvider, error) {
	return Default.Credentials(id, cfg)
}

// BlobStorage builds a blob storage provider from the Default registry.
func BlobStorage(id string, cfg *osdu.Config) (osdu.BlobStorageProvider, error) {
	return Default.BlobStorage(id, cfg)
}
