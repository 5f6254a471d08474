// Package osduclient provides the main entry point for creating OSDU
// platform clients.
//
// The bundled cloud provider plugins (gcp, azure, aws) are registered when
// this package is imported.
package osduclient

import (
	"context"
	"fmt"
	"maps"

	"github.com/fivetwenty-io/osdu-client/internal/client"
	"github.com/fivetwenty-io/osdu-client/internal/config"
	"github.com/fivetwenty-io/osdu-client/internal/logging"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"

	// Register the bundled provider plugins.
	_ "github.com/fivetwenty-io/osdu-client/pkg/provider/all"
)

// Option configures New.
type Option func(*options)

type options struct {
	providerID    string
	registry      *provider.Registry
	credentials   osdu.CredentialProvider
	dataPartition string
}

// WithProviderID selects the provider plugin, taking precedence over the
// CLOUD_PROVIDER environment variable and Config.Provider.
func WithProviderID(id string) Option {
	return func(o *options) {
		o.providerID = id
	}
}

// WithRegistry resolves plugins from registry instead of provider.Default.
func WithRegistry(registry *provider.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithCredentials uses credentials instead of resolving a plugin.
func WithCredentials(credentials osdu.CredentialProvider) Option {
	return func(o *options) {
		o.credentials = credentials
	}
}

// WithDataPartition overrides Config.DataPartitionID.
func WithDataPartition(partitionID string) Option {
	return func(o *options) {
		o.dataPartition = partitionID
	}
}

func newOptions(opts []Option) options {
	o := options{registry: provider.Default}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.registry == nil {
		o.registry = provider.Default
	}

	return o
}

// New creates a client for the services described by cfg. cfg is copied;
// later changes to it have no effect on the client.
func New(ctx context.Context, cfg *osdu.Config, opts ...Option) (osdu.Client, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	o := newOptions(opts)
	resolved := prepare(cfg, o)

	credentials := o.credentials
	if credentials == nil && resolved.UseServicePrincipal {
		id, err := provider.ResolveProviderID(o.providerID, resolved)
		if err != nil {
			return nil, fmt.Errorf("resolving provider: %w", err)
		}

		credentials, err = o.registry.Credentials(id, resolved)
		if err != nil {
			return nil, fmt.Errorf("creating %s credentials: %w", id, err)
		}
	}

	c, err := client.New(ctx, resolved, credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewFromFile loads an ini configuration (see LoadConfig) and creates a
// client from it.
func NewFromFile(ctx context.Context, path string, opts ...Option) (osdu.Client, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return New(ctx, cfg, opts...)
}

// LoadConfig reads the ini configuration at path. An empty path falls back
// to the OSDU_API_CONFIG_INI environment variable and then to osdu_api.ini
// in the working directory.
func LoadConfig(path string) (*osdu.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return cfg, nil
}

// NewBlobStorage resolves the blob storage plugin for cfg.
func NewBlobStorage(cfg *osdu.Config, opts ...Option) (osdu.BlobStorageProvider, error) {
	if cfg == nil {
		return nil, osdu.ErrConfigRequired
	}

	o := newOptions(opts)
	resolved := prepare(cfg, o)

	id, err := provider.ResolveProviderID(o.providerID, resolved)
	if err != nil {
		return nil, fmt.Errorf("resolving provider: %w", err)
	}

	storage, err := o.registry.BlobStorage(id, resolved)
	if err != nil {
		return nil, fmt.Errorf("creating %s blob storage: %w", id, err)
	}

	return storage, nil
}

func prepare(cfg *osdu.Config, o options) *osdu.Config {
	resolved := *cfg

	if o.dataPartition != "" {
		resolved.DataPartitionID = o.dataPartition
	}

	if resolved.Logger == nil {
		resolved.Logger = logging.NewLoggo(logging.DefaultModule)
	}

	resolved.ProviderSettings = maps.Clone(cfg.ProviderSettings)

	return &resolved
}
