// Package config loads client configuration from an ini file layered with
// environment overrides.
//
// The file has two sections:
//
//	[environment]
//	data_partition_id=opendes
//	storage_url=https://osdu.example.com/api/storage/v2
//	search_url=https://osdu.example.com/api/search/v2
//	use_service_principal=true
//
//	[provider]
//	name=azure
//	keyvault_uri=https://vault.example.net
//
// Every key can be overridden with an OSDU_API_<SECTION>_<KEY> environment
// variable, for example OSDU_API_ENVIRONMENT_STORAGE_URL.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// Section names.
const (
	SectionEnvironment = "environment"
	SectionProvider    = "provider"
)

// Keys of the [environment] section.
const (
	KeyStorageURL           = "storage_url"
	KeySearchURL            = "search_url"
	KeyLegalURL             = "legal_url"
	KeySchemaURL            = "schema_url"
	KeyEntitlementsURL      = "entitlements_url"
	KeyDatasetURL           = "dataset_url"
	KeyWorkflowURL          = "data_workflow_url"
	KeyPartitionURL         = "partition_url"
	KeyFileDMSURL           = "file_dms_url"
	KeyIngestionWorkflowURL = "ingestion_workflow_url"
	KeyDataPartitionID      = "data_partition_id"
	KeyUseServicePrincipal  = "use_service_principal"
	KeyTimeout              = "timeout"
	KeyVerifyTLS            = "verify_tls"
	KeyUserAgent            = "user_agent"
	KeyDebug                = "debug"
	KeyRetryMax             = "retry_max"
	KeyRefreshAttempts      = "refresh_attempts"
	KeyRefreshDelay         = "refresh_delay"
)

// KeyProviderName selects the provider in the [provider] section. The other
// keys of that section become osdu.Config.ProviderSettings.
const KeyProviderName = "name"

var environmentKeys = []string{
	KeyStorageURL, KeySearchURL, KeyLegalURL, KeySchemaURL, KeyEntitlementsURL,
	KeyDatasetURL, KeyWorkflowURL, KeyPartitionURL, KeyFileDMSURL, KeyIngestionWorkflowURL,
	KeyDataPartitionID, KeyUseServicePrincipal, KeyTimeout, KeyVerifyTLS, KeyUserAgent,
	KeyDebug, KeyRetryMax, KeyRefreshAttempts, KeyRefreshDelay,
}

// ResolvePath returns the file to read: path if set, else the
// OSDU_API_CONFIG_INI environment variable, else osdu_api.ini.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}

	if env := os.Getenv(constants.EnvConfigPath); env != "" {
		return env
	}

	return constants.DefaultConfigFile
}

// Load reads the configuration file found by ResolvePath.
func Load(path string) (*osdu.Config, error) {
	v, err := Read(ResolvePath(path))
	if err != nil {
		return nil, err
	}

	return FromViper(v)
}

// Read parses an ini file into a viper instance. File values are defaults,
// so environment variables take precedence.
func Read(path string) (*viper.Viper, error) {
	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w in '%s'", constants.ErrConfigFileNotFound, path)
		}

		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	v := New()

	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		for _, key := range section.Keys() {
			v.SetDefault(strings.ToLower(section.Name())+"."+strings.ToLower(key.Name()), key.String())
		}
	}

	return v, nil
}

// New returns a viper instance wired for OSDU_API_* environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range environmentKeys {
		v.SetDefault(SectionEnvironment+"."+key, "")
	}

	v.SetDefault(SectionProvider+"."+KeyProviderName, "")

	return v
}

// FromViper builds an osdu.Config from the values held by v.
func FromViper(v *viper.Viper) (*osdu.Config, error) {
	env := func(key string) string {
		return strings.TrimSpace(v.GetString(SectionEnvironment + "." + key))
	}

	cfg := &osdu.Config{
		StorageURL:           env(KeyStorageURL),
		SearchURL:            env(KeySearchURL),
		LegalURL:             env(KeyLegalURL),
		SchemaURL:            env(KeySchemaURL),
		EntitlementsURL:      env(KeyEntitlementsURL),
		DatasetURL:           env(KeyDatasetURL),
		WorkflowURL:          env(KeyWorkflowURL),
		PartitionURL:         env(KeyPartitionURL),
		FileDMSURL:           env(KeyFileDMSURL),
		IngestionWorkflowURL: env(KeyIngestionWorkflowURL),
		DataPartitionID:      env(KeyDataPartitionID),
		UserAgent:            env(KeyUserAgent),
		Provider:             strings.TrimSpace(v.GetString(SectionProvider + "." + KeyProviderName)),
		ProviderSettings:     providerSettings(v),
	}

	var err error

	if cfg.UseServicePrincipal, err = parseBool(KeyUseServicePrincipal, env(KeyUseServicePrincipal)); err != nil {
		return nil, err
	}

	if cfg.VerifyTLS, err = parseBool(KeyVerifyTLS, env(KeyVerifyTLS)); err != nil {
		return nil, err
	}

	if cfg.Debug, err = parseBool(KeyDebug, env(KeyDebug)); err != nil {
		return nil, err
	}

	if cfg.Timeout, err = parseDuration(KeyTimeout, env(KeyTimeout)); err != nil {
		return nil, err
	}

	if cfg.RefreshDelay, err = parseDuration(KeyRefreshDelay, env(KeyRefreshDelay)); err != nil {
		return nil, err
	}

	if cfg.RetryMax, err = parseInt(KeyRetryMax, env(KeyRetryMax)); err != nil {
		return nil, err
	}

	if cfg.RefreshAttempts, err = parseInt(KeyRefreshAttempts, env(KeyRefreshAttempts)); err != nil {
		return nil, err
	}

	return cfg, nil
}

func providerSettings(v *viper.Viper) map[string]string {
	settings := make(map[string]string)

	// The map only names the keys; values are re-read so environment
	// overrides apply.
	for key := range v.GetStringMapString(SectionProvider) {
		if key == KeyProviderName {
			continue
		}

		settings[key] = v.GetString(SectionProvider + "." + key)
	}

	return settings
}

func parseBool(key, value string) (bool, error) {
	if value == "" {
		return false, nil
	}

	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w for %s: %q", constants.ErrInvalidBool, key, value)
	}
}

// parseDuration accepts Go durations ("45s") and plain seconds ("45").
func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w for %s: %q", constants.ErrInvalidDuration, key, value)
	}

	return d, nil
}

func parseInt(key, value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, value, err)
	}

	return n, nil
}
