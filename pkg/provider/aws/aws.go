// Package aws provides the AWS credential and blob storage plugins and the
// partition response converter. Importing it registers the plugins under
// the "aws" provider id.
package aws

import (
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
)

// Provider settings read from osdu.Config.ProviderSettings.
const (
	SettingRegion              = "region_name"
	SettingClientIDPath        = "client_id_ssm_path"
	SettingTokenURLPath        = "token_url_ssm_path"
	SettingScopePath           = "aws_oauth_custom_scope_ssm_path"
	SettingClientSecretName    = "client_secret_name"
	SettingClientSecretDictKey = "client_secret_dict_key"
	SettingS3Endpoint          = "s3_endpoint"
)

func init() {
	provider.RegisterCredentials(osdu.ProviderAWS, NewCredentials)
	provider.RegisterBlobStorage(osdu.ProviderAWS, NewBlobStorage)
}
