package constants

import "errors"

// Configuration errors.
var (
	ErrConfigFileNotFound = errors.New("could not find the config file")
	ErrInvalidBool        = errors.New("invalid boolean value")
	ErrInvalidDuration    = errors.New("invalid duration value")
)

// Identity backend errors.
var (
	ErrNoAccessToken       = errors.New("no access_token in identity backend response")
	ErrIdentityStatus      = errors.New("identity backend returned an error status")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrSecretKeyNotFound   = errors.New("secret does not contain the requested key")
	ErrServiceAccountPath  = errors.New("service account file path is not a local file or gs:// URI")
	ErrInvalidSecretFormat = errors.New("secret value is not a JSON object")
)

// Partition errors.
var (
	ErrPartitionProperty = errors.New("partition property missing or not a string")
)

// CLI errors.
var (
	ErrUnsuccessfulResponse = errors.New("service returned an unsuccessful status")
	ErrUnknownOutputFormat  = errors.New("unknown output format")
)
