package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
)

// SSMAPI is the part of ssm.Client used to read parameters.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsManagerAPI is the part of secretsmanager.Client used to read
// secrets.
type SecretsManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// ParameterStore reads SSM parameters. It implements auth.SecretStore with
// parameter paths as secret names.
type ParameterStore struct {
	client SSMAPI
}

// NewParameterStore wraps client.
func NewParameterStore(client SSMAPI) *ParameterStore {
	return &ParameterStore{client: client}
}

// GetSecret returns the decrypted value of the parameter at path.
func (s *ParameterStore) GetSecret(ctx context.Context, path string) (string, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(path),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("reading SSM parameter %s: %w", path, err)
	}

	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("%w: %s", constants.ErrSecretNotFound, path)
	}

	return *out.Parameter.Value, nil
}

// SecretValue reads a JSON object secret from Secrets Manager and returns
// the value under key. Binary secrets are accepted too.
func SecretValue(ctx context.Context, client SecretsManagerAPI, name, key string) (string, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("reading secret %s: %w", name, err)
	}

	var raw []byte

	switch {
	case out.SecretString != nil:
		raw = []byte(*out.SecretString)
	case out.SecretBinary != nil:
		raw = out.SecretBinary
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrSecretNotFound, name)
	}

	var document map[string]interface{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return "", fmt.Errorf("%w: %s: %w", constants.ErrInvalidSecretFormat, name, err)
	}

	value, ok := document[key]
	if !ok {
		return "", fmt.Errorf("%w: %s[%s]", constants.ErrSecretKeyNotFound, name, key)
	}

	if text, ok := value.(string); ok {
		return text, nil
	}

	return fmt.Sprint(value), nil
}
