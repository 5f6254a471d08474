package aws

import (
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
)

// PartitionInfo is the AWS view of a data partition.
type PartitionInfo struct {
	PartitionID     string `json:"partitionId"`
	TenantID        string `json:"tenantId"`
	ResourcePrefix  string `json:"resourcePrefix"`
	TenantSSMPrefix string `json:"tenantSsmPrefix"`
}

type partitionProperty struct {
	Sensitive bool            `json:"sensitive"`
	Value     json.RawMessage `json:"value"`
}

// ConvertPartition reads PartitionInfo out of a partition service response
// body, where every property is an object with a "value" field. Only the
// four properties it needs must hold strings; other values may be any JSON.
func ConvertPartition(body []byte) (*PartitionInfo, error) {
	var properties map[string]partitionProperty
	if err := json.Unmarshal(body, &properties); err != nil {
		return nil, fmt.Errorf("decoding partition properties: %w", err)
	}

	var info PartitionInfo

	fields := []struct {
		key    string
		target *string
	}{
		{"id", &info.PartitionID},
		{"tenantId", &info.TenantID},
		{"resourcePrefix", &info.ResourcePrefix},
		{"tenantSSMPrefix", &info.TenantSSMPrefix},
	}

	for _, field := range fields {
		property, ok := properties[field.key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", constants.ErrPartitionProperty, field.key)
		}

		if err := json.Unmarshal(property.Value, field.target); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", constants.ErrPartitionProperty, field.key, err)
		}
	}

	return &info, nil
}

// PartitionFromResponse converts the response of PartitionClient.GetPartition.
func PartitionFromResponse(resp *osdu.Response) (*PartitionInfo, error) {
	if resp == nil {
		return nil, osdu.ErrEmptyResponse
	}

	return ConvertPartition(resp.Body)
}
