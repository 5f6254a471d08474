package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	_ "github.com/fivetwenty-io/osdu-client/pkg/provider/all"

	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
)

func TestAllProvidersRegistered(t *testing.T) {
	t.Parallel()

	expected := []string{"aws", "azure", "gcp"}

	assert.Equal(t, expected, provider.Default.Providers(osdu.CapabilityCredentials))
	assert.Equal(t, expected, provider.Default.Providers(osdu.CapabilityBlobStorage))
}
