// Package all registers every bundled cloud provider plugin.
package all

import (
	// Register the bundled provider plugins.
	_ "github.com/fivetwenty-io/osdu-client/pkg/provider/aws"
	_ "github.com/fivetwenty-io/osdu-client/pkg/provider/azure"
	_ "github.com/fivetwenty-io/osdu-client/pkg/provider/gcp"
)
