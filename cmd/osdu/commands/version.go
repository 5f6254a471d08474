package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/provider"
)

type buildInfo struct {
	Version   string   `json:"version" yaml:"version"`
	Commit    string   `json:"commit" yaml:"commit"`
	Built     string   `json:"built" yaml:"built"`
	GoVersion string   `json:"goVersion" yaml:"goVersion"`
	Providers []string `json:"providers" yaml:"providers"`
}

// NewVersionCommand creates the version command. Besides the build stamp it
// lists the cloud providers compiled into the binary.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display the OSDU CLI build and the cloud providers it supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := buildInfo{
				Version:   version,
				Commit:    commit,
				Built:     date,
				GoVersion: runtime.Version(),
				Providers: provider.Default.Providers(osdu.CapabilityCredentials),
			}

			format := viper.GetString(KeyOutput)
			if format != constants.FormatTable && format != "" {
				return encode(cmd.OutOrStdout(), format, info)
			}

			return renderRows(cmd.OutOrStdout(), [][]string{
				{"version", info.Version},
				{"commit", info.Commit},
				{"built", info.Built},
				{"go", info.GoVersion},
				{"providers", strings.Join(info.Providers, ", ")},
			})
		},
	}
}
