package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/juju/loggo/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/internal/logging"
	"github.com/fivetwenty-io/osdu-client/pkg/osdu"
	"github.com/fivetwenty-io/osdu-client/pkg/osduclient"
)

// Viper keys bound to the global flags.
const (
	KeyConfig    = "config"
	KeyProvider  = "provider"
	KeyPartition = "partition"
	KeyOutput    = "output"
	KeyToken     = "token"
	KeyVerbose   = "verbose"
)

const defaultJSONIndent = 2

// LoadConfig reads the configuration named by --config, applying the
// --verbose flag.
func LoadConfig() (*osdu.Config, error) {
	cfg, err := osduclient.LoadConfig(viper.GetString(KeyConfig))
	if err != nil {
		return nil, err
	}

	if viper.GetBool(KeyVerbose) {
		_ = loggo.ConfigureLoggers(logging.DefaultModule + "=DEBUG")
		cfg.Debug = true
	}

	return cfg, nil
}

// clientOptions turns the global flags into constructor options.
func clientOptions() []osduclient.Option {
	var opts []osduclient.Option

	if provider := viper.GetString(KeyProvider); provider != "" {
		opts = append(opts, osduclient.WithProviderID(provider))
	}

	if partition := viper.GetString(KeyPartition); partition != "" {
		opts = append(opts, osduclient.WithDataPartition(partition))
	}

	return opts
}

// CreateClient builds a client from the configuration file and global flags.
func CreateClient(ctx context.Context) (osdu.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return osduclient.New(ctx, cfg, clientOptions()...)
}

// CreateBlobStorage resolves the blob storage plugin for the configured
// provider.
func CreateBlobStorage() (osdu.BlobStorageProvider, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return osduclient.NewBlobStorage(cfg, clientOptions()...)
}

// callOptions passes --token through to every call.
func callOptions() []osdu.CallOption {
	if token := viper.GetString(KeyToken); token != "" {
		return []osdu.CallOption{osdu.WithBearerToken(token)}
	}

	return nil
}

// runCall creates a client, runs call and prints its response.
func runCall(cmd *cobra.Command, call func(ctx context.Context, client osdu.Client, opts []osdu.CallOption) (*osdu.Response, error)) error {
	ctx := commandContext(cmd)

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	resp, err := call(ctx, client, callOptions())
	if err != nil {
		return err
	}

	return printResponse(cmd.OutOrStdout(), resp)
}

// printResponse writes the status and body in the selected output format
// and fails when the status is not 2xx.
func printResponse(w io.Writer, resp *osdu.Response) error {
	var body interface{}
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		if err := json.Unmarshal(resp.Body, &body); err != nil {
			body = string(resp.Body)
		}
	}

	if err := writeOutput(w, resp.StatusCode, body); err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %d", constants.ErrUnsuccessfulResponse, resp.StatusCode)
	}

	return nil
}

func writeOutput(w io.Writer, status int, body interface{}) error {
	type result struct {
		Status int         `json:"status" yaml:"status"`
		Body   interface{} `json:"body" yaml:"body"`
	}

	switch output := viper.GetString(KeyOutput); output {
	case constants.FormatTable, "":
		return writeTable(w, status, body)
	default:
		return encode(w, output, result{Status: status, Body: body})
	}
}

// encode writes value as JSON or YAML.
func encode(w io.Writer, format string, value interface{}) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode response as JSON: %w", err)
		}
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(defaultJSONIndent)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode response as YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, format)
	}

	return nil
}

func writeTable(w io.Writer, status int, body interface{}) error {
	rows := [][]string{{"status", strconv.Itoa(status)}}

	switch value := body.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			rows = append(rows, []string{key, cell(value[key])})
		}
	case []interface{}:
		for i, item := range value {
			rows = append(rows, []string{strconv.Itoa(i), cell(item)})
		}
	case nil:
		rows = append(rows, []string{"body", constants.NotAvailable})
	default:
		rows = append(rows, []string{"body", cell(value)})
	}

	return renderRows(w, rows)
}

// renderRows writes two-column Field/Value rows.
func renderRows(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	for _, row := range rows {
		_ = table.Append(row[0], row[1])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func cell(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	}
}
