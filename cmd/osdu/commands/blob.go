package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
)

// NewBlobCommand creates the blob command group.
func NewBlobCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blob",
		Short: "Access cloud object storage",
		Long:  "Check and download objects through the configured provider's blob storage (gs://, s3:// or https:// URIs)",
	}

	cmd.AddCommand(newBlobExistsCommand())
	cmd.AddCommand(newBlobDownloadCommand())

	return cmd
}

func newBlobExistsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exists URI",
		Short: "Check whether an object exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := CreateBlobStorage()
			if err != nil {
				return err
			}

			exists, err := storage.Exists(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), exists)

			return err
		},
	}
}

func newBlobDownloadCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "download URI",
		Short: "Download an object",
		Long:  "Download an object to a file, or to standard output when --out is not set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := CreateBlobStorage()
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()

			if outPath != "" {
				file, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.ConfigFilePerm)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer func() { _ = file.Close() }()

				out = file
			}

			contentType, err := storage.Download(commandContext(cmd), args[0], out)
			if err != nil {
				return err
			}

			if outPath != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Downloaded %s (%s) to %s\n", args[0], contentType, outPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "destination file")

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
