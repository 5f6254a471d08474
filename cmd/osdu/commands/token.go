package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/osdu-client/internal/constants"
	"github.com/fivetwenty-io/osdu-client/pkg/osduclient"
)

// NewTokenCommand creates the token command.
func NewTokenCommand() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Obtain an access token",
		Long:  "Obtain an access token from the configured provider's identity backend and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			// A token is only obtained with automated authentication on.
			cfg.UseServicePrincipal = true

			client, err := osduclient.New(ctx, cfg, clientOptions()...)
			if err != nil {
				return err
			}

			token := client.Credentials().CurrentToken()
			if !show && isTerminal(os.Stdout) {
				token = maskToken(token)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

			return err
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the full token even on a terminal")

	return cmd
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// maskToken keeps a short prefix so tokens can be told apart.
func maskToken(token string) string {
	const visible = 8

	if len(token) <= visible {
		return constants.MaskedSecret
	}

	return token[:visible] + constants.MaskedSecret
}
