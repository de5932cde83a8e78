package auth

import (
	"fmt"

	"skm/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout <provider>",
		Short: "Remove the stored API token for a provider",
		Long: `Remove the stored API token for a provider from the local keychain.

Tokens supplied via environment variables are unaffected.

Example:
  skm auth logout digitalocean`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := auth.NormalizeProvider(args[0])
			if provider == "" {
				return fmt.Errorf("provider is required")
			}

			store := auth.DefaultStore()
			if err := store.DeleteToken(provider); err != nil {
				return fmt.Errorf("failed to remove token for %s: %w", provider, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed token for provider %s\n", provider)
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
