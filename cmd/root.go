package cmd

import (
	"os"

	"skm/cmd/commands/audit"
	"skm/cmd/commands/auth"
	cfgcmd "skm/cmd/commands/config"
	"skm/cmd/commands/sshkey"
	"skm/internal/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "skm",
		Short: "A CLI tool for managing SSH keys across cloud providers",
		Long: `skm is a command-line tool for managing SSH public keys on cloud
provider accounts. It supports uploading, listing, and deleting keys,
by numeric ID or by MD5 fingerprint.

Supported providers: DigitalOcean, Hetzner.

Quick start:
  skm auth login digitalocean              # Store your API token
  skm ssh-key add ~/.ssh/id_ed25519.pub    # Upload a public key
  skm ssh-key list                         # List keys on the account
  skm ssh-key delete 512190                # Delete a key by ID`,
	}

	cmd.AddCommand(audit.NewCommand())
	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(sshkey.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterAll()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
