package sshkey

import (
	"fmt"
	"strings"
	"time"

	"skm/internal/auditlog"
	"skm/internal/config"

	"github.com/spf13/cobra"
)

// fallbackProvider is used when neither --provider nor a configured
// default names a provider.
const fallbackProvider = "digitalocean"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "ssh-key",
		Short:             "Manage SSH keys across cloud providers",
		Long:              `Upload, list, and delete SSH public keys from your configured cloud providers.`,
		PersistentPreRunE: resolveProvider,
	}

	cmd.AddCommand(AddCommand())
	cmd.AddCommand(DeleteCommand())
	cmd.AddCommand(ListCommand())

	cmd.PersistentFlags().String("provider", "", "Cloud provider to use (overrides default)")

	return cmd
}

// resolveProvider ensures the --provider flag has a value, falling back to the
// configured default when the flag was not explicitly passed.
func resolveProvider(cmd *cobra.Command, args []string) error {
	if cmd.Flag("provider").Changed {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.DefaultProvider != "" {
		cmd.Flag("provider").Value.Set(cfg.DefaultProvider)
		return nil
	}

	cmd.Flag("provider").Value.Set(fallbackProvider)
	return nil
}

// saveAudit records an audit entry, best effort. Audit failures never
// interfere with the command outcome.
func saveAudit(entry *auditlog.AuditEntry) {
	repo, err := auditlog.Open()
	if err != nil {
		return
	}
	defer repo.Close()
	_ = repo.Save(entry)
}

// auditEntry builds a base entry for the given subcommand invocation.
func auditEntry(command, provider string, args []string, started time.Time) *auditlog.AuditEntry {
	return &auditlog.AuditEntry{
		Command:    command,
		Args:       strings.Join(auditlog.SanitizeArgs(args), " "),
		Provider:   provider,
		DurationMs: time.Since(started).Milliseconds(),
	}
}
