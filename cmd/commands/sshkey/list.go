package sshkey

import (
	"fmt"
	"sync"
	"text/tabwriter"

	"skm/internal/domain"
	"skm/internal/providers"
	"skm/internal/services/auth"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SSH keys on the cloud provider account",
		Long: `List SSH public keys stored on the cloud provider's account.

With --all, keys from every registered provider are listed. Providers
without a stored token are skipped.

Examples:
  skm ssh-key list
  skm ssh-key list --provider hetzner
  skm ssh-key list --all`,
		Run: runList,
	}

	cmd.Flags().Bool("all", false, "List keys from all registered providers")

	return cmd
}

type providerKeys struct {
	provider string
	keys     []domain.SSHKeySpec
}

func runList(cmd *cobra.Command, args []string) {
	all, _ := cmd.Flags().GetBool("all")

	var results []providerKeys
	if all {
		var err error
		results, err = listAll(cmd)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
	} else {
		providerName := cmd.Flag("provider").Value.String()

		provider, err := providers.Get(providerName, auth.DefaultStore())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}

		specs, err := provider.ListSSHKeys(cmd.Context())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error listing SSH keys: %v\n", err)
			return
		}
		results = []providerKeys{{provider: providerName, keys: specs}}
	}

	total := 0
	for _, r := range results {
		total += len(r.keys)
	}
	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No SSH keys found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFINGERPRINT\tPROVIDER")
	fmt.Fprintln(w, "--\t----\t-----------\t--------")

	for _, r := range results {
		for _, key := range r.keys {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", key.ID, key.Name, key.Fingerprint, r.provider)
		}
	}

	w.Flush()
}

// listAll queries every registered provider concurrently. Providers
// without a stored token are skipped rather than treated as errors.
func listAll(cmd *cobra.Command) ([]providerKeys, error) {
	store := auth.DefaultStore()

	var mu sync.Mutex
	var results []providerKeys

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, name := range providers.List() {
		g.Go(func() error {
			provider, err := providers.Get(name, store)
			if err != nil {
				// No token stored for this provider.
				return nil
			}

			specs, err := provider.ListSSHKeys(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			mu.Lock()
			results = append(results, providerKeys{provider: name, keys: specs})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Keep output order stable regardless of completion order.
	ordered := make([]providerKeys, 0, len(results))
	for _, name := range providers.List() {
		for _, r := range results {
			if r.provider == name {
				ordered = append(ordered, r)
			}
		}
	}
	return ordered, nil
}
