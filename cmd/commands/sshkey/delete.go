package sshkey

import (
	"fmt"
	"os"
	"time"

	"skm/internal/auditlog"
	"skm/internal/keys"
	"skm/internal/providers"
	"skm/internal/services/auth"
	"skm/internal/util"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id-or-fingerprint>",
		Short: "Delete an SSH key from the cloud provider",
		Long: `Delete an SSH public key from the cloud provider's account.

The key may be referenced by its numeric ID or by its MD5 fingerprint
(16 colon-separated hex pairs). Fingerprints are detected automatically.

Examples:
  # Delete by numeric ID
  skm ssh-key delete 512190

  # Delete by fingerprint
  skm ssh-key delete 3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa

  # Skip the confirmation prompt (scripting)
  skm ssh-key delete 512190 --yes`,
		Args: cobra.ExactArgs(1),
		Run:  runDelete,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) {
	started := time.Now()
	providerName := cmd.Flag("provider").Value.String()

	provider, err := providers.Get(providerName, auth.DefaultStore())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	ref := args[0]
	byFingerprint := util.IsFingerprint(ref)
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	if !skipConfirm {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: confirmation requires a terminal. Pass --yes to delete without prompting.")
			return
		}

		confirmed := false
		form := huh.NewConfirm().
			Title(fmt.Sprintf("Delete SSH key %s from %s?", ref, provider.GetDisplayName())).
			Description("This cannot be undone.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed)
		if err := form.Run(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		if !confirmed {
			fmt.Fprintln(cmd.ErrOrStderr(), "SSH key deletion cancelled.")
			return
		}
	}

	svc := keys.NewService(provider, nil)
	ctx := cmd.Context()

	remove := func() error {
		if byFingerprint {
			return svc.DeleteByFingerprint(ctx, ref)
		}
		return svc.DeleteByID(ctx, ref)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		var deleteErr error
		spinErr := spinner.New().
			Title("Deleting SSH key...").
			Accessible(os.Getenv("ACCESSIBLE") != "").
			Output(cmd.ErrOrStderr()).
			Action(func() { deleteErr = remove() }).
			Run()
		if spinErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", spinErr)
			return
		}
		err = deleteErr
	} else {
		err = remove()
	}

	entry := auditEntry("skm ssh-key delete", providerName, args, started)
	if byFingerprint {
		entry.Fingerprint = ref
	} else {
		entry.KeyID = ref
	}

	if err != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = err.Error()
		saveAudit(entry)

		fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting SSH key: %v\n", err)
		return
	}

	entry.Outcome = auditlog.OutcomeSuccess
	saveAudit(entry)

	fmt.Fprintf(cmd.OutOrStdout(), "SSH key %s deleted successfully.\n", ref)
}
