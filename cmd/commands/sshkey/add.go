package sshkey

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"skm/internal/auditlog"
	"skm/internal/domain"
	"skm/internal/keyfile"
	"skm/internal/keys"
	"skm/internal/providers"
	"skm/internal/services/auth"
	"skm/internal/tui/styles"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func AddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [path]",
		Short: "Upload an SSH public key to the cloud provider",
		Long: `Upload a local SSH public key to the cloud provider's account.

Provide a path argument or use --public-key to paste the key directly.
If neither is given, the default path (~/.ssh/id_ed25519.pub) is used.

If --name is not specified, a unique name is generated for the key.

Examples:
  # Upload default key with a generated name
  skm ssh-key add

  # Upload specific key with explicit name
  skm ssh-key add ~/.ssh/work_laptop.pub --name work-laptop

  # Paste public key directly
  skm ssh-key add --public-key "ssh-ed25519 AAAA..." --name laptop

  # Upload with provider override
  skm ssh-key add --provider hetzner --name my-key`,
		Args: cobra.MaximumNArgs(1),
		Run:  runAdd,
	}

	cmd.Flags().String("name", "", "Name for the SSH key (generated if not provided)")
	cmd.Flags().String("public-key", "", "Public SSH key content (paste instead of providing a path)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) {
	started := time.Now()
	providerName := cmd.Flag("provider").Value.String()

	provider, err := providers.Get(providerName, auth.DefaultStore())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	publicKeyInput, _ := cmd.Flags().GetString("public-key")
	publicKeyProvided := cmd.Flags().Changed("public-key")
	if publicKeyProvided && len(args) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: provide a path or --public-key, not both\n")
		return
	}

	keyName, _ := cmd.Flags().GetString("name")
	svc := keys.NewService(provider, nil)
	ctx := cmd.Context()

	var keySpec *domain.SSHKeySpec
	upload := func() error {
		var uploadErr error
		if publicKeyProvided {
			keySpec, uploadErr = svc.Add(ctx, publicKeyInput, keyName)
		} else {
			keyPath := keyfile.DefaultPath()
			if len(args) > 0 {
				keyPath = args[0]
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Reading key from %s\n", keyPath)
			keySpec, uploadErr = svc.AddFromFile(ctx, keyPath, keyName)
		}
		return uploadErr
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Uploading SSH key to %s...\n", provider.GetDisplayName())

	if term.IsTerminal(int(os.Stdout.Fd())) {
		var uploadErr error
		spinErr := spinner.New().
			Title("Uploading SSH key...").
			Accessible(os.Getenv("ACCESSIBLE") != "").
			Output(cmd.ErrOrStderr()).
			Action(func() { uploadErr = upload() }).
			Run()
		if spinErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", spinErr)
			return
		}
		err = uploadErr
	} else {
		err = upload()
	}

	entry := auditEntry("skm ssh-key add", providerName, args, started)
	if err != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = err.Error()
		saveAudit(entry)

		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		if _, ok := domain.AsOperationError(err); ok && !publicKeyProvided && len(args) == 0 {
			printCommonSSHKeyPaths(cmd)
		}
		return
	}

	entry.Outcome = auditlog.OutcomeSuccess
	entry.KeyID = keySpec.ID
	entry.KeyName = keySpec.Name
	entry.Fingerprint = keySpec.Fingerprint
	saveAudit(entry)

	printKeyDetails(cmd, keySpec)
}

func printKeyDetails(cmd *cobra.Command, key *domain.SSHKeySpec) {
	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessText.Render("SSH key added:"))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "  Name:\t%s\n", key.Name)
	fmt.Fprintf(w, "  Fingerprint:\t%s\n", key.Fingerprint)
	fmt.Fprintf(w, "  ID:\t%s\n", key.ID)
}

func printCommonSSHKeyPaths(cmd *cobra.Command) {
	fmt.Fprintln(cmd.ErrOrStderr(), "\nCommon SSH key paths:")
	for _, path := range keyfile.CommonPaths() {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", path)
	}
}
