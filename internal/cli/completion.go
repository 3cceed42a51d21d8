package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/pkg/errors"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mazegen.

To load completions:

Bash:
  $ source <(mazegen completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ mazegen completion bash > /etc/bash_completion.d/mazegen
  # macOS:
  $ mazegen completion bash > $(brew --prefix)/etc/bash_completion.d/mazegen

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ mazegen completion zsh > "${fpath[1]}/_mazegen"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ mazegen completion fish | source

  # To load completions for each session, execute once:
  $ mazegen completion fish > ~/.config/fish/completions/mazegen.fish

PowerShell:
  PS> mazegen completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> mazegen completion powershell > mazegen.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

// writeCompletion writes the completion script for shell to w.
func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unsupported shell %q", shell)
}
