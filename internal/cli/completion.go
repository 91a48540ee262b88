package cli

import (
	"github.com/spf13/cobra"
)

// projectExtensions are the file extensions offered when completing project
// arguments.
var projectExtensions = []string{"json", "yaml", "yml", "toml", "hcl"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for critpath.

Completions cover subcommands, flags, --format values, and project files
(.json, .yaml, .yml, .toml, .hcl).

  Bash:       source <(critpath completion bash)
  Zsh:        critpath completion zsh > "${fpath[1]}/_critpath"
  Fish:       critpath completion fish | source
  PowerShell: critpath completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeProjectFiles completes project file arguments. With single set,
// only the first argument is completed.
func completeProjectFiles(single bool) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if single && len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return projectExtensions, cobra.ShellCompDirectiveFilterFileExt
	}
}

// completeFormats registers static completion values for a --format flag.
func completeFormats(cmd *cobra.Command, formats ...string) {
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))
}
