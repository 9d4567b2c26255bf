package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pont-us/sedlog-ffq/pkg/config"
)

// completionCommand prints a completion script for the given shell.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sedlog.

  $ source <(sedlog completion bash)
  $ sedlog completion zsh > "${fpath[1]}/_sedlog"
  $ sedlog completion fish | source

Sheet names (--sheet) and formats (--format) complete from the project
file in the current directory.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}

// completeSheets offers the sheet names of the project named by the first
// argument, or of the project in the working directory.
func completeSheets(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadProject(projectArg(args))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return matchPrefix(cfg.SheetNames(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats offers output formats, one element of a comma list at a time.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, last = toComplete[:i+1], toComplete[i+1:]
	}
	var out []string
	for _, f := range matchPrefix([]string{config.FormatPDF, config.FormatSVG, config.FormatPNG}, last) {
		out = append(out, done+f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func matchPrefix(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}
