package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pont-us/sedlog-ffq/pkg/config"
)

// configCommand creates the config command, which prints the effective
// project configuration.
func (c *CLI) configCommand() *cobra.Command {
	var (
		defaults bool
		sheets   bool
	)

	cmd := &cobra.Command{
		Use:   "config [project]",
		Short: "Print the effective project configuration as TOML",
		Long: `Print the configuration sedlog would use, with every default filled
in. The output is itself a valid project file:

  sedlog config --default > sedlog.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if defaults {
				cfg = config.Default()
			} else {
				var err error
				if cfg, err = loadProject(projectArg(args)); err != nil {
					return err
				}
			}
			if sheets {
				printSheets(cfg)
				return nil
			}
			return cfg.Encode(os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&defaults, "default", false, "print the built-in defaults")
	cmd.Flags().BoolVar(&sheets, "sheets", false, "list sheets and their pages instead")

	return cmd
}

func printSheets(cfg *config.Config) {
	for i := range cfg.Sheets {
		s := &cfg.Sheets[i]
		fmt.Println(StyleTitle.Render(s.Name))
		printKeyValue("Scale", fmt.Sprintf("%g pt/unit", s.Scale))
		printKeyValue("Formations", s.Formations)
		for _, p := range s.Pages() {
			printDetail("%-20s %g – %g", s.OutputName(p.Bottom), p.Bottom, p.Top)
		}
	}
}
