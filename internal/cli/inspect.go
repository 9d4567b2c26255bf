package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pont-us/sedlog-ffq/pkg/logdata"
)

// inspectCommand creates the inspect command, which summarizes the loaded
// input tables without drawing anything.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [project]",
		Short: "Summarize the input tables of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), projectArg(args))
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, path string) error {
	cfg, err := loadProject(path)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, path, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	in, err := runner.Load(ctx, cfg)
	if err != nil {
		return err
	}
	sum := logdata.Summarize(in.Data.Beds)

	fmt.Println(StyleTitle.Render("Beds"))
	printKeyValue("File", cfg.Inputs.Beds)
	printKeyValue("Count", fmt.Sprint(sum.Beds))
	if sum.Beds > 0 {
		printKeyValue("Range", fmt.Sprintf("%g – %g", sum.Bottom, sum.Top))
		printKeyValue("Thickness", fmt.Sprintf("%g", sum.Thickness))
	}
	printKeyValue("MS spots", fmt.Sprint(sum.MagSusSpots))
	fmt.Println()

	fmt.Println(countTable("Lithology", sum.Liths, lithName))
	fmt.Println(countTable("Grain", sum.Grains, func(s string) string { return s }))

	fmt.Println(StyleTitle.Render("Paleomagnetism"))
	printKeyValue("Drill sites", fmt.Sprint(len(sum.Sites)))
	if len(sum.Sites) > 0 {
		printDetail("%s", strings.Join(sum.Sites, " "))
	}
	if cfg.Inputs.Sites != "" {
		printKeyValue("Directions", fmt.Sprint(len(in.Data.Sites)))
	}
	if cfg.Inputs.MagSus != "" {
		printKeyValue("MS samples", fmt.Sprint(len(in.Data.MagSus)))
	}
	return nil
}

// countTable renders a two-column table of counts sorted by key.
func countTable(title string, counts map[string]int, label func(string) string) string {
	rows := make([][]string, 0, len(counts))
	for _, k := range logdata.SortedKeys(counts) {
		rows = append(rows, []string{label(k), fmt.Sprint(counts[k])})
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(title, "Beds").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

func lithName(code string) string {
	switch code {
	case logdata.LithSandstone:
		return "sandstone (sst)"
	case logdata.LithSiltstone:
		return "siltstone (sist)"
	case logdata.LithNotExposed:
		return "not exposed (ne)"
	case logdata.LithUnspecified:
		return "unspecified"
	}
	return code
}
