package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/harness"
)

var (
	styleHeading     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleTableHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List algorithms and graph categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			algos := harness.Algorithms()
			algoRows := make([][]string, len(algos))
			for i, a := range algos {
				algoRows[i] = []string{a.Name, a.Description}
			}

			cats := builder.Categories()
			catRows := make([][]string, len(cats))
			for i, c := range cats {
				kind := "fixed"
				if c.Stochastic {
					kind = "random"
				}
				catRows[i] = []string{c.Name, c.Description, kind}
			}

			var sb strings.Builder
			sb.WriteString(styleHeading.Render("Algorithms"))
			sb.WriteString("\n")
			sb.WriteString(listTable(algoRows, -1, "name", "description").String())
			sb.WriteString("\n\n")
			sb.WriteString(styleHeading.Render("Categories"))
			sb.WriteString("\n")
			sb.WriteString(listTable(catRows, 2, "name", "description", "inputs").String())
			sb.WriteString("\n")

			_, err := fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}

// listTable renders rows under headers; column dimCol (if >= 0) is dimmed.
func listTable(rows [][]string, dimCol int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case col == dimCol:
				return styleTableCell.Foreground(lipgloss.Color("240"))
			default:
				return styleTableCell
			}
		})
}
