package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/pathtutor/dijkstra"
)

// DistanceTable renders rows (already sorted by the caller) as a
// three-column table: node, distance from source, previous node.
func DistanceTable(theme Theme, source string, rows []dijkstra.Row) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{row.Node, FormatNumber(row.Distance), FormatNode(row.Predecessor)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Border).
		Headers("Node", fmt.Sprintf("Distance from %q", source), "Previous Node").
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			return theme.Cell
		})

	return t.String()
}

// ResultTable renders the sorted final table of res.
func ResultTable(theme Theme, res *dijkstra.Result) string {
	return DistanceTable(theme, res.Source, res.Table())
}
