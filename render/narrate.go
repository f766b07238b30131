package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathtutor/dijkstra"
)

// Narrator writes a step-by-step explanation of a finished run.
type Narrator struct {
	w     io.Writer
	theme Theme
	err   error
}

// NewNarrator returns a Narrator writing to w with the given theme.
func NewNarrator(w io.Writer, theme Theme) *Narrator {
	return &Narrator{w: w, theme: theme}
}

// printf writes one line, remembering the first write error.
func (n *Narrator) printf(format string, args ...any) {
	if n.err != nil {
		return
	}
	_, n.err = fmt.Fprintf(n.w, format+"\n", args...)
}

// quote styles a node label.
func (n *Narrator) quote(label string) string {
	return n.theme.Node.Render(fmt.Sprintf("%q", label))
}

// set renders a list of labels as {"A", "B"}.
func (n *Narrator) set(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// Narrate explains res from initialization to the final table. When
// intermediate is set, the distance table is printed after every step.
func (n *Narrator) Narrate(res *dijkstra.Result, intermediate bool) error {
	src := res.Source
	n.printf("%s", n.theme.Title.Render("Step-by-Step Breakdown of Dijkstra's Algorithm"))
	n.printf("Initial unexplored nodes: %s", n.set(res.Nodes()))

	if intermediate {
		n.printf("Current distances from %s:", n.quote(src))
		n.printf("%s", DistanceTable(n.theme, src, initialRows(res)))
	}

	steps := res.Steps()
	records := initialRecords(res)
	for i, step := range steps {
		n.printf("")
		if i > 0 {
			n.printf("From the unexplored nodes listed above, we select a node with the lowest current distance from %s: %s",
				n.quote(src), n.quote(step.Explored))
		}
		n.printf("%s %s", n.theme.Title.Render("Exploring node:"), n.quote(step.Explored))
		if !isFinite(step.Distance) {
			n.printf("%s", n.theme.Muted.Render(fmt.Sprintf(
				"- %q has no finite distance from %q; it cannot improve any other node.", step.Explored, src)))
		}
		for _, ev := range step.Relaxations {
			n.printf("%s", n.theme.Update.Render(fmt.Sprintf(
				"- Updating the distance of %q from %q: %s -> %s + %s = %s",
				ev.Neighbor, src,
				FormatNumber(ev.OldDistance), FormatNumber(step.Distance),
				FormatNumber(ev.Weight), FormatNumber(ev.NewDistance))))
			n.printf("%s", n.theme.Update.Render(fmt.Sprintf(
				"- Setting the previous node of %q to %q: %q -> %q",
				ev.Neighbor, ev.Node, FormatNode(ev.OldPredecessor), ev.NewPredecessor)))
			records[ev.Neighbor] = dijkstra.Record{Distance: ev.NewDistance, Predecessor: ev.NewPredecessor}
		}
		if len(step.Relaxations) == 0 {
			n.printf("%s", n.theme.Muted.Render("- No distances change."))
		}
		if intermediate && len(step.Relaxations) > 0 {
			n.printf("The current distance table becomes:")
			n.printf("%s", DistanceTable(n.theme, src, sortedRows(res.Nodes(), records)))
		}
		n.printf("- Marking %s as explored", n.quote(step.Explored))
		n.printf("- Unexplored nodes: %s", n.set(step.Remaining))
	}

	n.printf("")
	n.printf("%s", n.theme.Title.Render("Final distance table:"))
	n.printf("%s", ResultTable(n.theme, res))

	return n.err
}

// Path writes the shortest path line for dest, or a warning for the error.
func (n *Narrator) Path(res *dijkstra.Result, dest string) error {
	path, err := res.PathTo(dest)
	if err != nil {
		n.printf("%s", n.theme.Warning.Render(Message(err)))
		return n.err
	}
	d, _ := res.Distance(dest)
	n.printf("Shortest path from %s to %s: %s (total %s)",
		n.quote(res.Source), n.quote(dest), strings.Join(path, " -> "), FormatNumber(d))

	return n.err
}

// initialRecords rebuilds the table as it was before the first step.
func initialRecords(res *dijkstra.Result) map[string]dijkstra.Record {
	records := make(map[string]dijkstra.Record, len(res.Records))
	for _, node := range res.Nodes() {
		records[node] = dijkstra.Record{Distance: dijkstra.Infinity}
	}
	records[res.Source] = dijkstra.Record{Distance: 0}

	return records
}

// initialRows is the sorted initial table.
func initialRows(res *dijkstra.Result) []dijkstra.Row {
	return sortedRows(res.Nodes(), initialRecords(res))
}

// sortedRows orders records by distance, then label (nodes is pre-sorted).
func sortedRows(nodes []string, records map[string]dijkstra.Record) []dijkstra.Row {
	rows := make([]dijkstra.Row, 0, len(nodes))
	for _, node := range nodes {
		rows = append(rows, dijkstra.Row{Node: node, Record: records[node]})
	}
	dijkstra.SortRows(rows)

	return rows
}

func isFinite(x float64) bool { return x < dijkstra.Infinity }
