package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtutor/core"
)

// GraphYAML renders g as a nested node → {neighbor: weight} mapping with
// keys sorted. Degree-zero nodes appear as "{}".
func GraphYAML(g *core.Graph) (string, error) {
	out, err := yaml.Marshal(g.Adjacency())
	if err != nil {
		return "", fmt.Errorf("render: graph yaml: %w", err)
	}

	return string(out), nil
}
