package render

import (
	"errors"

	"github.com/katalvlaran/pathtutor/builder"
	"github.com/katalvlaran/pathtutor/dijkstra"
)

// Message maps a pipeline error to the sentence shown to the user. Unknown
// errors fall back to err.Error().
func Message(err error) string {
	var we *builder.WeightError
	switch {
	case errors.As(err, &we):
		return "Invalid distance for " + we.From + " -> " + we.To + ": " + we.Reason + "."
	case errors.Is(err, builder.ErrEmptyGraph), errors.Is(err, dijkstra.ErrEmptyGraph):
		return "Graph is empty! Please input your graph."
	case errors.Is(err, builder.ErrDuplicateNode):
		return "Every node may be declared only once."
	case errors.Is(err, builder.ErrDuplicateEdge):
		return "A neighbour may be listed only once per node."
	case errors.Is(err, builder.ErrEmptyLabel):
		return "Node names cannot be blank."
	case errors.Is(err, builder.ErrUnknownNode):
		return "Neighbours must refer to declared nodes."
	case errors.Is(err, builder.ErrInvalidDirective):
		return "Invalid response! Please answer yes or no."
	case errors.Is(err, dijkstra.ErrUnknownStartNode):
		return "Starting node must be in the graph nodes!"
	case errors.Is(err, dijkstra.ErrUnknownDestinationNode):
		return "Destination node not found in graph!"
	case errors.Is(err, dijkstra.ErrUnreachableDestination):
		return "Destination cannot be reached from the starting node."
	default:
		return err.Error()
	}
}
