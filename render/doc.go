// Package render turns engine results into text for a human reader: the
// registered graph as YAML, the distance table, and a step-by-step
// narration of the run.
//
// Nothing here affects the computation; every function takes finished
// values from core and dijkstra.
package render
