package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathtutor/builder"
	"github.com/katalvlaran/pathtutor/core"
	"github.com/katalvlaran/pathtutor/dijkstra"
	"github.com/katalvlaran/pathtutor/internal/config"
	"github.com/katalvlaran/pathtutor/render"
)

// errAborted is returned when input ends before a session completes.
var errAborted = errors.New("pathtutor: input closed")

// tutor drives one interactive session over a line-oriented reader.
type tutor struct {
	in       *bufio.Scanner
	out      io.Writer
	theme    render.Theme
	cfg      config.TutorCfg
	narrator *render.Narrator
}

func newTutor(in io.Reader, out io.Writer, theme render.Theme, cfg config.TutorCfg) *tutor {
	return &tutor{
		in:       bufio.NewScanner(in),
		out:      out,
		theme:    theme,
		cfg:      cfg,
		narrator: render.NewNarrator(out, theme),
	}
}

func (t *tutor) say(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

func (t *tutor) warn(err error) {
	t.say("%s", t.theme.Warning.Render(render.Message(err)))
}

// ask prints q and returns the next input line without its newline.
func (t *tutor) ask(q string) (string, error) {
	fmt.Fprintf(t.out, "%s ", q)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", errAborted
	}

	return strings.TrimRight(t.in.Text(), "\r"), nil
}

// session runs the tutor end to end:
//  1. obtain the graph (file or prompts) and show it,
//  2. run from the start node and narrate every step,
//  3. answer destination queries until a blank line.
func (t *tutor) session(opts options) error {
	g, err := t.graph(opts.graphPath)
	if err != nil {
		return err
	}
	if opts.savePath != "" {
		if err = saveGraph(opts.savePath, g); err != nil {
			t.warn(err)
			return err
		}
	}

	view, err := render.GraphYAML(g)
	if err != nil {
		return err
	}
	t.say("%s", t.theme.Title.Render("Your graph:"))
	t.say("%s", view)

	res, err := t.run(g, opts.source)
	if err != nil {
		return err
	}
	if err = t.narrator.Narrate(res, t.cfg.IntermediateTables); err != nil {
		return err
	}

	if opts.dest != "" {
		return t.narrator.Path(res, opts.dest)
	}
	for {
		dest, err := t.ask("Enter destination node to see the shortest path (blank to finish):")
		if errors.Is(err, errAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if dest = strings.TrimSpace(dest); dest == "" {
			return nil
		}
		if err = t.narrator.Path(res, dest); err != nil {
			return err
		}
	}
}

// graph loads path when set, otherwise collects the graph by prompting.
func (t *tutor) graph(path string) (*core.Graph, error) {
	var opts []builder.Option
	if t.cfg.StrictNeighbors {
		opts = append(opts, builder.WithStrictNeighbors())
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := builder.DecodeYAML(f, opts...)
		if err != nil {
			t.warn(err)
			return nil, err
		}
		log.WithFields(log.Fields{"file": path, "nodes": g.Order(), "edges": g.Size()}).Debug("graph loaded")
		return g, nil
	}

	answers, err := t.collect()
	if err != nil {
		return nil, err
	}
	in, err := answers.Input()
	if err != nil {
		t.warn(err)
		return nil, err
	}
	g, err := builder.Build(in, opts...)
	if err != nil {
		t.warn(err)
		return nil, err
	}

	return g, nil
}

// collect asks for nodes, neighbors, weights and direction. Empty node
// lists and malformed weights or yes/no answers are asked again.
func (t *tutor) collect() (builder.Answers, error) {
	a := builder.Answers{
		Neighbors: make(map[string]string),
		Weights:   make(map[string]map[string]string),
	}

	var nodes []string
	for len(nodes) == 0 {
		line, err := t.ask("Enter all the nodes in the graph, separated by commas:")
		if err != nil {
			return a, err
		}
		if nodes = builder.SplitList(line); len(nodes) == 0 {
			t.warn(builder.ErrEmptyGraph)
			continue
		}
		a.Nodes = line
	}

	for _, node := range nodes {
		line, err := t.ask(fmt.Sprintf("Enter all the neighbours of %q, separated by commas (blank for none):", node))
		if err != nil {
			return a, err
		}
		a.Neighbors[node] = line
		a.Weights[node] = make(map[string]string)
		for _, nbr := range builder.SplitList(line) {
			if a.Weights[node][nbr], err = t.askWeight(node, nbr); err != nil {
				return a, err
			}
		}
	}

	for {
		line, err := t.ask("Make the graph undirected? (yes/no):")
		if err != nil {
			return a, err
		}
		if _, err = builder.ParseDirective(line); err != nil {
			t.warn(err)
			continue
		}
		a.Undirected = line
		return a, nil
	}
}

func (t *tutor) askWeight(from, to string) (string, error) {
	for {
		line, err := t.ask(fmt.Sprintf("Enter the single-edge distance between %q and %q:", from, to))
		if err != nil {
			return "", err
		}
		if _, err = builder.ParseWeight(from, to, line); err != nil {
			t.warn(err)
			continue
		}
		return line, nil
	}
}

// run asks for the start node until Run accepts it, unless one was given.
func (t *tutor) run(g *core.Graph, source string) (*dijkstra.Result, error) {
	for {
		if source == "" {
			line, err := t.ask("Enter the starting node:")
			if err != nil {
				return nil, err
			}
			source = strings.TrimSpace(line)
		}
		res, err := dijkstra.Run(g, source)
		if err == nil {
			return res, nil
		}
		t.warn(err)
		if !errors.Is(err, dijkstra.ErrUnknownStartNode) {
			return nil, err
		}
		source = ""
	}
}

func saveGraph(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = builder.EncodeYAML(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
