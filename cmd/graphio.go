package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seankmartin/SKMNeuralConnections/graph"
	"github.com/seankmartin/SKMNeuralConnections/matrix"
)

// ErrNoInput indicates that neither --graph nor --blocks was given.
var ErrNoInput = errors.New("cmd: one of --graph or --blocks is required")

// graphDoc is the YAML adjacency-list form:
//
//	vertices:
//	  - [1, 2]
//	  - [2]
//	  - []
type graphDoc struct {
	Vertices [][]int `yaml:"vertices"`
}

// blocksDoc is the YAML block-quadruple form: partition sizes plus the
// nonzero [row, col] cells of each quadrant.
//
//	num_a: 2
//	num_b: 1
//	ab: [[0, 0]]
//	aa: [[0, 1]]
type blocksDoc struct {
	NumA int      `yaml:"num_a"`
	NumB int      `yaml:"num_b"`
	AB   [][2]int `yaml:"ab"`
	BA   [][2]int `yaml:"ba"`
	AA   [][2]int `yaml:"aa"`
	BB   [][2]int `yaml:"bb"`
}

// loadGraph reads an adjacency-list YAML document into a Graph.
func loadGraph(path string) (*graph.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cmd: read %s: %w", path, err)
	}
	var doc graphDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cmd: parse %s: %w", path, err)
	}
	g, err := graph.FromAdjacency(doc.Vertices)
	if err != nil {
		return nil, fmt.Errorf("cmd: %s: %w", path, err)
	}
	return g, nil
}

// loadBlocks reads a block-quadruple YAML document into sparse matrices.
func loadBlocks(path string) (matrix.Blocks, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return matrix.Blocks{}, fmt.Errorf("cmd: read %s: %w", path, err)
	}
	var doc blocksDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return matrix.Blocks{}, fmt.Errorf("cmd: parse %s: %w", path, err)
	}

	fill := func(rows, cols int, cells [][2]int) (matrix.Matrix, error) {
		m, err := matrix.NewSparse(rows, cols)
		if err != nil {
			return nil, err
		}
		for _, cell := range cells {
			if err = m.Set(cell[0], cell[1], 1); err != nil {
				return nil, err
			}
		}
		return m, nil
	}

	var b matrix.Blocks
	if b.AB, err = fill(doc.NumA, doc.NumB, doc.AB); err != nil {
		return matrix.Blocks{}, fmt.Errorf("cmd: %s: ab: %w", path, err)
	}
	if b.BA, err = fill(doc.NumB, doc.NumA, doc.BA); err != nil {
		return matrix.Blocks{}, fmt.Errorf("cmd: %s: ba: %w", path, err)
	}
	if b.AA, err = fill(doc.NumA, doc.NumA, doc.AA); err != nil {
		return matrix.Blocks{}, fmt.Errorf("cmd: %s: aa: %w", path, err)
	}
	if b.BB, err = fill(doc.NumB, doc.NumB, doc.BB); err != nil {
		return matrix.Blocks{}, fmt.Errorf("cmd: %s: bb: %w", path, err)
	}
	return b, nil
}

// loadInput resolves the --graph / --blocks pair into a Graph, applying
// the quadrant selector when the blocks form is used.
func loadInput(graphPath, blocksPath string, sel matrix.Selector) (*graph.Graph, error) {
	switch {
	case graphPath != "":
		return loadGraph(graphPath)
	case blocksPath != "":
		b, err := loadBlocks(blocksPath)
		if err != nil {
			return nil, err
		}
		return matrix.FromBlocks(b, sel)
	default:
		return nil, ErrNoInput
	}
}

// parseVertexList parses a comma-separated vertex list such as "0,3,12".
func parseVertexList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("cmd: vertex list %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseSelector parses a comma-separated quadrant list such as "AB,AA".
// An empty string enables every quadrant.
func parseSelector(s string) (matrix.Selector, error) {
	if strings.TrimSpace(s) == "" {
		return matrix.AllQuadrants(), nil
	}
	var sel matrix.Selector
	for _, p := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(p)) {
		case "AB":
			sel.AB = true
		case "BA":
			sel.BA = true
		case "AA":
			sel.AA = true
		case "BB":
			sel.BB = true
		default:
			return matrix.Selector{}, fmt.Errorf("cmd: unknown quadrant %q", p)
		}
	}
	return sel, nil
}
