package graph

import (
	"fmt"
	"os"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// LoadDOT opens path and decodes it with ReadDOT.
func LoadDOT(path string) (*Graph, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("graph: read %s: %w", path, err)
	}

	return ReadDOT(data)
}

// ReadDOT parses a Graphviz DOT document.
//
// When every node name is a canonical non-negative integer ("7", not "07"
// or "+7"), names are used as ids and
// N is one past the largest. Otherwise ids are assigned in order of first
// appearance (node statements first, then edge endpoints). The returned names
// slice maps id → node name in both cases. Undirected graphs yield both
// directions for every edge.
func ReadDOT(data []byte) (*Graph, []string, error) {
	parsed, err := gographviz.Read(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: dot: %v", ErrBadFormat, err)
	}

	// 1) Collect names in first-appearance order.
	var order []string
	seen := make(map[string]bool)
	note := func(name string) {
		name = unquote(name)
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	for _, node := range parsed.Nodes.Nodes {
		note(node.Name)
	}
	for _, e := range parsed.Edges.Edges {
		note(e.Src)
		note(e.Dst)
	}

	// 2) Pick the id scheme.
	ids := make(map[string]int, len(order))
	numeric := true
	maxID := -1
	for _, name := range order {
		v, err := strconv.Atoi(name)
		if err != nil || v < 0 || strconv.Itoa(v) != name {
			numeric = false
			break
		}
		ids[name] = v
		maxID = max(maxID, v)
	}

	var names []string
	n := 0
	if numeric {
		n = maxID + 1
		names = make([]string, n)
		for v := range names {
			names[v] = strconv.Itoa(v)
		}
	} else {
		n = len(order)
		names = order
		for v, name := range order {
			ids[name] = v
		}
	}

	// 3) Edges, mirrored for undirected documents.
	edges := make([]Edge, 0, len(parsed.Edges.Edges))
	for _, e := range parsed.Edges.Edges {
		from, to := ids[unquote(e.Src)], ids[unquote(e.Dst)]
		edges = append(edges, Edge{From: from, To: to})
		if !parsed.Directed {
			edges = append(edges, Edge{From: to, To: from})
		}
	}

	g, err := New(n, edges)
	if err != nil {
		return nil, nil, err
	}

	return g, names, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}

	return s
}
