package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadEdgeList opens path and decodes it with ReadEdgeList.
func LoadEdgeList(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadEdgeList(f)
}

// ReadEdgeList parses a plain-text edge list: one "u v" pair per line,
// blank lines and lines starting with '#' or '%' ignored. A line holding a
// single integer before any edge declares the vertex count, which keeps
// trailing isolated vertices; otherwise N is one past the largest id seen.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	var (
		edges    []Edge
		declared = -1
		maxID    = -1
		lineNo   int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) == 1 && declared < 0 && len(edges) == 0:
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: bad vertex count %q", ErrBadFormat, lineNo, fields[0])
			}
			declared = n
		case len(fields) >= 2:
			u, err1 := strconv.Atoi(fields[0])
			v, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil || u < 0 || v < 0 {
				return nil, fmt.Errorf("%w: line %d: bad edge %q", ErrBadFormat, lineNo, line)
			}
			edges = append(edges, Edge{From: u, To: v})
			maxID = max(maxID, u, v)
		default:
			return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrBadFormat, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graph: read edge list: %w", err)
	}

	n := maxID + 1
	if declared >= 0 {
		if declared < n {
			return nil, fmt.Errorf("%w: declared %d vertices but saw id %d", ErrVertexOutOfRange, declared, maxID)
		}
		n = declared
	}

	return New(n, edges)
}
