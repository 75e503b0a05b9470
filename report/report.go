// Package report renders a finished run for people and for other tools.
//
// Write prints one line per vertex in increasing id order, then each
// worker's elapsed time in rank order and the total time:
//
//	Shortest path from 0->1: 1
//	Shortest path from 0->2: UNREACHABLE
//
//	0, time taken:0.0012
//	1, time taken:0.0011
//	Total time taken: 0.0015
//
// WriteCSV stores vertex,distance rows with an empty distance for
// unreachable vertices.
package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/dsssp/sssp"
)

// ErrNilResult is returned when no result is supplied.
var ErrNilResult = errors.New("report: result is nil")

// Unreachable is printed in place of a distance when no path exists.
const Unreachable = "UNREACHABLE"

// Write renders res to w in the text format described in the package comment.
func Write(w io.Writer, res *sssp.Result) error {
	if res == nil {
		return ErrNilResult
	}

	bw := bufio.NewWriter(w)
	for v, d := range res.Distances {
		if d == sssp.Unreachable {
			fmt.Fprintf(bw, "Shortest path from %d->%d: %s\n", res.Source, v, Unreachable)

			continue
		}
		fmt.Fprintf(bw, "Shortest path from %d->%d: %d\n", res.Source, v, d)
	}

	bw.WriteString("\n")
	for _, s := range res.Stats {
		fmt.Fprintf(bw, "%d, time taken:%.4f\n", s.Rank, s.Elapsed.Seconds())
	}
	fmt.Fprintf(bw, "Total time taken: %.4f\n", res.Elapsed.Seconds())

	return bw.Flush()
}

// WriteStats renders the per-worker tallies as an aligned table.
func WriteStats(w io.Writer, res *sssp.Result) error {
	if res == nil {
		return ErrNilResult
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-6s %8s %10s %8s %9s %8s %9s\n",
		"worker", "slots", "finalized", "relaxed", "rejected", "sent", "received")
	for _, s := range res.Stats {
		fmt.Fprintf(bw, "%-6d %8d %10d %8d %9d %8d %9d\n",
			s.Rank, s.Slots, s.Finalized, s.Relaxed, s.Rejected, s.Sent, s.Received)
	}
	fmt.Fprintf(bw, "rounds: %d, coordinator: %d\n", res.Rounds, res.Coordinator)

	return bw.Flush()
}

// WriteCSV writes res as vertex,distance rows to the file at path,
// creating or truncating it.
func WriteCSV(path string, res *sssp.Result) (err error) {
	if res == nil {
		return ErrNilResult
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: %w", cerr)
		}
	}()

	return EncodeCSV(f, res)
}

// EncodeCSV writes the vertex,distance rows of res to w.
func EncodeCSV(w io.Writer, res *sssp.Result) error {
	if res == nil {
		return ErrNilResult
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vertex", "distance"}); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for v, d := range res.Distances {
		dist := ""
		if d != sssp.Unreachable {
			dist = strconv.FormatInt(d, 10)
		}
		if err := cw.Write([]string{strconv.Itoa(v), dist}); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
