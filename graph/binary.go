package graph

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Binary adjacency layout (all integers little-endian):
//
//	magic    [4]byte  "SSPG"
//	version  uint32   1
//	n        uint64   vertex count
//	m        uint64   edge count
//	degree   n × uint32, out-degree of each vertex in id order
//	target   m × uint32, heads grouped by tail in id order
const (
	binaryMagic   = "SSPG"
	binaryVersion = uint32(1)
)

// LoadBinary opens path and decodes it with ReadBinary.
func LoadBinary(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadBinary(f)
}

// ReadBinary decodes a graph in the binary adjacency layout.
func ReadBinary(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	// 1) Header.
	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadFormat, err)
	}
	if string(magic[:]) != binaryMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrBadFormat, magic[:])
	}
	var hdr struct {
		Version uint32
		N       uint64
		M       uint64
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadFormat, err)
	}
	if hdr.Version != binaryVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadFormat, hdr.Version)
	}
	if hdr.N > math.MaxUint32 || hdr.M > math.MaxInt32 {
		return nil, fmt.Errorf("%w: n=%d m=%d too large", ErrBadFormat, hdr.N, hdr.M)
	}
	n := int(hdr.N)

	// 2) Degrees become row offsets directly.
	degrees, err := readUint32s(br, hdr.N)
	if err != nil {
		return nil, fmt.Errorf("%w: degrees: %v", ErrBadFormat, err)
	}
	offsets := make([]int, n+1)
	for v, d := range degrees {
		offsets[v+1] = offsets[v] + int(d)
	}
	if uint64(offsets[n]) != hdr.M {
		return nil, fmt.Errorf("%w: degree sum %d != m %d", ErrBadFormat, offsets[n], hdr.M)
	}

	// 3) Targets, range-checked.
	raw, err := readUint32s(br, hdr.M)
	if err != nil {
		return nil, fmt.Errorf("%w: targets: %v", ErrBadFormat, err)
	}
	targets := make([]int, len(raw))
	for i, t := range raw {
		if int(t) >= n {
			return nil, fmt.Errorf("%w: target #%d = %d with n=%d", ErrVertexOutOfRange, i, t, n)
		}
		targets[i] = int(t)
	}

	return &Graph{n: n, offsets: offsets, targets: targets}, nil
}

// readChunk bounds each allocation of readUint32s, so a header claiming more
// entries than the stream holds fails after a small read.
const readChunk = 1 << 16

// readUint32s reads count little-endian values, growing the result only as
// data arrives.
func readUint32s(r io.Reader, count uint64) ([]uint32, error) {
	out := make([]uint32, 0, min(count, readChunk))
	buf := make([]uint32, min(count, readChunk))
	for remaining := count; remaining > 0; {
		chunk := buf[:min(remaining, readChunk)]
		if err := binary.Read(r, binary.LittleEndian, chunk); err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		remaining -= uint64(len(chunk))
	}

	return out, nil
}

// WriteBinary encodes g in the binary adjacency layout.
func WriteBinary(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(binaryMagic); err != nil {
		return err
	}
	hdr := struct {
		Version uint32
		N       uint64
		M       uint64
	}{binaryVersion, uint64(g.n), uint64(len(g.targets))}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}

	degrees := make([]uint32, g.n)
	for v := range degrees {
		degrees[v] = uint32(g.OutDegree(v))
	}
	if err := binary.Write(bw, binary.LittleEndian, degrees); err != nil {
		return err
	}

	raw := make([]uint32, len(g.targets))
	for i, t := range g.targets {
		raw[i] = uint32(t)
	}
	if err := binary.Write(bw, binary.LittleEndian, raw); err != nil {
		return err
	}

	return bw.Flush()
}
