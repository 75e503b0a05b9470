package transport

import (
	"fmt"
	"time"
)

// Kind identifies what a Message carries.
type Kind uint8

const (
	// KindRound is the coordinator's broadcast of the vertex selected for a round.
	KindRound Kind = iota + 1

	// KindTerminate is the coordinator's broadcast that the frontier is exhausted.
	KindTerminate

	// KindCandidates is one batch of relaxation candidates from the owner of
	// the round's vertex to one neighbor owner.
	KindCandidates

	// KindAck is a neighbor owner's single reply to the coordinator for a
	// round; it carries the candidates that improved, possibly none.
	KindAck

	// KindReport is a worker's final distances and tallies, sent to the
	// coordinator after termination.
	KindReport
)

// String returns the lowercase kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindRound:
		return "round"
	case KindTerminate:
		return "terminate"
	case KindCandidates:
		return "candidates"
	case KindAck:
		return "ack"
	case KindReport:
		return "report"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Candidate is a proposed distance for a vertex.
type Candidate struct {
	Vertex int
	Dist   int64
}

// Tally is one worker's bookkeeping, shipped inside a Report.
type Tally struct {
	Finalized int           // vertices this worker finalized
	Relaxed   int           // candidates that lowered a distance
	Rejected  int           // candidates that did not
	Sent      int64         // messages sent
	Received  int64         // messages received
	Elapsed   time.Duration // wall time from start to report
}

// Message is the unit exchanged between workers. Fields beyond Kind, From
// and Round are populated according to Kind.
type Message struct {
	Kind  Kind
	From  int    // sender rank, stamped by Endpoint.Send
	Round uint64 // round the message belongs to

	// KindRound: the selected vertex and its distance.
	Vertex int
	Dist   int64

	// KindCandidates: the batch. KindAck: the improved subset.
	Candidates []Candidate

	// KindReport: distances in slot order and the sender's tally.
	Distances []int64
	Tally     Tally
}

// String renders a compact description for debug logs.
func (m Message) String() string {
	switch m.Kind {
	case KindRound:
		return fmt.Sprintf("%s#%d from %d (v=%d d=%d)", m.Kind, m.Round, m.From, m.Vertex, m.Dist)
	case KindCandidates, KindAck:
		return fmt.Sprintf("%s#%d from %d (%d candidates)", m.Kind, m.Round, m.From, len(m.Candidates))
	default:
		return fmt.Sprintf("%s#%d from %d", m.Kind, m.Round, m.From)
	}
}
