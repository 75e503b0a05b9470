package sssp

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dsssp/distance"
	"github.com/katalvlaran/dsssp/transport"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph is returned when a nil *graph.Graph is passed.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices; no source exists.
	ErrEmptyGraph = errors.New("sssp: graph has no vertices")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sssp: invalid option supplied")

	// ErrRoundTimeout is wrapped into an *InvariantError when a reply does
	// not arrive within Options.RoundTimeout.
	ErrRoundTimeout = errors.New("sssp: round timed out waiting for a reply")

	// ErrUnexpectedMessage marks a message whose round or sender does not fit
	// the worker's current round.
	ErrUnexpectedMessage = errors.New("sssp: unexpected message")

	// ErrDuplicateReply marks a second reply from the same destination in one round.
	ErrDuplicateReply = errors.New("sssp: duplicate reply")
)

// Names of the protocol invariants carried by *InvariantError.
const (
	InvariantFinalizeOnce = "finalize-once"
	InvariantOneReply     = "one-reply-per-destination"
	InvariantRoundSync    = "round-synchronization"
)

// InvariantError reports a fatal protocol violation detected by a worker.
// Use errors.As to inspect it; Err holds the underlying cause.
type InvariantError struct {
	Invariant string
	Worker    int
	Round     uint64
	Err       error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sssp: invariant %s violated on worker %d in round %d: %v",
		e.Invariant, e.Worker, e.Round, e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// Unreachable is the distance reported for vertices with no path from the source.
const Unreachable = distance.Infinity

// Defaults applied by DefaultOptions.
const (
	// DefaultSource is used when the requested source lies outside [0, N).
	DefaultSource = 0

	// DefaultWorkers runs the serial path.
	DefaultWorkers = 1

	// DefaultRoundTimeout bounds every wait for a reply inside a round.
	DefaultRoundTimeout = 30 * time.Second
)

// Option configures Run via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the parameters of one run.
type Options struct {
	// Source is the start vertex. Out-of-range values fall back to Fallback.
	Source int

	// Fallback replaces an out-of-range Source. When it is out of range as
	// well, DefaultSource is used.
	Fallback int

	// Workers is the number of cooperating workers P.
	Workers int

	// RoundTimeout bounds each wait for a reply; 0 disables the bound.
	RoundTimeout time.Duration

	// MailboxSize is the per-worker inbox capacity; 0 sizes it from Workers.
	MailboxSize int

	// Logger receives lifecycle and per-round events.
	Logger zerolog.Logger

	// OnFinalize is called by the owning worker each time a vertex is
	// finalized. With several workers it runs on different goroutines and
	// must be safe for concurrent use.
	OnFinalize func(round uint64, v int, d int64)

	observers []transport.Observer
	filter    transport.Filter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Source = DefaultSource
//   - Workers = DefaultWorkers
//   - RoundTimeout = DefaultRoundTimeout
//   - automatic mailbox sizing
//   - a disabled logger and a no-op OnFinalize.
func DefaultOptions() Options {
	return Options{
		Source:       DefaultSource,
		Fallback:     DefaultSource,
		Workers:      DefaultWorkers,
		RoundTimeout: DefaultRoundTimeout,
		MailboxSize:  0,
		Logger:       zerolog.Nop(),
		OnFinalize:   func(uint64, int, int64) {},
	}
}

// Source sets the start vertex.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithFallbackSource sets the vertex used when Source is out of range.
func WithFallbackSource(v int) Option {
	return func(o *Options) { o.Fallback = v }
}

// WithWorkers sets the worker count P (P >= 1).
func WithWorkers(p int) Option {
	return func(o *Options) {
		if p < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, p)

			return
		}
		o.Workers = p
	}
}

// WithRoundTimeout bounds each wait for a reply.
//
//	d > 0: waits longer than d fail with ErrRoundTimeout
//	d == 0: wait indefinitely
//	d < 0: invalid option → ErrOptionViolation
func WithRoundTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: RoundTimeout cannot be negative (%s)", ErrOptionViolation, d)

			return
		}
		o.RoundTimeout = d
	}
}

// WithMailboxSize fixes the per-worker inbox capacity; 0 restores automatic sizing.
func WithMailboxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MailboxSize cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MailboxSize = n
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnFinalize registers a finalization hook.
func WithOnFinalize(fn func(round uint64, v int, d int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithMessageObserver registers fn to see every message exchanged between
// workers. It is never called when Workers == 1.
func WithMessageObserver(fn transport.Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithMessageFilter installs a delivery filter on the worker network.
// Messages for which fn returns false are dropped, which lets callers
// exercise the protocol's failure detection.
func WithMessageFilter(fn transport.Filter) Option {
	return func(o *Options) { o.filter = fn }
}

// mailboxSize returns the inbox capacity for p workers. A worker inbox holds
// at most one round's replies plus broadcasts it has not drained yet.
func (o Options) mailboxSize() int {
	if o.MailboxSize > 0 {
		return o.MailboxSize
	}

	return max(16, 4*o.Workers)
}

// Finalized records the vertex settled in one round.
type Finalized struct {
	Round  uint64
	Vertex int
	Dist   int64
}

// WorkerStats is one worker's tally for a run.
type WorkerStats struct {
	Rank      int
	Slots     int           // vertices owned
	Finalized int           // vertices finalized
	Relaxed   int           // candidates that lowered a distance
	Rejected  int           // candidates that did not
	Sent      int64         // messages sent
	Received  int64         // messages received
	Elapsed   time.Duration // time from start until the worker reported
}

// Result is the outcome of Run.
type Result struct {
	// Source is the vertex actually used, after any fallback.
	Source int

	// SourceFallback is true when the requested source was out of range.
	SourceFallback bool

	// Workers is P; Coordinator is the rank owning Source.
	Workers     int
	Coordinator int

	// Distances is indexed by vertex id; Unreachable marks no path.
	Distances []int64

	// Order lists finalizations in round order.
	Order []Finalized

	// Rounds counts every round including the terminating one.
	Rounds uint64

	// Stats holds one entry per worker in rank order.
	Stats []WorkerStats

	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Distances) && r.Distances[v] != Unreachable
}
