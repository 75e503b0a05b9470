// Package transport moves messages between the workers of one process group.
//
// A Network owns one buffered inbox per rank. Each rank talks through its own
// Endpoint: Send delivers to a single peer, Broadcast to every peer but the
// sender, and Receive takes the next message from the rank's inbox in
// arrival order. Messages from one sender to one receiver are never
// reordered; messages from different senders interleave arbitrarily.
//
// Sends block while the destination inbox is full, until the context ends
// or the network is closed.
package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Sentinel errors.
var (
	// ErrNoPeers is returned by NewNetwork for fewer than one rank.
	ErrNoPeers = errors.New("transport: network needs at least one rank")

	// ErrBadMailbox is returned by NewNetwork for a mailbox size below one.
	ErrBadMailbox = errors.New("transport: mailbox size must be at least 1")

	// ErrSelfSend is returned when an endpoint addresses itself.
	ErrSelfSend = errors.New("transport: endpoint cannot send to itself")

	// ErrUnknownPeer is returned for a rank outside the network.
	ErrUnknownPeer = errors.New("transport: unknown peer")

	// ErrClosed is returned once the network has been closed.
	ErrClosed = errors.New("transport: network closed")
)

// Observer is called for every message Send hands to a mailbox, after From
// is stamped. Messages dropped by the Filter are not observed. It runs on the
// sender's goroutine and must be safe for concurrent use.
type Observer func(to int, msg Message)

// Filter decides whether a message is delivered. Returning false drops the
// message silently; the send still succeeds and the drop is counted by
// Endpoint.Dropped instead of Endpoint.Sent. It must be safe for concurrent use.
type Filter func(to int, msg Message) bool

// Option configures a Network.
type Option func(*Network)

// WithObserver registers fn to see every sent message.
func WithObserver(fn Observer) Option {
	return func(n *Network) {
		if fn != nil {
			n.observers = append(n.observers, fn)
		}
	}
}

// WithFilter installs a delivery filter, typically for fault injection.
func WithFilter(fn Filter) Option {
	return func(n *Network) { n.filter = fn }
}

// Network is the set of inboxes of a process group.
type Network struct {
	inboxes   []chan Message
	endpoints []*Endpoint
	observers []Observer
	filter    Filter
	done      chan struct{}
	closeOnce sync.Once
}

// NewNetwork creates a network of the given number of ranks, each inbox
// buffering up to mailbox messages.
func NewNetwork(workers, mailbox int, opts ...Option) (*Network, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoPeers, workers)
	}
	if mailbox < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMailbox, mailbox)
	}

	n := &Network{
		inboxes:   make([]chan Message, workers),
		endpoints: make([]*Endpoint, workers),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	for rank := range n.inboxes {
		n.inboxes[rank] = make(chan Message, mailbox)
		n.endpoints[rank] = &Endpoint{net: n, rank: rank}
	}

	return n, nil
}

// Workers returns the number of ranks.
func (n *Network) Workers() int { return len(n.inboxes) }

// Endpoint returns the endpoint of the given rank.
func (n *Network) Endpoint(rank int) (*Endpoint, error) {
	if rank < 0 || rank >= len(n.endpoints) {
		return nil, fmt.Errorf("%w: rank %d", ErrUnknownPeer, rank)
	}

	return n.endpoints[rank], nil
}

// Close releases every blocked Send and Receive with ErrClosed.
// It is safe to call more than once.
func (n *Network) Close() {
	n.closeOnce.Do(func() { close(n.done) })
}

// Endpoint is one rank's view of the network. An Endpoint is meant to be
// driven by a single goroutine; its counters may be read from any goroutine.
type Endpoint struct {
	net      *Network
	rank     int
	sent     atomic.Int64
	received atomic.Int64
	dropped  atomic.Int64
}

// Rank returns the endpoint's rank.
func (e *Endpoint) Rank() int { return e.rank }

// Sent returns the number of messages delivered to a mailbox so far.
func (e *Endpoint) Sent() int64 { return e.sent.Load() }

// Dropped returns the number of messages discarded by the filter so far.
func (e *Endpoint) Dropped() int64 { return e.dropped.Load() }

// Received returns the number of messages received so far.
func (e *Endpoint) Received() int64 { return e.received.Load() }

// Send delivers msg to rank to. From is overwritten with the sender's rank.
func (e *Endpoint) Send(ctx context.Context, to int, msg Message) error {
	if to == e.rank {
		return ErrSelfSend
	}
	if to < 0 || to >= len(e.net.inboxes) {
		return fmt.Errorf("%w: rank %d", ErrUnknownPeer, to)
	}
	msg.From = e.rank

	if e.net.filter != nil && !e.net.filter(to, msg) {
		e.dropped.Add(1)

		return nil
	}
	for _, obs := range e.net.observers {
		obs(to, msg)
	}

	select {
	case e.net.inboxes[to] <- msg:
		e.sent.Add(1)

		return nil
	case <-e.net.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Broadcast sends msg to every other rank in increasing rank order.
func (e *Endpoint) Broadcast(ctx context.Context, msg Message) error {
	for to := range e.net.inboxes {
		if to == e.rank {
			continue
		}
		if err := e.Send(ctx, to, msg); err != nil {
			return fmt.Errorf("transport: broadcast to %d: %w", to, err)
		}
	}

	return nil
}

// Receive returns the next message in the inbox, blocking until one arrives,
// ctx ends or the network closes. Buffered messages are still drained after
// Close.
func (e *Endpoint) Receive(ctx context.Context) (Message, error) {
	inbox := e.net.inboxes[e.rank]

	select {
	case msg := <-inbox:
		e.received.Add(1)

		return msg, nil
	default:
	}

	select {
	case msg := <-inbox:
		e.received.Add(1)

		return msg, nil
	case <-e.net.done:
		return Message{}, ErrClosed
	case <-ctx.Done():
		return Message{}, ctx.Err()
	}
}
