// Package tfp implements the sequential time-forward-processing engine
// (spec §4.7), grounded on
// original_source/include/ProcessTokenSequence.hpp: a merged token
// stream and a priority queue of deferred Links are consumed in lock
// step, each Link emitting a vertex id and each Query re-inserting a
// resolved Link into the queue for a future idx to consume.
package tfp

import (
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

// Process pulls the vertex-id output stream of the TFP engine. It
// implements stream.Stream[uint64]; consumers (package edgeio) pair
// consecutive outputs into edges.
type Process struct {
	in stream.Stream[token.Token]
	pq *extio.PQ[token.Token]

	lastLinkValue uint64
	lastLinkIdx   uint64
	haveLink      bool

	cur   uint64
	empty bool
}

// NewProcess constructs a Process positioned at its first output,
// mirroring ProcessTokenSequence's constructor calling ++(*this).
func NewProcess(in stream.Stream[token.Token], pq *extio.PQ[token.Token]) (*Process, error) {
	p := &Process{in: in, pq: pq}
	if err := p.fill(); err != nil {
		return nil, err
	}
	return p, nil
}

// fill drives the merger/PQ pair until either a Link token is consumed
// (producing the next output) or both are exhausted.
func (p *Process) fill() error {
	for {
		pqTok, pqOK := p.pq.Peek()
		inEmpty := p.in.Empty()

		if inEmpty && !pqOK {
			p.empty = true
			return nil
		}

		var tok token.Token
		var fromPQ bool
		switch {
		case !pqOK:
			tok = p.in.Peek()
		case inEmpty:
			tok, fromPQ = pqTok, true
		default:
			// Ties favor the merged input stream over the priority
			// queue (spec §4.7 step 1).
			inTok := p.in.Peek()
			if pqTok.Less(inTok) {
				tok, fromPQ = pqTok, true
			} else {
				tok = inTok
			}
		}

		var err error
		if fromPQ {
			_, _ = p.pq.Pop()
		} else {
			err = p.in.Advance()
		}
		if err != nil {
			return err
		}

		produced, err := p.process(tok)
		if err != nil {
			return err
		}
		if produced {
			return nil
		}
	}
}

// process consumes one token, returning true if it produced a new
// output value (a Link), matching ProcessTokenSequence's
// _processToken, which returns false ("keep looping") only for a Query.
func (p *Process) process(tok token.Token) (bool, error) {
	if tok.IsQuery() {
		if !p.haveLink {
			return false, ErrQueryBeforeLink
		}
		if tok.Idx != p.lastLinkIdx {
			return false, ErrQueryIdxMismatch
		}
		resolved, err := token.New(token.Link, tok.Value, p.lastLinkValue)
		if err != nil {
			return false, err
		}
		if err := p.pq.Push(resolved); err != nil {
			return false, err
		}
		return false, nil
	}

	p.lastLinkValue = tok.Value
	p.lastLinkIdx = tok.Idx
	p.haveLink = true
	p.cur = tok.Value
	return true, nil
}

func (p *Process) Empty() bool   { return p.empty }
func (p *Process) Peek() uint64  { return p.cur }

func (p *Process) Advance() error {
	if p.empty {
		return nil
	}
	return p.fill()
}
