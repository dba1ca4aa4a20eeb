package model

import (
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/token"
)

// BBCR holds the fixed parameters of one BBCR generation pass, grounded
// on original_source/models/ModelBBCR.hpp's constructor arguments.
type BBCR struct {
	NumEdges        uint64
	FirstVertex     uint64
	FirstEdge       uint64
	Alpha           float64
	Beta            float64
	DegreeOffsetIn  float64
	DegreeOffsetOut float64
}

// GenerateBBCR runs the directed Bollobás–Borgs–Chayes–Riordan rule
// (spec §4.5), pushing every generated token into sorter. Mirrors
// ModelBBCR.hpp's _populate/_generate_random_token exactly: the
// alpha/beta/gamma draw selects which endpoint of the next edge is a
// freshly created vertex, and each remaining endpoint is resolved by
// an in- or out-distribution draw that is, with probability
// proportional to the configured degree offset, a uniform pick among
// existing vertices, and otherwise a deferred Query against a
// randomly chosen already-written slot of matching parity.
func GenerateBBCR(cfg BBCR, sorter *extio.Sorter[token.Token], rng *RNG) error {
	v := cfg.FirstVertex
	t := 2 * cfg.FirstEdge
	end := t + 2*cfg.NumEdges

	push := func(tok token.Token, err error) error {
		if err != nil {
			return err
		}
		return sorter.Push(tok)
	}

	distTok := func(offset float64) (token.Token, error) {
		if offset > 0 {
			p := (float64(v) * offset) / (float64(v)*offset + float64(t)/2)
			if rng.Float64() < p {
				dst := rng.Uint64n(v + 1)
				return token.New(token.Link, t, dst)
			}
		}
		bound := t &^ 1
		var r uint64
		if bound > 0 {
			r = rng.Uint64n(bound)
		}
		return token.New(token.Query, r, t)
	}

	// inDist forces the sampled position odd ("to" slots); outDist
	// forces it even ("from" slots) — see ModelBBCR.hpp's rand_token
	// parity fixups.
	inDist := func() (token.Token, error) {
		tok, err := distTok(cfg.DegreeOffsetIn)
		if err == nil && tok.IsQuery() {
			tok, err = token.New(token.Query, tok.Idx|1, tok.Value)
		}
		return tok, err
	}
	outDist := func() (token.Token, error) {
		tok, err := distTok(cfg.DegreeOffsetOut)
		if err == nil && tok.IsQuery() {
			tok, err = token.New(token.Query, tok.Idx&^1, tok.Value)
		}
		return tok, err
	}

	for t < end {
		u := rng.Float64()
		switch {
		case u < cfg.Alpha:
			if err := push(token.New(token.Link, t, v)); err != nil {
				return err
			}
			t++
			if err := push(inDist()); err != nil {
				return err
			}
			t++
			v++
		case u < cfg.Alpha+cfg.Beta:
			if err := push(outDist()); err != nil {
				return err
			}
			t++
			if err := push(inDist()); err != nil {
				return err
			}
			t++
		default:
			if err := push(outDist()); err != nil {
				return err
			}
			t++
			if err := push(token.New(token.Link, t, v)); err != nil {
				return err
			}
			t++
			v++
		}
	}
	return nil
}
