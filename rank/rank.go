// Package rank implements the static move ranker used to label training
// samples. Every legal (piece, position) pair for the current queue is
// scored by a set of equity calculators, and the top few make it into the
// sample.
package rank

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/hexgen/engine"
	"github.com/domino14/hexgen/hexes"
	"github.com/domino14/hexgen/move"
)

// DefaultSignificant is how many choices a ranker keeps when the caller
// doesn't say otherwise.
const DefaultSignificant = 9

// A Calculator computes one additive component of a placement's equity.
type Calculator interface {
	Equity(b engine.Board, pos hexes.Hex, p engine.Piece) float64
}

// DenseIndexCalculator scores a placement by the board's dense index,
// which rewards keeping the filled region compact.
type DenseIndexCalculator struct{}

func (c DenseIndexCalculator) Equity(b engine.Board, pos hexes.Hex, p engine.Piece) float64 {
	return b.DenseIndex(pos, p)
}

// PieceSizeCalculator weights larger pieces more heavily; getting a big
// piece down successfully is worth more than placing a small one.
type PieceSizeCalculator struct{}

func (c PieceSizeCalculator) Equity(b engine.Board, pos hexes.Hex, p engine.Piece) float64 {
	return float64(p.Len())
}

// ClearBonusCalculator plays the placement out on a throwaway copy of the
// board and rewards it by the number of cells a line clear would free,
// normalized by the board radius so the bonus stays comparable across
// board sizes.
type ClearBonusCalculator struct{}

func (c ClearBonusCalculator) Equity(b engine.Board, pos hexes.Hex, p engine.Piece) float64 {
	cp := b.Copy()
	cp.Apply(pos, p)
	return float64(len(cp.ClearLines())) / float64(b.Radius())
}

// A Ranker scores all legal placements for a board and queue and keeps
// the best few. It never mutates the board or queue it is given; any
// look-ahead happens on disposable copies.
type Ranker struct {
	calculators []Calculator
	significant int
}

// NewRanker makes a ranker with the standard calculator set, keeping at
// most significant choices per call.
func NewRanker(significant int) *Ranker {
	return &Ranker{
		calculators: []Calculator{
			DenseIndexCalculator{},
			PieceSizeCalculator{},
			ClearBonusCalculator{},
		},
		significant: significant,
	}
}

// Rank scores every legal (piece, position) pair for the queue and
// returns at most the ranker's significant count of choices, best equity
// first. The sort is stable, so ties keep generation order. Only the
// first queue occurrence of each distinct shape is evaluated; a duplicate
// shape in a later slot yields the same legal positions and the same
// scores, so evaluating it again would only burn time. Returned indexes
// always point into the caller's queue. An empty queue, a queue with no
// legal placements, or a nonpositive significant count all yield an empty
// list; there are no error cases.
func (r *Ranker) Rank(b engine.Board, queue []engine.Piece) []*move.Choice {
	options := []*move.Choice{}
	seen := map[int]bool{}
	for idx, p := range queue {
		if seen[p.Encoding()] {
			continue
		}
		seen[p.Encoding()] = true
		for _, pos := range b.LegalPositions(p) {
			ch := move.NewChoice(idx, pos)
			ch.SetEquity(lo.SumBy(r.calculators, func(c Calculator) float64 {
				return c.Equity(b, pos, p)
			}))
			options = append(options, ch)
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Equity() > options[j].Equity()
	})
	ct := r.significant
	if ct > len(options) {
		ct = len(options)
	}
	if ct < 0 {
		ct = 0
	}
	return options[:ct]
}
