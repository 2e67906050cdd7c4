// Package move defines the ranked-choice type emitted by the ranker.
package move

import (
	"fmt"

	"github.com/domino14/hexgen/hexes"
)

// A Choice pairs a piece-queue index with a target cell. The index always
// refers to the queue that was handed to the ranker, even when duplicate
// shapes were skipped during evaluation. It can have an equity assigned
// to it by the ranker's calculators.
type Choice struct {
	index  int
	pos    hexes.Hex
	equity float64
}

func NewChoice(index int, pos hexes.Hex) *Choice {
	return &Choice{index: index, pos: pos}
}

// Index is the position in the piece queue of the piece to place.
func (c *Choice) Index() int {
	return c.index
}

// Pos is the target cell for the placement.
func (c *Choice) Pos() hexes.Hex {
	return c.pos
}

// Equity is the estimated quality of this choice.
func (c *Choice) Equity() float64 {
	return c.equity
}

// SetEquity sets the equity of this choice. It is calculated outside this
// package.
func (c *Choice) SetEquity(e float64) {
	c.equity = e
}

func (c *Choice) String() string {
	return fmt.Sprintf("%d@%s", c.index, c.pos)
}
