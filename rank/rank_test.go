package rank

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/hexgen/engine"
	"github.com/domino14/hexgen/hexes"
	"github.com/domino14/hexgen/testcommon"
)

func emptyBoard() *testcommon.FakeBoard {
	// 7 cells, canonical order:
	// (0,0) (0,1) (1,0) (1,1) (1,2) (2,1) (2,2)
	return testcommon.NewFakeBoard(2, testcommon.DiscCells(2))
}

func TestRankOrdersByEquity(t *testing.T) {
	is := is.New(t)

	b := emptyBoard()
	p := testcommon.NewFakePiece(1, 1)
	b.Dense[testcommon.PlacementKey{Pos: hexes.Hex{I: 1, K: 1}, Encoding: 1}] = 5
	b.Dense[testcommon.PlacementKey{Pos: hexes.Hex{I: 0, K: 0}, Encoding: 1}] = 3

	choices := NewRanker(DefaultSignificant).Rank(b, []engine.Piece{p})
	is.Equal(len(choices), 7)
	is.Equal(choices[0].Pos(), hexes.Hex{I: 1, K: 1})
	is.Equal(choices[0].Equity(), 6.0)
	is.Equal(choices[1].Pos(), hexes.Hex{I: 0, K: 0})
	is.Equal(choices[1].Equity(), 4.0)
	for i := 1; i < len(choices); i++ {
		is.True(choices[i-1].Equity() >= choices[i].Equity())
	}
}

func TestRankTiesKeepGenerationOrder(t *testing.T) {
	is := is.New(t)

	b := emptyBoard()
	p := testcommon.NewFakePiece(1, 1)

	// No scripted scores: every placement has equal equity, so the
	// choices must come back in cell-enumeration order.
	choices := NewRanker(DefaultSignificant).Rank(b, []engine.Piece{p})
	is.Equal(len(choices), 7)
	for i, pos := range testcommon.DiscCells(2) {
		is.Equal(choices[i].Pos(), pos)
	}
}

func TestRankDeduplicatesByShape(t *testing.T) {
	is := is.New(t)

	b := emptyBoard()
	b.Occupy(testcommon.DiscCells(2)[2:]...)
	queue := []engine.Piece{
		testcommon.NewFakePiece(7, 1),
		testcommon.NewFakePiece(7, 1), // same shape, must be skipped
		testcommon.NewFakePiece(3, 1),
	}

	choices := NewRanker(DefaultSignificant).Rank(b, queue)
	is.Equal(len(choices), 4) // 2 open cells for each of 2 distinct shapes
	for _, c := range choices {
		is.True(c.Index() != 1)
	}
}

func TestRankClearBonus(t *testing.T) {
	is := is.New(t)

	b := emptyBoard()
	cells := testcommon.DiscCells(2)
	open := hexes.Hex{I: 1, K: 1}
	for _, c := range cells {
		if c != open {
			b.Occupy(c)
		}
	}
	p := testcommon.NewFakePiece(4, 2)
	b.Clears[testcommon.PlacementKey{Pos: open, Encoding: 4}] = []hexes.Hex{
		{I: 1, K: 0}, {I: 1, K: 1}, {I: 1, K: 2},
	}
	before := b.Occupancy()

	choices := NewRanker(DefaultSignificant).Rank(b, []engine.Piece{p})
	is.Equal(len(choices), 1)
	// dense 0 + piece size 2 + 3 cleared cells / radius 2
	is.Equal(choices[0].Equity(), 3.5)
	// look-ahead must happen on a copy, never on the caller's board
	is.Equal(b.Occupancy(), before)
}

func TestRankEmptyQueue(t *testing.T) {
	is := is.New(t)
	choices := NewRanker(DefaultSignificant).Rank(emptyBoard(), nil)
	is.Equal(len(choices), 0)
}

func TestRankNoLegalPositions(t *testing.T) {
	is := is.New(t)
	b := emptyBoard()
	b.Occupy(testcommon.DiscCells(2)...)
	choices := NewRanker(DefaultSignificant).Rank(b, []engine.Piece{testcommon.NewFakePiece(1, 1)})
	is.Equal(len(choices), 0)
}

func TestRankZeroSignificant(t *testing.T) {
	is := is.New(t)
	choices := NewRanker(0).Rank(emptyBoard(), []engine.Piece{testcommon.NewFakePiece(1, 1)})
	is.Equal(len(choices), 0)
}

func TestRankTruncates(t *testing.T) {
	is := is.New(t)
	choices := NewRanker(3).Rank(emptyBoard(), []engine.Piece{testcommon.NewFakePiece(1, 1)})
	is.Equal(len(choices), 3)
}

func TestRankIsDeterministic(t *testing.T) {
	is := is.New(t)

	b := emptyBoard()
	b.Dense[testcommon.PlacementKey{Pos: hexes.Hex{I: 2, K: 2}, Encoding: 9}] = 2.5
	queue := []engine.Piece{
		testcommon.NewFakePiece(9, 1),
		testcommon.NewFakePiece(2, 3),
	}
	r := NewRanker(5)

	first := r.Rank(b, queue)
	second := r.Rank(b, queue)
	is.Equal(first, second)
}
