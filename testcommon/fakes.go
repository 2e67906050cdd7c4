// Package testcommon provides a scripted fake of the puzzle engine for
// package tests. Legal positions come from the empty cells of a small hex
// disc; dense indexes and line-clear yields are looked up from tables
// keyed by placement, so tests can dictate every score exactly.
package testcommon

import (
	"fmt"
	"strings"

	"github.com/domino14/hexgen/engine"
	"github.com/domino14/hexgen/hexes"
)

// FakePiece is a shape with a fixed canonical encoding and cell count.
type FakePiece struct {
	encoding int
	size     int
}

func NewFakePiece(encoding, size int) FakePiece {
	return FakePiece{encoding: encoding, size: size}
}

func (p FakePiece) Encoding() int {
	return p.encoding
}

func (p FakePiece) Len() int {
	return p.size
}

// A PlacementKey identifies one (position, shape) placement in the score
// and clear tables.
type PlacementKey struct {
	Pos      hexes.Hex
	Encoding int
}

// FakeBoard implements engine.Board over an explicit cell list. Every
// piece occupies a single cell as far as legality is concerned; Dense and
// Clears script the dense index and line-clear outcome per placement.
// The script tables are shared between copies and must not be mutated
// once play begins.
type FakeBoard struct {
	radius   int
	cells    []hexes.Hex
	occupied map[hexes.Hex]bool

	Dense  map[PlacementKey]float64
	Clears map[PlacementKey][]hexes.Hex

	lastApplied PlacementKey
}

// NewFakeBoard makes an empty board over the given cells in canonical
// order. DiscCells produces a standard cell list for a given radius.
func NewFakeBoard(radius int, cells []hexes.Hex) *FakeBoard {
	return &FakeBoard{
		radius:   radius,
		cells:    cells,
		occupied: map[hexes.Hex]bool{},
		Dense:    map[PlacementKey]float64{},
		Clears:   map[PlacementKey][]hexes.Hex{},
	}
}

// NewFakeBoardFromOccupancy rebuilds a board from its serialized
// occupancy string. The cell list must match the one the board was
// serialized with.
func NewFakeBoardFromOccupancy(radius int, cells []hexes.Hex, occupancy string) (*FakeBoard, error) {
	if len(occupancy) != len(cells) {
		return nil, fmt.Errorf("occupancy has %d cells, board has %d", len(occupancy), len(cells))
	}
	b := NewFakeBoard(radius, cells)
	for i, c := range occupancy {
		switch c {
		case '1':
			b.occupied[cells[i]] = true
		case '0':
		default:
			return nil, fmt.Errorf("bad occupancy character %q", c)
		}
	}
	return b, nil
}

// DiscCells enumerates the cells of a hexagonal disc of the given radius
// in canonical row order: rows of length radius up to 2*radius-1 and back.
func DiscCells(radius int) []hexes.Hex {
	cells := []hexes.Hex{}
	for i := 0; i <= 2*(radius-1); i++ {
		klo := 0
		if i > radius-1 {
			klo = i - (radius - 1)
		}
		khi := 2 * (radius - 1)
		if i < radius-1 {
			khi = i + (radius - 1)
		}
		for k := klo; k <= khi; k++ {
			cells = append(cells, hexes.Hex{I: i, K: k})
		}
	}
	return cells
}

func (b *FakeBoard) LegalPositions(p engine.Piece) []hexes.Hex {
	positions := []hexes.Hex{}
	for _, c := range b.cells {
		if !b.occupied[c] {
			positions = append(positions, c)
		}
	}
	return positions
}

func (b *FakeBoard) DenseIndex(pos hexes.Hex, p engine.Piece) float64 {
	return b.Dense[PlacementKey{Pos: pos, Encoding: p.Encoding()}]
}

func (b *FakeBoard) Copy() engine.Board {
	occupied := make(map[hexes.Hex]bool, len(b.occupied))
	for c, v := range b.occupied {
		occupied[c] = v
	}
	return &FakeBoard{
		radius:      b.radius,
		cells:       b.cells,
		occupied:    occupied,
		Dense:       b.Dense,
		Clears:      b.Clears,
		lastApplied: b.lastApplied,
	}
}

func (b *FakeBoard) Apply(pos hexes.Hex, p engine.Piece) bool {
	if b.occupied[pos] {
		return false
	}
	legal := false
	for _, c := range b.cells {
		if c == pos {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}
	b.occupied[pos] = true
	b.lastApplied = PlacementKey{Pos: pos, Encoding: p.Encoding()}
	return true
}

func (b *FakeBoard) ClearLines() []hexes.Hex {
	cleared := b.Clears[b.lastApplied]
	for _, c := range cleared {
		delete(b.occupied, c)
	}
	b.lastApplied = PlacementKey{}
	return cleared
}

func (b *FakeBoard) Radius() int {
	return b.radius
}

func (b *FakeBoard) Occupancy() string {
	var sb strings.Builder
	for _, c := range b.cells {
		if b.occupied[c] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Occupy marks cells as filled, for setting up positions in tests.
func (b *FakeBoard) Occupy(cells ...hexes.Hex) {
	for _, c := range cells {
		b.occupied[c] = true
	}
}

// FakeGame drives a FakeBoard with a fixed queue that never depletes. The
// game is over when no queued piece has a legal position left.
type FakeGame struct {
	board *FakeBoard
	queue []engine.Piece
	turns int
	score int
}

func NewFakeGame(board *FakeBoard, queue []engine.Piece) *FakeGame {
	return &FakeGame{board: board, queue: queue}
}

func (g *FakeGame) Board() engine.Board {
	return g.board
}

func (g *FakeGame) Queue() []engine.Piece {
	return g.queue
}

func (g *FakeGame) ApplyMove(queueIdx int, pos hexes.Hex) bool {
	if queueIdx < 0 || queueIdx >= len(g.queue) {
		return false
	}
	p := g.queue[queueIdx]
	if !g.board.Apply(pos, p) {
		return false
	}
	cleared := g.board.ClearLines()
	g.turns++
	g.score += p.Len() + len(cleared)
	return true
}

func (g *FakeGame) Playing() bool {
	for _, p := range g.queue {
		if len(g.board.LegalPositions(p)) > 0 {
			return true
		}
	}
	return false
}

func (g *FakeGame) Result() (int, int) {
	return g.turns, g.score
}
