// Package engine declares the contract between hexgen and the puzzle's
// board engine. The engine is an external collaborator; hexgen only ever
// sees these interfaces, which also keeps the ranker testable against a
// scripted fake board.
package engine

import "github.com/domino14/hexgen/hexes"

// A Piece is an opaque shape descriptor. Two pieces with equal Encoding
// are the same shape; the ranker relies on this for deduplication.
type Piece interface {
	// Encoding is the canonical compact integer form of the shape.
	Encoding() int
	// Len is the number of cells the piece occupies.
	Len() int
}

// A Board is one puzzle position on a hexagonal grid of fixed radius.
// Radius never changes for the lifetime of a board and is at least 1;
// enforcing that is the engine's job, not ours.
type Board interface {
	// LegalPositions enumerates every cell where p could legally go.
	LegalPositions(p Piece) []hexes.Hex
	// DenseIndex scores a hypothetical placement of p at pos, rewarding
	// placements that keep the filled region compact.
	DenseIndex(pos hexes.Hex, p Piece) float64
	// Copy returns an independent board sharing nothing with the receiver.
	Copy() Board
	// Apply places p at pos, reporting whether the placement was legal.
	Apply(pos hexes.Hex, p Piece) bool
	// ClearLines removes any completed lines, returning the cleared cells.
	ClearLines() []hexes.Hex
	Radius() int
	// Occupancy renders the board as a '0'/'1' string, one character per
	// cell in canonical cell order.
	Occupancy() string
}

// A Game drives one full puzzle game: a board plus a refilling queue of
// placeable pieces.
type Game interface {
	Board() Board
	Queue() []Piece
	// ApplyMove places the piece at the given queue index and advances
	// the game, reporting whether the move was legal.
	ApplyMove(queueIdx int, pos hexes.Hex) bool
	// Playing is false once the game has reached a terminal state.
	Playing() bool
	// Result returns the number of turns played and the final score.
	Result() (turns int, score int)
}
