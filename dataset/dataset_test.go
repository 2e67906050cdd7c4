package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/hexgen/dataset"
	"github.com/domino14/hexgen/engine"
	"github.com/domino14/hexgen/hexes"
	"github.com/domino14/hexgen/move"
	"github.com/domino14/hexgen/testcommon"
)

var threeCells = []hexes.Hex{{I: 0, K: 0}, {I: 1, K: 0}, {I: 1, K: 1}}

func threeCellCodec() dataset.Codec {
	return dataset.Codec{
		NewBoard: func(occupancy string) (engine.Board, error) {
			return testcommon.NewFakeBoardFromOccupancy(1, threeCells, occupancy)
		},
		NewPiece: func(encoding int) (engine.Piece, error) {
			return testcommon.NewFakePiece(encoding, 1), nil
		},
	}
}

func TestRoundTrip(t *testing.T) {
	board := testcommon.NewFakeBoard(1, threeCells)
	board.Occupy(hexes.Hex{I: 1, K: 0})
	sample := dataset.Sample{
		Board: board,
		Queue: []engine.Piece{
			testcommon.NewFakePiece(5, 1),
			testcommon.NewFakePiece(9, 1),
		},
		Choices: []*move.Choice{
			move.NewChoice(0, hexes.Hex{I: 0, K: 0}),
			move.NewChoice(1, hexes.Hex{I: 1, K: 1}),
		},
	}

	filename := filepath.Join(t.TempDir(), "dataset.txt")
	dataset.Save(filename, []dataset.Sample{sample})

	loaded := dataset.Load(filename, threeCellCodec())
	require.Len(t, loaded, 1)
	assert.Equal(t, "010", loaded[0].Board.Occupancy())
	require.Len(t, loaded[0].Queue, 2)
	assert.Equal(t, 5, loaded[0].Queue[0].Encoding())
	assert.Equal(t, 9, loaded[0].Queue[1].Encoding())
	require.Len(t, loaded[0].Choices, 2)
	assert.Equal(t, 0, loaded[0].Choices[0].Index())
	assert.Equal(t, hexes.Hex{I: 0, K: 0}, loaded[0].Choices[0].Pos())
	assert.Equal(t, 1, loaded[0].Choices[1].Index())
	assert.Equal(t, hexes.Hex{I: 1, K: 1}, loaded[0].Choices[1].Pos())
}

func TestLineFormat(t *testing.T) {
	board := testcommon.NewFakeBoard(1, threeCells)
	board.Occupy(hexes.Hex{I: 0, K: 0})
	sample := dataset.Sample{
		Board:   board,
		Queue:   []engine.Piece{testcommon.NewFakePiece(12, 1)},
		Choices: []*move.Choice{move.NewChoice(0, hexes.Hex{I: 1, K: 1})},
	}

	filename := filepath.Join(t.TempDir(), "dataset.txt")
	dataset.Save(filename, []dataset.Sample{sample})

	contents, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "100 | 12 | 0:1:1\n", string(contents))
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dataset.txt")
	contents := "000 | 5 | 0:0:0\n" +
		"garbage\n" + // wrong field count
		"000 | notanumber | 0:0:0\n" +
		"000 | 5 | 0-0-0\n" + // malformed result triple
		"0z0 | 5 | 0:0:0\n" + // bad occupancy character
		"010 | 5,9 | 1:1:1,0:0:0\n"
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0644))

	records := dataset.LoadRecords(filename)
	require.Len(t, records, 2)
	assert.Equal(t, "000", records[0].Occupancy)
	assert.Equal(t, []int{5, 9}, records[1].Queue)
}

func TestLoadMissingFile(t *testing.T) {
	assert.Empty(t, dataset.Load(filepath.Join(t.TempDir(), "nope.txt"), threeCellCodec()))
	assert.Empty(t, dataset.LoadRecords(filepath.Join(t.TempDir(), "nope.txt")))
}

func TestSaveUnwritablePath(t *testing.T) {
	assert.NotPanics(t, func() {
		dataset.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "x.txt"), nil)
	})
}

func TestTrim(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	trimmed := dataset.Trim(items, 0.1, 0.05)
	require.Len(t, trimmed, 85)
	assert.Equal(t, 10, trimmed[0])
	assert.Equal(t, 94, trimmed[84])
}

func TestTrimDegenerateFractions(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Empty(t, dataset.Trim(items, 1.0, 0.0))
	assert.Empty(t, dataset.Trim(items, 0.0, 1.0))
	assert.Empty(t, dataset.Trim(items, 0.6, 0.6))
	assert.Empty(t, dataset.Trim(items, 1.5, 0.0))
	// fractions outside [0,1) on the other side just fail to trim
	assert.Equal(t, items, dataset.Trim(items, -1.0, -1.0))
	assert.Empty(t, dataset.Trim[int](nil, 0.1, 0.1))
}
