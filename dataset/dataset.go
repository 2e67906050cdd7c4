// Package dataset persists training samples in the line-oriented text
// format the model-training side consumes: one sample per line, with
// three pipe-separated fields,
//
//	occupancy | enc,enc,... | idx:i:k,idx:i:k,...
//
// Field one is the board as '0'/'1' characters in canonical cell order,
// field two the queued pieces' canonical encodings in queue order, field
// three the ranked choices in descending-quality order.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/hexgen/engine"
	"github.com/domino14/hexgen/hexes"
	"github.com/domino14/hexgen/move"
)

// A Sample is one recorded decision point: the board and queue as they
// were before the chosen move, plus the ranked choices computed for them.
// Samples are never modified once recorded.
type Sample struct {
	Board   engine.Board
	Queue   []engine.Piece
	Choices []*move.Choice
}

// A Record is the text-level form of a sample. It needs no engine to
// construct, which is what lets tooling inspect dataset files without
// linking one.
type Record struct {
	Occupancy string
	Queue     []int
	Choices   []*move.Choice
}

// A Codec reconstructs engine values from their serialized forms. The
// constructors are injected by the caller so this package never needs a
// concrete engine.
type Codec struct {
	NewBoard func(occupancy string) (engine.Board, error)
	NewPiece func(encoding int) (engine.Piece, error)
}

// RecordFromSample snapshots a sample down to its text-level form.
func RecordFromSample(s Sample) Record {
	queue := make([]int, len(s.Queue))
	for i, p := range s.Queue {
		queue[i] = p.Encoding()
	}
	return Record{Occupancy: s.Board.Occupancy(), Queue: queue, Choices: s.Choices}
}

func (r Record) line() string {
	encs := make([]string, len(r.Queue))
	for i, e := range r.Queue {
		encs[i] = strconv.Itoa(e)
	}
	results := make([]string, len(r.Choices))
	for i, c := range r.Choices {
		results[i] = fmt.Sprintf("%d:%d:%d", c.Index(), c.Pos().I, c.Pos().K)
	}
	return r.Occupancy + " | " + strings.Join(encs, ",") + " | " + strings.Join(results, ",")
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	rec := Record{Occupancy: strings.TrimSpace(fields[0])}
	for _, c := range rec.Occupancy {
		if c != '0' && c != '1' {
			return Record{}, fmt.Errorf("bad occupancy character %q", c)
		}
	}
	for _, f := range strings.Split(strings.TrimSpace(fields[1]), ",") {
		enc, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Record{}, err
		}
		rec.Queue = append(rec.Queue, enc)
	}
	for _, f := range strings.Split(strings.TrimSpace(fields[2]), ",") {
		idxstr, posstr, found := strings.Cut(strings.TrimSpace(f), ":")
		if !found {
			return Record{}, fmt.Errorf("malformed result %q", f)
		}
		idx, err := strconv.Atoi(idxstr)
		if err != nil {
			return Record{}, err
		}
		pos, err := hexes.Parse(posstr)
		if err != nil {
			return Record{}, err
		}
		rec.Choices = append(rec.Choices, move.NewChoice(idx, pos))
	}
	return rec, nil
}

func (r Record) sample(codec Codec) (Sample, error) {
	board, err := codec.NewBoard(r.Occupancy)
	if err != nil {
		return Sample{}, err
	}
	queue := make([]engine.Piece, len(r.Queue))
	for i, enc := range r.Queue {
		if queue[i], err = codec.NewPiece(enc); err != nil {
			return Sample{}, err
		}
	}
	return Sample{Board: board, Queue: queue, Choices: r.Choices}, nil
}

// Save writes samples to filename, one line per sample. It is best
// effort: I/O failures are logged and swallowed, and a partially written
// file is an accepted degraded outcome rather than a fatal error.
func Save(filename string, samples []Sample) {
	f, err := os.Create(filename)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("could not create dataset file")
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, s := range samples {
		if _, err := w.WriteString(RecordFromSample(s).line() + "\n"); err != nil {
			log.Err(err).Str("filename", filename).Msg("error writing sample")
			return
		}
	}
	if err := w.Flush(); err != nil {
		log.Err(err).Str("filename", filename).Msg("error flushing dataset file")
	}
}

// Load reads samples back from filename, reconstructing boards and pieces
// through the codec. Unparseable lines are skipped with a debug log; a
// missing or unreadable file yields an empty dataset. Failures never
// propagate past this boundary.
func Load(filename string, codec Codec) []Sample {
	samples := []Sample{}
	for lineno, rec := range LoadRecords(filename) {
		s, err := rec.sample(codec)
		if err != nil {
			log.Debug().Err(err).Int("record", lineno).Msg("skipping unreconstructable record")
			continue
		}
		samples = append(samples, s)
	}
	return samples
}

// LoadRecords reads the text-level records from filename without
// reconstructing any engine values. Same failure policy as Load.
func LoadRecords(filename string) []Record {
	records := []Record{}
	f, err := os.Open(filename)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("could not open dataset file")
		return records
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			log.Debug().Err(err).Int("line", lineno).Msg("skipping unparseable record")
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		log.Err(err).Str("filename", filename).Msg("error reading dataset file")
	}
	return records
}

// Trim drops the leading removeHead fraction and the trailing removeTail
// fraction of items, by index position. Early-game and near-terminal
// samples carry little signal, so callers trim them before accumulating.
// Degenerate fractions produce an empty slice, not a panic; lo.Slice
// clamps the bounds.
func Trim[T any](items []T, removeHead, removeTail float64) []T {
	n := float64(len(items))
	return lo.Slice(items, int(n*removeHead), int(n*(1-removeTail)))
}
