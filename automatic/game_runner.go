// Package automatic contains all the logic for playing out full puzzle
// games automatically and recording the decision points along the way as
// training samples.
package automatic

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/hexgen/config"
	"github.com/domino14/hexgen/dataset"
	"github.com/domino14/hexgen/engine"
	"github.com/domino14/hexgen/rank"
)

// A GameFactory creates a fresh game: an empty board of the given radius
// and a refilling queue of the given size. The engine is injected here;
// hexgen never constructs games itself.
type GameFactory func(radius, queueSize int) engine.Game

// GameRunner is the master struct for the automatic game logic. Games run
// strictly one after the other; each game owns an independent board and
// queue and nothing is shared between them.
type GameRunner struct {
	cfg     config.Config
	newGame GameFactory
	ranker  *rank.Ranker

	radius      int
	queueSize   int
	moveDropout float64

	// logw, when set, receives one CSV telemetry line per move played.
	logw        io.Writer
	gamesPlayed int
}

// NewGameRunner just instantiates and initializes a game runner.
func NewGameRunner(logw io.Writer, cfg config.Config, newGame GameFactory) *GameRunner {
	return &GameRunner{
		cfg:         cfg,
		newGame:     newGame,
		ranker:      rank.NewRanker(cfg.GetInt(config.KeySignificantChoices)),
		radius:      cfg.GetInt(config.KeyRadius),
		queueSize:   cfg.GetInt(config.KeyQueueSize),
		moveDropout: cfg.GetFloat64(config.KeyMoveDropout),
		logw:        logw,
	}
}

// playFullGame plays a single game to completion and returns the samples
// it recorded. A game ends when the engine says so, when the ranker comes
// up empty, or when the chosen move is rejected; the latter two are
// normal terminations, not errors. Each recorded sample snapshots the
// board and queue from before the move, so the game mutating them
// afterwards can't reach into the dataset.
func (r *GameRunner) playFullGame() ([]dataset.Sample, engine.Game) {
	g := r.newGame(r.radius, r.queueSize)
	r.gamesPlayed++
	samples := []dataset.Sample{}
	turn := 0
	for g.Playing() {
		choices := r.ranker.Rank(g.Board(), g.Queue())
		if len(choices) == 0 {
			break
		}
		best := choices[0]
		boardCopy := g.Board().Copy()
		queueCopy := append([]engine.Piece{}, g.Queue()...)
		if !g.ApplyMove(best.Index(), best.Pos()) {
			break
		}
		turn++
		if r.logw != nil {
			fmt.Fprintf(r.logw, "%v,%v,%v,%v,%.3f\n",
				r.gamesPlayed, turn, best.Index(), best.Pos(), best.Equity())
		}
		if frand.Float64() > r.moveDropout {
			samples = append(samples, dataset.Sample{
				Board:   boardCopy,
				Queue:   queueCopy,
				Choices: choices,
			})
		}
	}
	return samples, g
}

// GenerateTrainingData plays games until numSamples samples have been
// collected, trimming the head and tail of each game's samples per the
// configured fractions and truncating any overshoot. Note that dropout
// and trim fractions are taken as given; values that drop every sample of
// every game will keep this loop going indefinitely.
func (r *GameRunner) GenerateTrainingData(numSamples int) []dataset.Sample {
	removeHead := r.cfg.GetFloat64(config.KeyRemoveHead)
	removeTail := r.cfg.GetFloat64(config.KeyRemoveTail)

	data := []dataset.Sample{}
	for len(data) < numSamples {
		samples, g := r.playFullGame()
		data = append(data, dataset.Trim(samples, removeHead, removeTail)...)
		turns, score := g.Result()
		pct := 100 * float64(len(data)) / float64(numSamples)
		if pct > 100 {
			pct = 100
		}
		log.Debug().Int("game", r.gamesPlayed).Int("turns", turns).Int("score", score).
			Str("complete", fmt.Sprintf("%.2f%%", pct)).Msg("game over")
	}
	if len(data) > numSamples {
		data = data[:numSamples]
	}
	log.Info().Int("samples", len(data)).Int("games", r.gamesPlayed).Msg("finished generating")
	return data
}
