// hexinspect summarizes a generated dataset file: record counts, queue
// and choice shapes, and a board fill-rate histogram. It works at the
// text level, so it needs no engine linked in.
package main

import (
	"fmt"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/hexgen/config"
	"github.com/domino14/hexgen/dataset"
)

func main() {
	cfg := config.DefaultConfig()
	args := os.Args[1:]
	if err := cfg.Load(args); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	if cfg.GetBool(config.KeyDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Msgf("Loaded config: %v", cfg.AllSettings())

	filename := cfg.GetString(config.KeyDataset)
	records := dataset.LoadRecords(filename)
	if len(records) == 0 {
		log.Warn().Str("filename", filename).Msg("no records loaded")
		return
	}

	fills := make([]float64, len(records))
	queueLens := map[int]int{}
	choiceLens := map[int]int{}
	for i, r := range records {
		occupied := 0
		for _, c := range r.Occupancy {
			if c == '1' {
				occupied++
			}
		}
		if len(r.Occupancy) > 0 {
			fills[i] = float64(occupied) / float64(len(r.Occupancy))
		}
		queueLens[len(r.Queue)]++
		choiceLens[len(r.Choices)]++
	}

	fmt.Printf("%s: %d records\n", filename, len(records))
	fmt.Printf("fill rate: mean %.4f, stddev %.4f\n",
		stat.Mean(fills, nil), stat.StdDev(fills, nil))
	fmt.Printf("queue sizes: %v\n", queueLens)
	fmt.Printf("choices per record: %v\n", choiceLens)
	fmt.Println("fill-rate distribution:")
	hist := histogram.Hist(15, fills)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Err(err).Msg("could not print histogram")
	}
}
