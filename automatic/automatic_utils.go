package automatic

// Orchestration for automatic data generation runs: play games, collect
// samples, write the dataset and a per-move telemetry log.

import (
	"bufio"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/domino14/hexgen/config"
	"github.com/domino14/hexgen/dataset"
)

// StartAutoplayGames generates numSamples training samples with the given
// engine factory, saving the dataset to the configured dataset file. If
// logfileName is not empty, a CSV log with one line per move played is
// written alongside it. Generation is sequential; the function returns
// once everything is on disk.
func StartAutoplayGames(cfg config.Config, newGame GameFactory, numSamples int, logfileName string) error {
	var logw *bufio.Writer
	if logfileName != "" {
		logfile, err := os.Create(logfileName)
		if err != nil {
			return err
		}
		defer logfile.Close()
		logw = bufio.NewWriter(logfile)
		defer logw.Flush()
		logw.WriteString("game,turn,index,pos,equity\n")
	}

	var r *GameRunner
	if logw != nil {
		r = NewGameRunner(logw, cfg, newGame)
	} else {
		r = NewGameRunner(nil, cfg, newGame)
	}
	data := r.GenerateTrainingData(numSamples)

	outfile := cfg.GetString(config.KeyDataset)
	dataset.Save(outfile, data)
	log.Info().Str("dataset", outfile).Int("samples", len(data)).Msg("autoplay run complete")
	return nil
}
