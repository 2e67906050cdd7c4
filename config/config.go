package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys for all configurable settings.
const (
	KeyDebug              = "debug"
	KeyRadius             = "radius"
	KeyQueueSize          = "queue-size"
	KeySignificantChoices = "significant-choices"
	KeyNumSamples         = "num-samples"
	KeyRemoveHead         = "remove-head"
	KeyRemoveTail         = "remove-tail"
	KeyMoveDropout        = "move-dropout"
	KeyDataset            = "dataset"
)

// Config provides typed access to all hexgen settings. Precedence, most
// binding first: command-line flags, environment variables with a HEXGEN_
// prefix, defaults.
type Config struct {
	v *viper.Viper
}

// DefaultConfig returns a config with every setting at its default.
func DefaultConfig() Config {
	v := viper.New()
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyRadius, 5)
	v.SetDefault(KeyQueueSize, 3)
	v.SetDefault(KeySignificantChoices, 7)
	v.SetDefault(KeyNumSamples, 10000)
	v.SetDefault(KeyRemoveHead, 0.0)
	v.SetDefault(KeyRemoveTail, 0.05)
	v.SetDefault(KeyMoveDropout, 0.05)
	v.SetDefault(KeyDataset, "dataset.txt")
	v.SetEnvPrefix("hexgen")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return Config{v: v}
}

// Load parses command-line arguments into the config.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		*c = DefaultConfig()
	}
	fs := pflag.NewFlagSet("hexgen", pflag.ContinueOnError)
	fs.Bool(KeyDebug, false, "debug logging on")
	fs.Int(KeyRadius, 5, "radius of the hex board")
	fs.Int(KeyQueueSize, 3, "number of pieces in the placement queue")
	fs.Int(KeySignificantChoices, 7, "ranked choices to record per sample")
	fs.Int(KeyNumSamples, 10000, "number of samples to generate")
	fs.Float64(KeyRemoveHead, 0.0, "fraction of early-game samples to drop")
	fs.Float64(KeyRemoveTail, 0.05, "fraction of late-game samples to drop")
	fs.Float64(KeyMoveDropout, 0.05, "probability of not recording a move")
	fs.String(KeyDataset, "dataset.txt", "dataset file path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.v.BindPFlags(fs)
}

// Set overrides a single setting; mostly useful in tests.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}
