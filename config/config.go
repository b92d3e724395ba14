package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/ykhdr/dict-crack/common/config"
)

const DefaultThreads = 4

var ErrUsage = errors.New("expected <hash> <wordlist> [threads]")

type CrackConfig struct {
	LogLevel         string        `kdl:"log-level"`
	Threads          int           `kdl:"threads"`
	ProgressInterval time.Duration `kdl:"progress-interval"`
	Algorithm        string        `kdl:"algorithm"`
	NoFormatting     bool          `kdl:"no-formatting"`
	Quiet            bool          `kdl:"quiet"`

	Hash         string
	WordlistPath string
	ConfigPath   string
	Help         bool
}

func (c *CrackConfig) GetLogLevel() string {
	return c.LogLevel
}

func DefaultConfig() *CrackConfig {
	return &CrackConfig{
		LogLevel:         "info",
		Threads:          DefaultThreads,
		ProgressInterval: 5 * time.Second,
	}
}

type flagValues struct {
	help         *bool
	algorithm    *string
	configPath   *string
	logLevel     *string
	progress     *time.Duration
	noFormatting *bool
	quiet        *bool
}

func newFlagSet() (*pflag.FlagSet, *flagValues) {
	fs := pflag.NewFlagSet("dictcrack", pflag.ContinueOnError)
	fs.SortFlags = false
	// Flags end at the first positional, so a negative thread count is not
	// taken for a shorthand.
	fs.SetInterspersed(false)
	fs.Usage = func() {}
	v := &flagValues{
		help:         fs.BoolP("help", "h", false, "prints this help menu"),
		algorithm:    fs.StringP("algorithm", "a", "", "forces a hash algorithm instead of detecting it from the hash length"),
		configPath:   fs.StringP("config", "c", "", "reads defaults from a KDL config file"),
		logLevel:     fs.StringP("log-level", "l", "", "sets the log level (debug, info, warn, error)"),
		progress:     fs.DurationP("progress", "p", 0, "logs progress at this interval, 0 disables"),
		noFormatting: fs.Bool("no-formatting", false, "prints the report without formatting codes"),
		quiet:        fs.BoolP("quiet", "q", false, "prints ONLY the cracked word or breaking errors"),
	}
	return fs, v
}

// FlagUsages renders the flag help block.
func FlagUsages() string {
	fs, _ := newFlagSet()
	return fs.FlagUsages()
}

// InitializeConfig parses command-line arguments, merges them over the
// optional config file and the defaults, and sets up the global logger.
// Precedence is flags, then file, then defaults.
func InitializeConfig(args []string) (*CrackConfig, error) {
	fs, v := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(ErrUsage, err.Error())
	}
	if *v.help {
		return &CrackConfig{Help: true}, nil
	}
	if fs.NArg() < 2 {
		return nil, errors.Wrapf(ErrUsage, "got %d argument(s)", fs.NArg())
	}

	cfg, err := config.InitializeConfig[CrackConfig](*v.configPath, *DefaultConfig(), func(c *CrackConfig) {
		c.ConfigPath = *v.configPath
		c.Hash = strings.ToLower(strings.TrimSpace(fs.Arg(0)))
		c.WordlistPath = fs.Arg(1)
		if fs.Changed("algorithm") {
			c.Algorithm = *v.algorithm
		}
		if fs.Changed("log-level") {
			c.LogLevel = *v.logLevel
		}
		if fs.Changed("progress") {
			c.ProgressInterval = *v.progress
		}
		if fs.Changed("no-formatting") {
			c.NoFormatting = *v.noFormatting
		}
		if fs.Changed("quiet") {
			c.Quiet = *v.quiet
		}
		if c.Threads < 1 {
			c.Threads = DefaultThreads
		}
		if fs.NArg() > 2 {
			c.Threads = parseThreads(fs.Arg(2), c.Threads)
		}
		if c.Quiet {
			c.LogLevel = "error"
			c.NoFormatting = true
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", *v.configPath)
	}
	return cfg, nil
}

// parseThreads falls back to def unless s is a positive integer.
func parseThreads(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
