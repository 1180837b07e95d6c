// Package config merges defaults, an optional config file, XXD_* environment
// variables, flags and positional key=value arguments into one Config.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/kirinokirino/xxd/pkg/hexview"
)

const (
	KeyMode     = "mode"
	KeyInput    = "input"
	KeyLogLevel = "log_level"
	KeyColor    = "color"

	DefaultMode     = "graphical"
	DefaultLogLevel = "info"
	DefaultColor    = "auto"

	envPrefix  = "xxd"
	configName = "xxd"
)

const Usage = `usage: xxd [flags] <path> [key=value ...]

Dump a file as hex, or turn a hex dump back into bytes.

keys (flag, XXD_<KEY> env var, config file or key=value argument):
  mode       graphical | hex | reverse     (default graphical)
  input      path to read, overrides <path>
  log_level  debug | info | warn | error   (default info)
  color      auto | always | never         (default auto, graphical mode only)

flags:
  -c, --config <file>   read settings from file (default ./xxd.{yaml,toml,json} if present)
  -m, --mode <mode>
  -i, --input <path>
      --log-level <lvl>
      --color <when>
  -h, --help
`

var (
	// ErrUsage asks the caller to print Usage.
	ErrUsage = errors.New("usage requested")
	// ErrInvalid wraps every configuration error.
	ErrInvalid      = errors.New("invalid configuration")
	ErrMissingInput = errors.New("missing input path")
)

var knownKeys = []string{KeyMode, KeyInput, KeyLogLevel, KeyColor}

// isTerminal reports whether stdout is a terminal; replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Config is the finished configuration handed to the dump engine.
type Config struct {
	Mode     hexview.Mode
	Input    string
	LogLevel slog.Level
	Color    bool

	// config file that was read, empty if none
	File string
}

// Load builds a Config from command line arguments (without the program
// name). Precedence: defaults < config file < environment < flags <
// positional key=value.
func Load(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, ErrUsage
	}

	fs := pflag.NewFlagSet("xxd", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configFile := fs.StringP("config", "c", "", "config file")
	fs.StringP("mode", "m", DefaultMode, "output mode")
	fs.StringP("input", "i", "", "input path")
	fs.String("log-level", DefaultLogLevel, "log level")
	fs.String("color", DefaultColor, "colour output")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrUsage
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	v := viper.New()
	v.SetDefault(KeyMode, DefaultMode)
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyColor, DefaultColor)

	if err := readConfigFile(v, *configFile); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		KeyMode:     "mode",
		KeyInput:    "input",
		KeyLogLevel: "log-level",
		KeyColor:    "color",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	path, err := applyPositional(v, fs.Args())
	if err != nil {
		return nil, err
	}

	return build(v, path)
}

func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w: read config %s: %w", ErrInvalid, file, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: read config: %w", ErrInvalid, err)
	}
	return nil
}

// applyPositional sets key=value arguments on v and returns the input path,
// which is the only other positional argument allowed. An argument is a
// setting only when the part before '=' is a known key, so paths that
// contain '=' still work.
func applyPositional(v *viper.Viper, args []string) (string, error) {
	var path string
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if ok && isKnownKey(key) {
			v.Set(key, value)
			continue
		}

		if path != "" {
			return "", fmt.Errorf("%w: unexpected argument %q", ErrInvalid, arg)
		}
		path = arg
	}
	return path, nil
}

func build(v *viper.Viper, path string) (*Config, error) {
	mode, err := hexview.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	level, err := ParseLogLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	colored, err := resolveColor(v.GetString(KeyColor))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	// input key wins over the positional path
	input := v.GetString(KeyInput)
	if input == "" {
		input = path
	}
	if input == "" {
		return nil, ErrMissingInput
	}

	return &Config{
		Mode:     mode,
		Input:    input,
		LogLevel: level,
		Color:    colored && mode == hexview.Graphical,
		File:     v.ConfigFileUsed(),
	}, nil
}

// ParseLogLevel accepts debug, info, warn (or warning) and error, in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level %q (want debug, info, warn or error)", s)
	}
	return level, nil
}

func resolveColor(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return isTerminal(), nil
	}
	return false, fmt.Errorf("color %q (want auto, always or never)", s)
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}
