// Package config loads tool settings from flags, environment variables and
// an optional .env file. Flags win over the environment, the environment
// wins over defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultMinConfidence = 0.5

// Settings is the validated configuration for one run.
type Settings struct {
	// MinConfidence suppresses annotations whose inferred confidence falls
	// below it. Must be in [0, 1].
	MinConfidence float64

	// OutDir receives generated .ts files. Empty means next to each input.
	OutDir string

	// Debug dumps the parsed syntax tree before emitting.
	Debug bool
}

// Load parses args (flags plus positional file names) and returns the
// settings and the remaining positional arguments.
func Load(args []string) (*Settings, []string, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	envMin, err := envFloat("JS2TS_MIN_CONFIDENCE", defaultMinConfidence)
	if err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("js2ts", flag.ContinueOnError)
	minConfidence := fs.Float64("min-confidence", envMin,
		"suppress annotations below this confidence (0 to 1)")
	outDir := fs.String("out", os.Getenv("JS2TS_OUT_DIR"),
		"directory for generated .ts files (default: next to each input)")
	debug := fs.Bool("debug", envBool("JS2TS_DEBUG"),
		"dump the parsed syntax tree before emitting")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	s := &Settings{
		MinConfidence: *minConfidence,
		OutDir:        *outDir,
		Debug:         *debug,
	}
	if err := s.validate(); err != nil {
		return nil, nil, err
	}
	return s, fs.Args(), nil
}

func (s *Settings) validate() error {
	if s.MinConfidence < 0 || s.MinConfidence > 1 {
		return fmt.Errorf("min-confidence must be in [0, 1], got %g", s.MinConfidence)
	}
	return nil
}

func envFloat(name string, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, raw)
	}
	return v, nil
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
