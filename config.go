package warp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the bounds and logging settings of a session.
type Config struct {
	// IterationLimit is the maximum number of rewrite steps per evaluation.
	IterationLimit int `yaml:"iterationLimit"`
	// RecursionLimit is the maximum nesting depth of subexpression
	// evaluation.
	RecursionLimit int `yaml:"recursionLimit"`
	// Timeout bounds the wall-clock time of an evaluation. Zero means no
	// limit.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel"`
}

func DefaultConfig() Config {
	return Config{
		IterationLimit: 4096,
		RecursionLimit: 256,
		LogLevel:       "warn",
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch {
	case c.IterationLimit <= 0:
		return fmt.Errorf("iterationLimit must be positive, not %d", c.IterationLimit)
	case c.RecursionLimit <= 0:
		return fmt.Errorf("recursionLimit must be positive, not %d", c.RecursionLimit)
	case c.Timeout < 0:
		return fmt.Errorf("timeout must not be negative, not %v", c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// Option configures a Session.
type Option func(s *Session)

// WithConfig sets the session's bounds.
func WithConfig(c Config) Option {
	return func(s *Session) {
		s.config = c
	}
}

// WithLogger sets the session's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithSink sets the sink that receives every message emitted by the session,
// in addition to the messages recorded in each Result.
func WithSink(sink MessageSink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithMatcher replaces the structural matcher used by dispatch.
func WithMatcher(m Matcher) Option {
	return func(s *Session) {
		s.matcher = m
	}
}
