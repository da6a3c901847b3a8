// SPDX-License-Identifier: MIT

package game

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/rref/generator"
)

// Option configures a Session before the first puzzle is generated.
type Option func(*sessionConfig)

type sessionConfig struct {
	gen     *generator.Generator
	genOpts []generator.Option
	logger  *slog.Logger
}

// WithGenerator uses g for every puzzle. Panics on nil.
func WithGenerator(g *generator.Generator) Option {
	if g == nil {
		panic("game: WithGenerator(nil)")
	}
	return func(c *sessionConfig) {
		c.gen = g
	}
}

// WithGeneratorOptions builds the session's Generator from opts
// (e.g. generator.WithSeed). Ignored when WithGenerator is also given.
func WithGeneratorOptions(opts ...generator.Option) Option {
	return func(c *sessionConfig) {
		c.genOpts = append(c.genOpts, opts...)
	}
}

// WithSeed is shorthand for WithGeneratorOptions(generator.WithSeed(seed)).
// A zero seed means "seed from the clock".
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return WithGeneratorOptions(generator.WithSeed(seed))
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("game: WithLogger(nil)")
	}
	return func(c *sessionConfig) {
		c.logger = l
	}
}

// resolve applies opts and fills defaults: a clock-seeded generator and a discard logger.
func resolve(opts []Option) (sessionConfig, error) {
	var cfg sessionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.gen == nil {
		genOpts := cfg.genOpts
		if len(genOpts) == 0 {
			genOpts = []generator.Option{generator.WithSeed(time.Now().UnixNano())}
		}
		g, err := generator.New(genOpts...)
		if err != nil {
			return sessionConfig{}, err
		}
		cfg.gen = g
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg.logger = cfg.logger.With(slog.String("component", "game"))

	return cfg, nil
}
