// Package simulation runs competitive market scenarios: price wars,
// new-product launches and promotions. Each scenario is a deterministic
// fold over discrete steps given the engine's random source.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/creasty/defaults"
	"github.com/rs/zerolog"

	"market-intel/internal/competitor"
	"market-intel/internal/model"
)

// Engine is not safe for concurrent use: its random source is shared by
// every run. Build one per goroutine.
type Engine struct {
	rng competitor.Rand
	log zerolog.Logger
}

// New returns an engine drawing competitor jitter from rng.
func New(rng competitor.Rand) *Engine {
	return &Engine{rng: rng, log: zerolog.Nop()}
}

// NewSeeded returns an engine with a PCG source; equal seeds give equal runs.
func NewSeeded(seed uint64) *Engine {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger returns a copy of the engine that logs through l.
func (e *Engine) WithLogger(l zerolog.Logger) *Engine {
	return &Engine{rng: e.rng, log: l}
}

var errNilRand = errors.New("random source is nil")

// prepare fills defaults and checks validate tags on a params struct.
func prepare(params any) error {
	if err := defaults.Set(params); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}
	return model.Validate(params)
}

// roundHalfUp rounds .5 towards +Inf, so -2.5 rounds to -2.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
