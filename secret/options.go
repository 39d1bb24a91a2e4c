// SPDX-License-Identifier: MIT

// Package secret: functional configuration for Reconstruct and
// ReconstructAll. This file defines:
//   - documented defaults (constants),
//   - Option / Options,
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions, the single place defaults and setters are merged.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package secret

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRound enables integer rounding of the recovered constant term.
	DefaultRound = true

	// DefaultRoundingEpsilon is the absolute distance within which the
	// constant term snaps to the nearest integer. For large values the
	// tolerance widens to a few ulps, capped at 0.25, so a genuine fraction
	// such as 2000000.5 is never rewritten.
	DefaultRoundingEpsilon = 1e-6

	// DefaultVerify leaves shares beyond the first k unchecked.
	DefaultVerify = false

	// DefaultVerifyEpsilon is the relative tolerance (floor 1) for |p(x) − y|
	// when verifying unused shares.
	DefaultVerifyEpsilon = 1e-6

	// DefaultWorkers bounds the parallelism of ReconstructAll.
	DefaultWorkers = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRoundingEpsilonInvalid = "secret: WithRoundingEpsilon: eps must be finite, non-negative"
	panicVerifyEpsilonInvalid   = "secret: WithVerifyEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid         = "secret: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	round     bool        // DefaultRound
	roundEps  float64     // DefaultRoundingEpsilon
	verify    bool        // DefaultVerify
	verifyEps float64     // DefaultVerifyEpsilon
	workers   int         // DefaultWorkers
	logger    *zap.Logger // zap.NewNop() unless WithLogger
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// WithRoundingEpsilon enables rounding with absolute tolerance eps.
// Values of eps at or above 0.25 behave as 0.25.
// Panics when eps is negative or non-finite.
func WithRoundingEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicRoundingEpsilonInvalid)
	}

	return func(o *Options) {
		o.round = true
		o.roundEps = eps
	}
}

// WithoutRounding returns the raw floating-point constant term as Secret.
func WithoutRounding() Option {
	return func(o *Options) { o.round = false }
}

// WithVerify checks every share beyond the first k against the recovered
// polynomial and fails with ErrInconsistentShare on the first mismatch.
func WithVerify() Option {
	return func(o *Options) { o.verify = true }
}

// WithVerifyEpsilon sets the verification tolerance and enables verification.
// Panics when eps is negative or non-finite.
func WithVerifyEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicVerifyEpsilonInvalid)
	}

	return func(o *Options) {
		o.verify = true
		o.verifyEps = eps
	}
}

// WithWorkers bounds ReconstructAll to n concurrent reconstructions.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes debug events to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user setters on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		round:     DefaultRound,
		roundEps:  DefaultRoundingEpsilon,
		verify:    DefaultVerify,
		verifyEps: DefaultVerifyEpsilon,
		workers:   DefaultWorkers,
		logger:    zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
