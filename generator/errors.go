// SPDX-License-Identifier: MIT
// Package: generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Generate never panics; option constructors (WithX) panic on
//     meaningless arguments because those are programmer errors.

package generator

import "errors"

// ErrBadSize indicates a requested size outside [matrix.MinSize, matrix.MaxSize].
var ErrBadSize = errors.New("generator: size out of range")

// ErrNeedRandSource indicates that no Source was configured
// (WithSeed/WithRand/WithSource must be set).
var ErrNeedRandSource = errors.New("generator: random source is required")
