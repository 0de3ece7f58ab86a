// SPDX-License-Identifier: MIT
// Package: adp/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; generators attach the offending values
// with %w.

package builder

import "errors"

// ErrTooFewVertices indicates numVertices is below one, or below two while
// edges are requested (self-loops are never generated).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadEdgeCount indicates a negative numEdges.
var ErrBadEdgeCount = errors.New("builder: edge count must be non-negative")

// ErrUnknownShape indicates RandomGraph was asked for a shape it does not know.
var ErrUnknownShape = errors.New("builder: unknown graph shape")
