package stipple

import "errors"

// ErrUnknownFunction is returned (wrapped, with the offending name) when a
// configured move, property, or timing function name has no registry entry.
// The animator reports it through the package logger and skips the affected
// work rather than falling back silently.
var ErrUnknownFunction = errors.New("unknown function")

// ErrInvalidOrigin is returned by PointNear when the reference point is not a
// usable plane coordinate (NaN or infinite). The caller gets no point and
// must handle the miss.
var ErrInvalidOrigin = errors.New("invalid origin point")
