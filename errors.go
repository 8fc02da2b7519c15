package viewmap

import "errors"

// Common errors for view-map queries.
//
// Construction-time validation failures (unknown map, bad orientation, bad
// level) are reported eagerly by the functor constructors; query-time
// failures are limited to a point iterator that does not carry the raster
// a functor needs. Reads that fall outside an image are never errors: they
// replicate the nearest edge pixel.
var (
	// ErrUnknownMap is returned when a named map is not present in the store.
	ErrUnknownMap = errors.New("viewmap: unknown map name")

	// ErrInvalidOrientation is returned when an orientation index is outside
	// [0, NumOrientations).
	ErrInvalidOrientation = errors.New("viewmap: orientation out of range")

	// ErrLevelOutOfRange is returned when a pyramid level is negative or
	// beyond the pyramid's depth.
	ErrLevelOutOfRange = errors.New("viewmap: pyramid level out of range")

	// ErrNoSteerableMaps is returned when the store was built without
	// orientation pyramids.
	ErrNoSteerableMaps = errors.New("viewmap: map store has no steerable view maps")

	// ErrNoCompleteMap is returned when the store was built without a
	// combined view-map pyramid.
	ErrNoCompleteMap = errors.New("viewmap: map store has no complete view map")

	// ErrNoDensityImage is returned when the point iterator carries no
	// density image.
	ErrNoDensityImage = errors.New("viewmap: point iterator carries no density image")

	// ErrNoDepthBuffer is returned when the point iterator carries no
	// depth buffer.
	ErrNoDepthBuffer = errors.New("viewmap: point iterator carries no depth buffer")

	// ErrEmptySource is returned when a pyramid source image is nil or empty.
	ErrEmptySource = errors.New("viewmap: empty source image")

	// ErrUnknownKind is returned by the functor factory for an
	// unrecognized Kind.
	ErrUnknownKind = errors.New("viewmap: unknown functor kind")
)
