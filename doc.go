// Package viewmap evaluates scalar point queries against the raster data
// backing a line-stylization pipeline: a density image, a depth buffer, four
// orientation-filtered view-map pyramids and one combined view-map pyramid.
//
// # Overview
//
// A stylization pipeline walks points along curves and, at each point, asks
// questions like "how dense is the drawing here?", "how deep is the scene
// here?" or "how strong is the view-map gradient here?". Each question is a
// functor: a small immutable value configured once (sigma, map name,
// orientation, pyramid level) and then evaluated at many points.
//
//	store, err := viewmap.BuildMapStore(
//	    viewmap.WithComplete(density),
//	    viewmap.WithSteerable(e, ne, n, nw),
//	)
//	if err != nil {
//	    // ...
//	}
//
//	fn, err := viewmap.NewViewMapGradientNorm(store, 2)
//	if err != nil {
//	    // ...
//	}
//	v, err := fn.Evaluate(viewmap.At{P: viewmap.Pt(120, 80)})
//
// # Functors
//
// The closed set of functors implements [UnaryFunction0D]:
//
//   - [Density]: Gaussian-smoothed density of the current result image.
//   - [LocalAverageDepth]: Gaussian-weighted average of the depth buffer.
//   - [ReadMapPixel]: direct pixel read from a named pyramid level.
//   - [ReadSteerableViewMapPixel]: direct read from one of the four
//     orientation pyramids.
//   - [ReadCompleteViewMapPixel]: direct read from the combined pyramid.
//   - [ViewMapGradientNorm]: finite-difference gradient magnitude of the
//     combined pyramid.
//
// All configuration is validated at construction; evaluation never mutates
// functor state, so a single functor instance may be shared across
// goroutines.
//
// # Coordinate System
//
// Query points are expressed in level-0 pixel coordinates, origin at the
// top-left, X increasing right, Y increasing down. A level-0 coordinate
// (x, y) addresses pixel (x >> L, y >> L) at pyramid level L. Reads that
// fall outside an image replicate the nearest edge pixel.
package viewmap
