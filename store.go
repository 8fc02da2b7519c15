package viewmap

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Orientation selects one of the four steerable view-map pyramids.
type Orientation int

// The four steerable orientations.
const (
	East Orientation = iota
	NorthEast
	North
	NorthWest
)

// NumOrientations is the number of steerable orientations.
const NumOrientations = 4

// Valid reports whether the orientation is one of the four defined values.
func (o Orientation) Valid() bool {
	return o >= East && o < NumOrientations
}

// String returns the compass name of the orientation.
func (o Orientation) String() string {
	switch o {
	case East:
		return "E"
	case NorthEast:
		return "NE"
	case North:
		return "N"
	case NorthWest:
		return "NW"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// MapStore is an indexed collection of view-map pyramids: named general
// maps, the four steerable orientation maps and the combined map.
//
// A MapStore is immutable after BuildMapStore returns and safe for
// concurrent reads; this is the read-only guarantee the functors rely on
// during stroke evaluation.
type MapStore struct {
	named     map[string]*Pyramid
	steerable [NumOrientations]*Pyramid
	complete  *Pyramid
}

// StoreOption configures a MapStore during construction.
type StoreOption func(*storeConfig)

type storeConfig struct {
	named     map[string]*GrayMap
	steerable [NumOrientations]*GrayMap
	complete  *GrayMap
	pyrOpts   []PyramidOption
}

// WithMap registers a named source image. Registering the same name twice
// keeps the last source.
func WithMap(name string, src *GrayMap) StoreOption {
	return func(c *storeConfig) {
		if c.named == nil {
			c.named = make(map[string]*GrayMap)
		}
		c.named[name] = src
	}
}

// WithSteerable registers the four orientation source images, in
// East, NorthEast, North, NorthWest order.
func WithSteerable(e, ne, n, nw *GrayMap) StoreOption {
	return func(c *storeConfig) {
		c.steerable = [NumOrientations]*GrayMap{e, ne, n, nw}
	}
}

// WithComplete registers the combined (non-oriented) view-map source image.
func WithComplete(src *GrayMap) StoreOption {
	return func(c *storeConfig) {
		c.complete = src
	}
}

// WithPyramidOptions applies pyramid construction options (level limits,
// scaler choice) to every pyramid the store builds.
func WithPyramidOptions(opts ...PyramidOption) StoreOption {
	return func(c *storeConfig) {
		c.pyrOpts = opts
	}
}

// BuildMapStore builds all registered pyramids and returns the immutable
// store. Pyramids are built concurrently. A nil or empty source image is an
// error: every registered map must be usable.
func BuildMapStore(opts ...StoreOption) (*MapStore, error) {
	var cfg storeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &MapStore{}

	var g errgroup.Group

	// Named pyramids build into an index-addressed slice; the map itself is
	// only written after Wait, from one goroutine.
	names := make([]string, 0, len(cfg.named))
	for name := range cfg.named {
		names = append(names, name)
	}
	namedBuilt := make([]*Pyramid, len(names))
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			p := BuildPyramid(cfg.named[name], cfg.pyrOpts...)
			if p == nil {
				return fmt.Errorf("map %q: %w", name, ErrEmptySource)
			}
			namedBuilt[i] = p
			return nil
		})
	}

	if cfg.steerable != [NumOrientations]*GrayMap{} {
		for i, src := range cfg.steerable {
			i, src := i, src
			g.Go(func() error {
				p := BuildPyramid(src, cfg.pyrOpts...)
				if p == nil {
					return fmt.Errorf("steerable map %v: %w", Orientation(i), ErrEmptySource)
				}
				s.steerable[i] = p
				return nil
			})
		}
	}

	if cfg.complete != nil {
		g.Go(func() error {
			p := BuildPyramid(cfg.complete, cfg.pyrOpts...)
			if p == nil {
				return fmt.Errorf("complete map: %w", ErrEmptySource)
			}
			s.complete = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(names) > 0 {
		s.named = make(map[string]*Pyramid, len(names))
		for i, name := range names {
			s.named[name] = namedBuilt[i]
		}
	}
	return s, nil
}

// Map returns the named pyramid, or ErrUnknownMap if no map with that name
// was registered.
func (s *MapStore) Map(name string) (*Pyramid, error) {
	p, ok := s.named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}
	return p, nil
}

// Steerable returns the pyramid for the given orientation.
func (s *MapStore) Steerable(o Orientation) (*Pyramid, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	p := s.steerable[o]
	if p == nil {
		return nil, ErrNoSteerableMaps
	}
	return p, nil
}

// Complete returns the combined view-map pyramid.
func (s *MapStore) Complete() (*Pyramid, error) {
	if s.complete == nil {
		return nil, ErrNoCompleteMap
	}
	return s.complete, nil
}

// LevelDepth returns the number of levels of the named pyramid.
func (s *MapStore) LevelDepth(name string) (int, error) {
	p, err := s.Map(name)
	if err != nil {
		return 0, err
	}
	return p.NumLevels(), nil
}

// ReadPixel reads pixel (x, y) of the named pyramid at the given level,
// in level coordinates, replicating edge pixels for outside reads.
func (s *MapStore) ReadPixel(name string, level, x, y int) (float32, error) {
	p, err := s.Map(name)
	if err != nil {
		return 0, err
	}
	if level < 0 || level >= p.NumLevels() {
		return 0, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	return p.PixelClamped(level, x, y), nil
}

// ReadSteerablePixel reads pixel (x, y) of an orientation pyramid at the
// given level, in level coordinates.
func (s *MapStore) ReadSteerablePixel(o Orientation, level, x, y int) (float32, error) {
	p, err := s.Steerable(o)
	if err != nil {
		return 0, err
	}
	if level < 0 || level >= p.NumLevels() {
		return 0, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	return p.PixelClamped(level, x, y), nil
}

// ReadCompletePixel reads pixel (x, y) of the combined pyramid at the
// given level, in level coordinates.
func (s *MapStore) ReadCompletePixel(level, x, y int) (float32, error) {
	p, err := s.Complete()
	if err != nil {
		return 0, err
	}
	if level < 0 || level >= p.NumLevels() {
		return 0, fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	return p.PixelClamped(level, x, y), nil
}
