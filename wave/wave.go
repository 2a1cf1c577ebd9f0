package wave

import (
	"github.com/katalvlaran/hypersurface/adjacency"
	"github.com/katalvlaran/hypersurface/skeleton"
	"github.com/katalvlaran/hypersurface/surface"
)

// Option configures a Sim.
type Option func(*options)

type options struct {
	cache *adjacency.Cache
}

// WithCache reuses an existing adjacency cache. It must be built from the
// same metadata as the Sim.
func WithCache(c *adjacency.Cache) Option {
	return func(o *options) { o.cache = c }
}

// Point is one vertex of the point cloud handed to a renderer.
type Point struct {
	Pos   []float32 `json:"pos" yaml:"pos,flow"`
	Value float32   `json:"value" yaml:"value"`
}

// Sim is a wave simulation. It is single-threaded.
type Sim struct {
	meta  skeleton.Meta
	cache *adjacency.Cache
	read  *surface.Surface[float32]
	write *surface.Surface[float32]
	prev  *surface.Surface[float32]
	first bool
	steps int
}

// New allocates the three buffers for m and, unless WithCache is given,
// builds the adjacency cache.
func New(m skeleton.Meta, opts ...Option) *Sim {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = adjacency.New(m)
	} else if o.cache.Meta() != m {
		panic("wave: cache built for " + o.cache.Meta().String() + ", not " + m.String())
	}

	return &Sim{
		meta:  m,
		cache: o.cache,
		read:  surface.New[float32](m),
		write: surface.New[float32](m),
		prev:  surface.New[float32](m),
		first: true,
	}
}

// Meta returns the simulated skeleton.
func (s *Sim) Meta() skeleton.Meta { return s.meta }

// Field returns the current field. Writes to it are seen by the next Step.
func (s *Sim) Field() *surface.Surface[float32] { return s.read }

// Prev returns the field of the previous step.
func (s *Sim) Prev() *surface.Surface[float32] { return s.prev }

// Steps returns how many steps have run.
func (s *Sim) Steps() int { return s.steps }

// Impulse adds v to the current field at c. Panics if c is not a point of the skeleton.
func (s *Sim) Impulse(c skeleton.Coord, v float32) {
	*s.read.Ref(c) += v
}

// Reset zeroes all buffers and restarts the scheme.
func (s *Sim) Reset() {
	s.read.Fill(0)
	s.write.Fill(0)
	s.prev.Fill(0)
	s.first = true
	s.steps = 0
}

// Step advances the field by dt.
func (s *Sim) Step(dt float32) {
	read, prev, write := s.read.Data(), s.prev.Data(), s.write.Data()
	first := s.first
	s.cache.ForEach(func(i int, nbrs []int) {
		center := read[i]
		var sum float32
		for _, j := range nbrs {
			sum += read[j]
		}
		cfd := 0.5 * dt * (sum - float32(len(nbrs))*center)
		if first {
			write[i] = center - cfd
		} else {
			write[i] = -prev[i] + 2*center + cfd
		}
	})
	s.first = false
	s.steps++

	s.read, s.prev = s.prev, s.read
	s.read, s.write = s.write, s.read
}

// Energy returns Σ value² over the current field.
func (s *Sim) Energy() float64 {
	var e float64
	for _, v := range s.read.Data() {
		e += float64(v) * float64(v)
	}

	return e
}

// Peak returns the largest absolute value of the current field.
func (s *Sim) Peak() float32 {
	var p float32
	for _, v := range s.read.Data() {
		if v < 0 {
			v = -v
		}
		if v > p {
			p = v
		}
	}

	return p
}

// Points projects every point into [-1,1]^N with its current value.
func (s *Sim) Points() []Point {
	data := s.read.Data()
	out := make([]Point, s.cache.Len())
	for i := range out {
		out[i] = Point{Pos: s.meta.Project(s.cache.Coord(i)), Value: data[i]}
	}

	return out
}
