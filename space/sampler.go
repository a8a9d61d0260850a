package space

import "math/rand/v2"

// Point is one sampled parameter tuple, with one entry per dimension of the
// chosen sub-grid, in dimension order.
type Point []any

// Sampler draws reproducible points from a normalized grid. Every draw is
// taken from the single rng supplied at construction, so the point stream is
// a pure function of the seed; re-producing a stream means building a new
// sampler with the same seed. A Sampler is not safe for concurrent use.
type Sampler struct {
	grid [][]Distribution
	rng  *rand.Rand
}

// NewSampler normalizes grid and returns a sampler drawing from rng.
func NewSampler(grid []any, rng *rand.Rand) (*Sampler, error) {
	normalized, err := Normalize(grid)
	if err != nil {
		return nil, err
	}
	return &Sampler{grid: normalized, rng: rng}, nil
}

// NewSeededSampler is NewSampler with a PCG generator seeded from seed.
func NewSeededSampler(grid []any, seed uint64) (*Sampler, error) {
	return NewSampler(grid, rand.New(rand.NewPCG(seed, 0)))
}

// Grid returns the normalized sub-grids backing this sampler.
func (s *Sampler) Grid() [][]Distribution { return s.grid }

// Next draws one point: a sub-grid is chosen uniformly — never weighted by
// its size — then each of its dimensions is sampled once.
func (s *Sampler) Next() Point {
	sub := s.grid[s.rng.IntN(len(s.grid))]
	point := make(Point, len(sub))
	for i, dist := range sub {
		point[i] = dist.Sample(1, s.rng)[0]
	}
	return point
}

// Points draws n points in sequence. n below 1 is treated as 1.
func (s *Sampler) Points(n int) []Point {
	if n < 1 {
		n = 1
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// SamplePoints normalizes grid and draws n points using a PCG generator
// seeded from seed. Repeated calls with the same arguments yield identical
// points.
func SamplePoints(grid []any, n int, seed uint64) ([]Point, error) {
	s, err := NewSeededSampler(grid, seed)
	if err != nil {
		return nil, err
	}
	return s.Points(n), nil
}
