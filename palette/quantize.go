package palette

import (
	"errors"
	"math"
)

var ErrEmptyPalette = errors.New("palette: empty palette")

// Metric measures how far apart two colors are. Only the ordering of the
// results matters.
type Metric func(a, b RGB24) float64

// Weighted is the squared distance with each channel difference scaled by
// its perceived brightness, (0.30, 0.59, 0.11) for (R, G, B).
func Weighted(a, b RGB24) float64 {
	r1, g1, b1 := a.RGB()
	r2, g2, b2 := b.RGB()

	dx := (float64(r1) - float64(r2)) * 0.30
	dy := (float64(g1) - float64(g2)) * 0.59
	dz := (float64(b1) - float64(b2)) * 0.11

	return dx*dx + dy*dy + dz*dz
}

// Lab is the euclidean distance in CIE L*a*b* space.
func Lab(a, b RGB24) float64 {
	return a.Colorful().DistanceLab(b.Colorful())
}

// Quantizer resolves true colors to the closest palette index. Every color
// is resolved once and remembered.
type Quantizer struct {
	pal    Palette
	metric Metric
	cache  map[RGB24]int
}

type Option func(*Quantizer) error

// WithMetric replaces the default Weighted metric.
func WithMetric(m Metric) Option {
	return func(q *Quantizer) error {
		if m == nil {
			return errors.New("palette: nil metric")
		}
		q.metric = m
		return nil
	}
}

func NewQuantizer(pal Palette, opts ...Option) (*Quantizer, error) {
	if len(pal) == 0 {
		return nil, ErrEmptyPalette
	}
	q := &Quantizer{
		pal:    pal,
		metric: Weighted,
		cache:  map[RGB24]int{},
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Index returns the index of the palette entry closest to c. Ties go to
// the lowest index.
func (q *Quantizer) Index(c RGB24) int {
	if idx, ok := q.cache[c]; ok {
		return idx
	}

	closest, closestDist := 0, math.MaxFloat64
	for i, p := range q.pal {
		if dist := q.metric(c, p); dist < closestDist {
			closest, closestDist = i, dist
		}
	}

	q.cache[c] = closest
	return closest
}

// Resolved is the number of distinct colors seen so far.
func (q *Quantizer) Resolved() int { return len(q.cache) }
