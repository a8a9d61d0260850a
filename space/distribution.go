package space

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/tunespace/tunespace/space/transform"
)

// Distribution describes one tunable search dimension: its domain, its
// sampling prior, and the transform between original and warped space.
//
// The set of variants is closed: Real, Integer, and Categorical.
type Distribution interface {
	// Sample draws n independent variates in original space using rng.
	// n below 1 is treated as 1.
	Sample(n int, rng *rand.Rand) []any

	// Transform maps original-space values into warped space.
	Transform(values []any) (*mat.Dense, error)

	// InverseTransform maps warped-space rows back into original space.
	InverseTransform(warped *mat.Dense) ([]any, error)

	// Transformer returns the transformer owned by this dimension.
	Transformer() transform.Transformer

	sealed()
}

// Real is a search dimension over a continuous interval.
type Real struct {
	low, high   float64
	prior       Prior
	transformer transform.Transformer
}

// NewReal creates a continuous dimension on [low, high). The default prior is
// uniform and the default transform is identity; "log" and "log10" are also
// recognized transform names.
func NewReal(low, high float64, opts ...Option) (*Real, error) {
	cfg := applyOptions(opts)
	if low >= high {
		return nil, invalidArgumentf("NewReal", "low (%v) must be less than high (%v)", low, high)
	}
	if cfg.weights != nil {
		return nil, invalidArgumentf("NewReal", "weights are only valid for categorical dimensions")
	}

	t := cfg.transformer
	if t == nil {
		switch cfg.transformName {
		case "", TransformIdentity:
			t = transform.Identity{}
		case TransformLog:
			t = transform.Log{}
		case TransformLog10:
			t = transform.Log10{}
		default:
			return nil, invalidArgumentf("NewReal", "%q is not a valid transformer", cfg.transformName)
		}
	}

	p := cfg.prior
	if p == nil {
		p = uniformPrior{min: low, max: high}
	}

	return &Real{low: low, high: high, prior: p, transformer: t}, nil
}

// Low returns the inclusive lower bound.
func (r *Real) Low() float64 { return r.low }

// High returns the upper bound.
func (r *Real) High() float64 { return r.high }

// Sample draws n variates from the prior, clamped into [low, high].
func (r *Real) Sample(n int, rng *rand.Rand) []any {
	if n < 1 {
		n = 1
	}
	out := make([]any, n)
	for i := range out {
		out[i] = clampFloat(r.prior.Rand(rng), r.low, r.high)
	}
	return out
}

// Transform maps original-space values into warped space.
func (r *Real) Transform(values []any) (*mat.Dense, error) {
	return delegateTransform(r.transformer, values)
}

// InverseTransform maps warped-space rows back into original space.
func (r *Real) InverseTransform(warped *mat.Dense) ([]any, error) {
	return delegateInverse(r.transformer, warped)
}

// Transformer returns the transformer owned by this dimension.
func (r *Real) Transformer() transform.Transformer { return r.transformer }

func (*Real) sealed() {}

// Integer is a search dimension over a range of integers.
type Integer struct {
	low, high   int
	prior       Prior
	transformer transform.Transformer
}

// NewInteger creates an integer dimension on [low, high), high exclusive,
// matching the integer-range convention of the default discrete uniform
// prior. Only the identity transform is recognized by name.
func NewInteger(low, high int, opts ...Option) (*Integer, error) {
	cfg := applyOptions(opts)
	if low >= high {
		return nil, invalidArgumentf("NewInteger", "low (%d) must be less than high (%d)", low, high)
	}
	if cfg.weights != nil {
		return nil, invalidArgumentf("NewInteger", "weights are only valid for categorical dimensions")
	}

	t := cfg.transformer
	if t == nil {
		switch cfg.transformName {
		case "", TransformIdentity:
			t = transform.Identity{}
		default:
			return nil, invalidArgumentf("NewInteger", "%q is not a valid transformer", cfg.transformName)
		}
	}

	p := cfg.prior
	if p == nil {
		p = intUniformPrior{low: low, high: high}
	}

	return &Integer{low: low, high: high, prior: p, transformer: t}, nil
}

// Low returns the inclusive lower bound.
func (d *Integer) Low() int { return d.low }

// High returns the exclusive upper bound.
func (d *Integer) High() int { return d.high }

// Sample draws n variates from the prior, rounded to the nearest integer and
// clamped into [low, high].
func (d *Integer) Sample(n int, rng *rand.Rand) []any {
	if n < 1 {
		n = 1
	}
	out := make([]any, n)
	for i := range out {
		v := int(math.Round(d.prior.Rand(rng)))
		out[i] = clampInt(v, d.low, d.high)
	}
	return out
}

// Transform maps original-space values into warped space.
func (d *Integer) Transform(values []any) (*mat.Dense, error) {
	return delegateTransform(d.transformer, values)
}

// InverseTransform maps warped-space rows back into original space.
func (d *Integer) InverseTransform(warped *mat.Dense) ([]any, error) {
	return delegateInverse(d.transformer, warped)
}

// Transformer returns the transformer owned by this dimension.
func (d *Integer) Transformer() transform.Transformer { return d.transformer }

func (*Integer) sealed() {}

// Categorical is a search dimension over a fixed set of labels.
type Categorical struct {
	categories  []any
	weights     []float64
	transformer transform.Transformer
}

// NewCategorical creates a categorical dimension over the given labels.
// Labels must be non-empty, comparable, and distinct. The default transformer
// is a one-hot encoder fitted against the labels at construction; "label" is
// also recognized. Without WithWeights every label is equally likely.
func NewCategorical(categories []any, opts ...Option) (*Categorical, error) {
	cfg := applyOptions(opts)
	if len(categories) == 0 {
		return nil, invalidArgumentf("NewCategorical", "at least one category is required")
	}
	if cfg.prior != nil {
		return nil, invalidArgumentf("NewCategorical", "categorical dimensions take weights, not a prior")
	}

	seen := make(map[any]struct{}, len(categories))
	for _, c := range categories {
		if c == nil {
			return nil, invalidArgumentf("NewCategorical", "nil is not a valid category")
		}
		if !reflect.ValueOf(c).Comparable() {
			return nil, invalidArgumentf("NewCategorical", "category %v (%T) is not comparable", c, c)
		}
		if _, dup := seen[c]; dup {
			return nil, invalidArgumentf("NewCategorical", "duplicate category %v", c)
		}
		seen[c] = struct{}{}
	}

	cats := make([]any, len(categories))
	copy(cats, categories)

	t := cfg.transformer
	if t == nil {
		switch cfg.transformName {
		case "", TransformOneHot:
			enc := transform.NewOneHotEncoder()
			if err := enc.Fit(cats); err != nil {
				return nil, invalidArgumentf("NewCategorical", "fitting one-hot encoder: %v", err)
			}
			t = enc
		case TransformLabel:
			enc := transform.NewLabelEncoder()
			if err := enc.Fit(cats); err != nil {
				return nil, invalidArgumentf("NewCategorical", "fitting label encoder: %v", err)
			}
			t = enc
		default:
			return nil, invalidArgumentf("NewCategorical", "%q is not a valid transformer", cfg.transformName)
		}
	}

	w := cfg.weights
	if w == nil {
		w = make([]float64, len(cats))
		for i := range w {
			w[i] = 1.0 / float64(len(cats))
		}
	} else {
		if len(w) != len(cats) {
			return nil, invalidArgumentf("NewCategorical", "got %d weights for %d categories", len(w), len(cats))
		}
		sum := 0.0
		for _, v := range w {
			if v < 0 {
				return nil, invalidArgumentf("NewCategorical", "weights must be non-negative, got %v", v)
			}
			sum += v
		}
		if sum <= 0 {
			return nil, invalidArgumentf("NewCategorical", "weights must have a positive sum")
		}
		w = append([]float64(nil), w...)
	}

	return &Categorical{categories: cats, weights: w, transformer: t}, nil
}

// Categories returns the labels in declaration order.
func (c *Categorical) Categories() []any {
	out := make([]any, len(c.categories))
	copy(out, c.categories)
	return out
}

// Weights returns the (proportional) sampling weights per label.
func (c *Categorical) Weights() []float64 {
	return append([]float64(nil), c.weights...)
}

// Sample draws n labels from the weighted discrete distribution over the
// category indices.
func (c *Categorical) Sample(n int, rng *rand.Rand) []any {
	if n < 1 {
		n = 1
	}
	dist := distuv.NewCategorical(c.weights, rng)
	out := make([]any, n)
	for i := range out {
		out[i] = c.categories[int(dist.Rand())]
	}
	return out
}

// Transform maps labels into warped space through the owned encoder.
func (c *Categorical) Transform(values []any) (*mat.Dense, error) {
	return delegateTransform(c.transformer, values)
}

// InverseTransform maps warped-space rows back to labels.
func (c *Categorical) InverseTransform(warped *mat.Dense) ([]any, error) {
	return delegateInverse(c.transformer, warped)
}

// Transformer returns the transformer owned by this dimension.
func (c *Categorical) Transformer() transform.Transformer { return c.transformer }

func (*Categorical) sealed() {}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// delegateTransform forwards to the transformer, classifying fit-state and
// unseen-label failures as precondition violations.
func delegateTransform(t transform.Transformer, values []any) (*mat.Dense, error) {
	out, err := t.Transform(values)
	if err != nil {
		return nil, classifyTransformErr("Transform", err)
	}
	return out, nil
}

func delegateInverse(t transform.Transformer, warped *mat.Dense) ([]any, error) {
	out, err := t.InverseTransform(warped)
	if err != nil {
		return nil, classifyTransformErr("InverseTransform", err)
	}
	return out, nil
}

func classifyTransformErr(op string, err error) error {
	if errors.Is(err, transform.ErrNotFitted) || errors.Is(err, transform.ErrUnknownLabel) {
		return preconditionErr(op, err)
	}
	return err
}

func clampFloat(v, low, high float64) float64 {
	return math.Min(math.Max(v, low), high)
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
