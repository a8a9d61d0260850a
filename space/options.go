package space

import "github.com/tunespace/tunespace/space/transform"

// Recognized transform names for WithTransform.
const (
	TransformIdentity = "identity"
	TransformLog      = "log"
	TransformLog10    = "log10"
	TransformOneHot   = "onehot"
	TransformLabel    = "label"
)

// config collects construction options shared by the distribution variants.
// Each constructor rejects options that do not apply to it.
type config struct {
	transformName string
	transformer   transform.Transformer
	prior         Prior
	weights       []float64
}

// Option configures a distribution at construction time.
type Option func(*config)

// WithTransform selects a transformer by name. Each variant recognizes its
// own set of names; an unknown name fails construction.
func WithTransform(name string) Option {
	return func(c *config) { c.transformName = name }
}

// WithTransformer supplies an explicit transformer object. Stateful
// transformers must already be fitted; they are used as-is.
func WithTransformer(t transform.Transformer) Option {
	return func(c *config) { c.transformer = t }
}

// WithPrior supplies a frozen prior for Real or Integer dimensions in place
// of the default uniform.
func WithPrior(p Prior) Option {
	return func(c *config) { c.prior = p }
}

// WithWeights sets category weights for a Categorical dimension. Weights are
// proportional; they are not required to sum to 1.
func WithWeights(w []float64) Option {
	return func(c *config) { c.weights = w }
}
