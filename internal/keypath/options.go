package keypath

// DefaultCutoff is the lowest similarity score a fuzzy match may have.
const DefaultCutoff = 0.6

type options struct {
	approx bool
	cutoff float64
}

// Option configures a lookup.
type Option func(*options)

// WithApprox turns approximate key matching on or off. It is off by default.
func WithApprox(approx bool) Option {
	return func(o *options) {
		o.approx = approx
	}
}

// WithCutoff sets the minimum similarity, between 0 and 1, a fuzzy match
// must reach.
func WithCutoff(cutoff float64) Option {
	return func(o *options) {
		o.cutoff = cutoff
	}
}

func newOptions(opts []Option) options {
	o := options{cutoff: DefaultCutoff}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
