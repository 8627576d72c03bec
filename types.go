package catmullrom

import (
	"errors"
	"fmt"
	"math"

	"github.com/irfannaqieb/catmull-rom/vecn"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'catmullrom'
func tracer() tracing.Trace {
	return tracing.Select("catmullrom")
}

var (
	// ErrDimension indicates a knot has fewer coordinates than the requested dimension.
	ErrDimension = errors.New("knot has too few coordinates for requested dimension")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrConfig indicates a nonsensical configuration value.
	ErrConfig = errors.New("invalid spline configuration")
)

// Parametrization names a knot-spacing family. The name selects the
// exponent applied to chord lengths when deriving knot times.
type Parametrization string

const (
	// Uniform spacing ignores chord lengths (alpha = 0).
	Uniform Parametrization = "uniform"
	// Chordal spacing is proportional to chord lengths (alpha = 1).
	Chordal Parametrization = "chordal"
	// Centripetal spacing uses the square root of chord lengths
	// (alpha = 0.5). This is the default; unrecognized names resolve
	// to it as well.
	Centripetal Parametrization = "centripetal"
)

// EndpointMode selects how virtual neighbor knots are synthesized at the
// ends of an open curve. Not meaningful for closed curves.
type EndpointMode string

const (
	// Duplicate repeats the terminal knots, giving a flat tangent at
	// the curve ends. This is the default.
	Duplicate EndpointMode = "duplicate"
	// Extrapolate mirrors the terminal secants linearly beyond the
	// curve ends.
	Extrapolate EndpointMode = "extrapolate"
)

// Defaults applied by Evaluate for zero-valued Config fields.
const (
	DefaultSamples = 16
	DefaultEpsilon = 1e-9
)

// Config holds the per-call evaluation parameters. A nil *Config and
// the zero Config both select the documented defaults. Evaluate never
// mutates a Config.
type Config struct {
	// Samples is the number of points generated per curve segment.
	// Values < 1 select DefaultSamples.
	Samples int

	// Parametrization names the knot-spacing family. Unrecognized
	// names (including the empty string) resolve to Centripetal.
	Parametrization Parametrization

	// Alpha, if non-nil, is an explicit knot-spacing exponent in
	// [0,1] and takes precedence over Parametrization.
	Alpha *float64

	// Closed connects the last knot back to the first. Endpoint
	// synthesis and IncludeOriginal do not apply to closed curves.
	Closed bool

	// Dimension clamps all knots to their leading Dimension
	// coordinates. 0 means: use the dimension of the first knot.
	// A knot with fewer coordinates than the effective dimension is
	// rejected with ErrDimension.
	Dimension int

	// Endpoints selects the virtual-knot policy for open curves.
	// Anything but Extrapolate behaves as Duplicate.
	Endpoints EndpointMode

	// Epsilon strictly bounds knot-time deltas away from zero.
	// Values ≤ 0 select DefaultEpsilon.
	Epsilon float64

	// IncludeOriginal prepends the first knot and appends the last
	// knot to the sampled output of an open curve. Ignored when
	// Closed.
	IncludeOriginal bool

	// IncludeMeta populates Result.Meta and Result.SegmentStarts.
	IncludeMeta bool
}

// SampleMeta describes one output sample: the 0-based index of the
// segment it came from and the normalized in-segment parameter u ∈ [0,1].
type SampleMeta struct {
	Segment int
	U       float64
}

// Result is the output of Evaluate. Points is always populated; Meta
// and SegmentStarts only when Config.IncludeMeta was set. SegmentStarts
// records, per segment, the index into Points at which that segment's
// first sample was written.
type Result struct {
	Points        []vecn.Point
	Meta          []SampleMeta
	SegmentStarts []int
}

// Effective per-call parameters after applying defaults.
type settings struct {
	samples         int
	alpha           float64
	closed          bool
	dimension       int // 0 until resolved against the first knot
	endpoints       EndpointMode
	epsilon         float64
	includeOriginal bool
	includeMeta     bool
}

func alphaFor(p Parametrization) float64 {
	switch p {
	case Uniform:
		return 0.0
	case Chordal:
		return 1.0
	case Centripetal:
		return 0.5
	}
	return 0.5
}

// newSettings resolves cfg against the documented defaults. An explicit
// Alpha wins over the parametrization name but must lie in [0,1].
func newSettings(cfg *Config) (settings, error) {
	s := settings{
		samples:   DefaultSamples,
		alpha:     alphaFor(Centripetal),
		endpoints: Duplicate,
		epsilon:   DefaultEpsilon,
	}
	if cfg == nil {
		return s, nil
	}
	if cfg.Samples >= 1 {
		s.samples = cfg.Samples
	}
	s.alpha = alphaFor(cfg.Parametrization)
	if cfg.Alpha != nil {
		a := *cfg.Alpha
		if math.IsNaN(a) || a < 0 || a > 1 {
			return s, fmt.Errorf("%w: alpha %v outside [0,1]", ErrConfig, a)
		}
		s.alpha = a
	}
	s.closed = cfg.Closed
	if cfg.Dimension < 0 {
		return s, fmt.Errorf("%w: negative dimension %d", ErrConfig, cfg.Dimension)
	}
	s.dimension = cfg.Dimension
	if cfg.Endpoints == Extrapolate {
		s.endpoints = Extrapolate
	}
	if cfg.Epsilon > 0 {
		s.epsilon = cfg.Epsilon
	}
	s.includeOriginal = cfg.IncludeOriginal && !cfg.Closed
	s.includeMeta = cfg.IncludeMeta
	return s, nil
}
