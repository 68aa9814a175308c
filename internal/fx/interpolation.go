// Package fx implements time-driven effects over a grid of styled cells:
// leaf effects such as fades, combinators that sequence, parallelize or
// delay other effects, cell filters, easing curves, and a Manager that
// advances and prunes running effects once per frame.
//
// Time is always passed in, never sampled, so every effect is deterministic
// for a given sequence of frame deltas.
package fx

import (
	"fmt"
	"math"
	"strings"
)

// Interpolation is an easing curve mapping linear progress in [0, 1] to
// eased progress. Every curve maps 0 to 0 and 1 to 1; Back and Elastic
// curves overshoot in between.
type Interpolation uint8

const (
	Linear Interpolation = iota
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut
	SineIn
	SineOut
	SineInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	CircIn
	CircOut
	CircInOut
	BackIn
	BackOut
	BackInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BounceIn
	BounceOut
	BounceInOut
	Smoothstep

	interpolationCount // Sentinel value for iteration
)

var interpolationNames = [...]string{
	Linear:       "Linear",
	QuadIn:       "QuadIn",
	QuadOut:      "QuadOut",
	QuadInOut:    "QuadInOut",
	CubicIn:      "CubicIn",
	CubicOut:     "CubicOut",
	CubicInOut:   "CubicInOut",
	QuartIn:      "QuartIn",
	QuartOut:     "QuartOut",
	QuartInOut:   "QuartInOut",
	QuintIn:      "QuintIn",
	QuintOut:     "QuintOut",
	QuintInOut:   "QuintInOut",
	SineIn:       "SineIn",
	SineOut:      "SineOut",
	SineInOut:    "SineInOut",
	ExpoIn:       "ExpoIn",
	ExpoOut:      "ExpoOut",
	ExpoInOut:    "ExpoInOut",
	CircIn:       "CircIn",
	CircOut:      "CircOut",
	CircInOut:    "CircInOut",
	BackIn:       "BackIn",
	BackOut:      "BackOut",
	BackInOut:    "BackInOut",
	ElasticIn:    "ElasticIn",
	ElasticOut:   "ElasticOut",
	ElasticInOut: "ElasticInOut",
	BounceIn:     "BounceIn",
	BounceOut:    "BounceOut",
	BounceInOut:  "BounceInOut",
	Smoothstep:   "Smoothstep",
}

// Interpolations returns every supported curve in declaration order.
func Interpolations() []Interpolation {
	out := make([]Interpolation, 0, interpolationCount)
	for i := Linear; i < interpolationCount; i++ {
		out = append(out, i)
	}
	return out
}

// String returns the curve name, e.g. "QuadIn".
func (i Interpolation) String() string {
	if i < interpolationCount {
		return interpolationNames[i]
	}
	return "Unknown"
}

// ParseInterpolation resolves a curve by name. Matching ignores case and
// the separators '_', '-' and ' ', so "quad_in", "quad-in" and "QuadIn" are
// all QuadIn.
func ParseInterpolation(name string) (Interpolation, error) {
	want := normalizeCurveName(name)
	for i := Linear; i < interpolationCount; i++ {
		if normalizeCurveName(interpolationNames[i]) == want {
			return i, nil
		}
	}
	return Linear, fmt.Errorf("fx: unknown interpolation %q", name)
}

func normalizeCurveName(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
}

// MarshalText implements encoding.TextMarshaler.
func (i Interpolation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpolation) UnmarshalText(b []byte) error {
	v, err := ParseInterpolation(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5
)

// Apply eases t. Input outside [0, 1] is clamped first.
func (i Interpolation) Apply(t float64) float64 {
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	if t >= 1 {
		return 1
	}

	switch i {
	case QuadIn:
		return t * t
	case QuadOut:
		return t * (2 - t)
	case QuadInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case CubicIn:
		return t * t * t
	case CubicOut:
		u := t - 1
		return u*u*u + 1
	case CubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 2*t - 2
		return 1 + u*u*u/2
	case QuartIn:
		return t * t * t * t
	case QuartOut:
		u := t - 1
		return 1 - u*u*u*u
	case QuartInOut:
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		u := t - 1
		return 1 - 8*u*u*u*u
	case QuintIn:
		return t * t * t * t * t
	case QuintOut:
		u := t - 1
		return 1 + u*u*u*u*u
	case QuintInOut:
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		u := t - 1
		return 1 + 16*u*u*u*u*u
	case SineIn:
		return 1 - math.Cos(t*math.Pi/2)
	case SineOut:
		return math.Sin(t * math.Pi / 2)
	case SineInOut:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case ExpoIn:
		return math.Pow(2, 10*t-10)
	case ExpoOut:
		return 1 - math.Pow(2, -10*t)
	case ExpoInOut:
		if t < 0.5 {
			return math.Pow(2, 20*t-10) / 2
		}
		return (2 - math.Pow(2, -20*t+10)) / 2
	case CircIn:
		return 1 - math.Sqrt(1-t*t)
	case CircOut:
		u := t - 1
		return math.Sqrt(1 - u*u)
	case CircInOut:
		if t < 0.5 {
			return (1 - math.Sqrt(1-4*t*t)) / 2
		}
		u := -2*t + 2
		return (math.Sqrt(1-u*u) + 1) / 2
	case BackIn:
		return backC3*t*t*t - backC1*t*t
	case BackOut:
		u := t - 1
		return 1 + backC3*u*u*u + backC1*u*u
	case BackInOut:
		if t < 0.5 {
			u := 2 * t
			return u * u * ((backC2+1)*u - backC2) / 2
		}
		u := 2*t - 2
		return (u*u*((backC2+1)*u+backC2) + 2) / 2
	case ElasticIn:
		return -math.Pow(2, 10*t-10) * math.Sin((10*t-10.75)*elasticC4)
	case ElasticOut:
		return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*elasticC4) + 1
	case ElasticInOut:
		if t < 0.5 {
			return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
		}
		return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5)/2 + 1
	case BounceIn:
		return 1 - bounceOut(1-t)
	case BounceOut:
		return bounceOut(t)
	case BounceInOut:
		if t < 0.5 {
			return (1 - bounceOut(1-2*t)) / 2
		}
		return (1 + bounceOut(2*t-1)) / 2
	case Smoothstep:
		return t * t * (3 - 2*t)
	default:
		return t
	}
}

func bounceOut(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
