package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color holds three radiance channels. Channels stay non-negative but are
// intentionally unbounded during compositing (reflection/refraction can
// push a channel above 1.0); clamping to a displayable range happens only
// at write-out, in the image sink.
type Color struct {
	v mgl64.Vec3
}

// NewColor builds a Color, clamping any negative input channel to zero.
func NewColor(r, g, b float64) Color {
	return Color{v: mgl64.Vec3{math.Max(0, r), math.Max(0, g), math.Max(0, b)}}
}

// Black is the zero color, the natural background/emission default.
var Black = Color{}

// White is full intensity on every channel, the default ambient
// reflectance coefficient.
var White = NewColor(1, 1, 1)

func (c Color) R() float64 { return c.v[0] }
func (c Color) G() float64 { return c.v[1] }
func (c Color) B() float64 { return c.v[2] }

func (c Color) String() string {
	return fmt.Sprintf("Color{%.4g, %.4g, %.4g}", c.v[0], c.v[1], c.v[2])
}

// Add returns the sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{v: c.v.Add(other.v)}
}

// Scale returns the color scaled uniformly by a scalar.
func (c Color) Scale(s float64) Color {
	return NewColor(c.v[0]*s, c.v[1]*s, c.v[2]*s)
}

// ScaleTriple returns the color scaled per-channel by another color, used
// for attenuation coefficients (kD, kS, kA, kT, kR are all per-channel
// triples, never bare scalars).
func (c Color) ScaleTriple(t Triple) Color {
	return NewColor(c.v[0]*t.R, c.v[1]*t.G, c.v[2]*t.B)
}

// Reduce divides the color by a scalar, the inverse of Scale. Used when
// normalizing accumulated depth-of-field samples.
func (c Color) Reduce(n float64) Color {
	if n == 0 {
		return Black
	}
	return c.Scale(1.0 / n)
}

// MaxChannel returns the largest of the three channels. (The attenuation
// cutoff K_MIN is tested with Triple.MaxChannel, not this method.)
func (c Color) MaxChannel() float64 {
	m := c.v[0]
	if c.v[1] > m {
		m = c.v[1]
	}
	if c.v[2] > m {
		m = c.v[2]
	}
	return m
}

// Clamp255 converts the color to saturated 8-bit channels for persistence.
// This is the only place a Color's values are bounded.
func (c Color) Clamp255() (r, g, b uint8) {
	return clampChannel(c.v[0]), clampChannel(c.v[1]), clampChannel(c.v[2])
}

func clampChannel(v float64) uint8 {
	scaled := v * 255.0
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}

// Triple is a per-channel coefficient (kD, kS, kA, kT, kR), each component
// expected to lie in [0,1].
type Triple struct {
	R, G, B float64
}

// Uniform broadcasts a scalar setter into the three-channel form, the
// "scalar convenience" callers may use instead of specifying all three
// channels explicitly.
func Uniform(v float64) Triple {
	return Triple{R: v, G: v, B: v}
}

// Add returns the sum of two triples.
func (t Triple) Add(other Triple) Triple {
	return Triple{R: t.R + other.R, G: t.G + other.G, B: t.B + other.B}
}

// Scale returns the triple scaled by a scalar.
func (t Triple) Scale(s float64) Triple {
	return Triple{R: t.R * s, G: t.G * s, B: t.B * s}
}

// Multiply returns the component-wise product of two triples, used to
// accumulate shadow transparency (ktr) across successive blockers.
func (t Triple) Multiply(other Triple) Triple {
	return Triple{R: t.R * other.R, G: t.G * other.G, B: t.B * other.B}
}

// IsZero reports whether every channel aligns to zero.
func (t Triple) IsZero() bool {
	return IsZero(t.R) && IsZero(t.G) && IsZero(t.B)
}

// MaxChannel returns the largest channel value.
func (t Triple) MaxChannel() float64 {
	m := t.R
	if t.G > m {
		m = t.G
	}
	if t.B > m {
		m = t.B
	}
	return m
}
