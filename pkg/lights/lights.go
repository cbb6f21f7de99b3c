// Package lights implements the four Phong light variants: ambient,
// directional, point and spot. Every light answers two questions at a
// given shading point: is there a direction to test for shadowing and
// N·L falloff, and what per-channel intensity does it contribute there.
package lights

import (
	"math"

	"github.com/rayforge/tracer/pkg/core"
)

// LightType names a light's kind, used for diagnostics and scene dumps —
// shading never branches on it directly.
type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
)

// Light is the capability every light variant implements.
type Light interface {
	Type() LightType

	// DirectionTo returns the unit direction from point toward the light,
	// the distance to travel along it before reaching the light
	// (math.Inf(1) for a directional light), and whether this light has a
	// directional, shadow-testable component at all. Ambient lights
	// return ok=false: they contribute uniformly, gated by neither N·L
	// nor a shadow feeler.
	DirectionTo(point core.Point) (direction core.Vector, distance float64, ok bool)

	// IntensityAt returns the per-channel intensity this light delivers
	// at point, after any distance or beam-angle falloff.
	IntensityAt(point core.Point) core.Triple
}

// Ambient contributes a constant intensity everywhere, independent of
// surface orientation or visibility.
type Ambient struct {
	Intensity core.Triple
}

func (a Ambient) Type() LightType { return LightTypeAmbient }
func (a Ambient) DirectionTo(core.Point) (core.Vector, float64, bool) {
	return core.Vector{}, 0, false
}
func (a Ambient) IntensityAt(core.Point) core.Triple { return a.Intensity }

// Directional models a light infinitely far away, like the sun: every
// point in the scene sees the same incoming direction and undiminished
// intensity, and a shadow feeler travels to infinity.
type Directional struct {
	// Direction is the direction the light travels (from the light toward
	// the scene), matching how a scene file specifies a sun direction.
	Direction core.Vector
	Intensity core.Triple
}

func (d Directional) Type() LightType { return LightTypeDirectional }
func (d Directional) DirectionTo(core.Point) (core.Vector, float64, bool) {
	return d.Direction.Negate().Normalize(), math.Inf(1), true
}
func (d Directional) IntensityAt(core.Point) core.Triple { return d.Intensity }

// Point is a point light with inverse-square-style falloff governed by
// three attenuation coefficients: attenuation = 1 / (C0 + C1*d + C2*d^2).
// The zero value of Falloff (all zero) is invalid for a Point light;
// NewPoint defaults it to {1, 0, 0} (no attenuation) when left unset.
type Point struct {
	Position  core.Point
	Intensity core.Triple
	Falloff   [3]float64
}

// NewPoint builds a Point light with no distance attenuation
// (Falloff = {1, 0, 0}).
func NewPoint(position core.Point, intensity core.Triple) Point {
	return Point{Position: position, Intensity: intensity, Falloff: [3]float64{1, 0, 0}}
}

// NewPointWithFalloff builds a Point light with explicit attenuation
// coefficients.
func NewPointWithFalloff(position core.Point, intensity core.Triple, falloff [3]float64) Point {
	return Point{Position: position, Intensity: intensity, Falloff: falloff}
}

func (p Point) Type() LightType { return LightTypePoint }

func (p Point) DirectionTo(point core.Point) (core.Vector, float64, bool) {
	toLight, err := p.Position.SubtractSafe(point)
	if err != nil {
		// The shading point coincides with the light; there is no
		// meaningful direction to test.
		return core.Vector{}, 0, false
	}
	return toLight.Normalize(), toLight.Length(), true
}

func (p Point) IntensityAt(point core.Point) core.Triple {
	d := p.Position.Distance(point)
	atten := p.Falloff[0] + p.Falloff[1]*d + p.Falloff[2]*d*d
	if atten <= core.Epsilon {
		return core.Triple{}
	}
	return p.Intensity.Scale(1.0 / atten)
}

// Spot is a point light narrowed into a cone via a cosine-power falloff:
// intensity is scaled by max(0, cos(angle))^Beta, where angle is between
// the spot's aim direction and the direction toward the shading point.
// Beta defaults to 1 (a mild, wide beam); higher values narrow the beam.
type Spot struct {
	Position  core.Point
	Direction core.Vector // direction the spot is aimed, from Position outward
	Intensity core.Triple
	Falloff   [3]float64
	Beta      float64
}

// NewSpot builds a Spot light with no distance attenuation and a beam
// exponent of 1.
func NewSpot(position core.Point, direction core.Vector, intensity core.Triple) Spot {
	return Spot{
		Position:  position,
		Direction: direction.Normalize(),
		Intensity: intensity,
		Falloff:   [3]float64{1, 0, 0},
		Beta:      1,
	}
}

// WithBeta returns a copy of the spot with a narrower or wider beam
// exponent. Values below 1 are clamped to 1, matching the spec's
// "β ≥ 1" constraint.
func (s Spot) WithBeta(beta float64) Spot {
	if beta < 1 {
		beta = 1
	}
	s.Beta = beta
	return s
}

// WithFalloff returns a copy of the spot with explicit distance
// attenuation coefficients.
func (s Spot) WithFalloff(falloff [3]float64) Spot {
	s.Falloff = falloff
	return s
}

func (s Spot) Type() LightType { return LightTypeSpot }

func (s Spot) DirectionTo(point core.Point) (core.Vector, float64, bool) {
	toLight, err := s.Position.SubtractSafe(point)
	if err != nil {
		return core.Vector{}, 0, false
	}
	return toLight.Normalize(), toLight.Length(), true
}

func (s Spot) IntensityAt(point core.Point) core.Triple {
	toPoint, err := point.SubtractSafe(s.Position)
	if err != nil {
		return core.Triple{}
	}
	cosAngle := toPoint.Normalize().Dot(s.Direction)
	if cosAngle <= 0 {
		return core.Triple{}
	}
	beam := math.Pow(cosAngle, s.Beta)

	d := s.Position.Distance(point)
	atten := s.Falloff[0] + s.Falloff[1]*d + s.Falloff[2]*d*d
	if atten <= core.Epsilon {
		return core.Triple{}
	}
	return s.Intensity.Scale(beam / atten)
}
