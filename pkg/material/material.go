// Package material defines the Phong reflectance model used by the local
// shading pass: a material is nothing but five per-channel coefficient
// triples plus a shininess exponent.
package material

import "github.com/rayforge/tracer/pkg/core"

// Material holds the coefficients of the Phong illumination law: diffuse
// (KD), specular (KS), ambient (KA), transmission (KT) and reflection
// (KR) reflectance, each a per-channel core.Triple, plus the specular
// exponent N. Every coefficient defaults to zero except KA, which
// defaults to core.White so an unconfigured material still responds to
// the scene's ambient term.
type Material struct {
	KD core.Triple
	KS core.Triple
	KA core.Triple
	KT core.Triple
	KR core.Triple
	N  float64
}

// New returns a Material with KA defaulted to white and every other
// coefficient zero, matching a plain diffuse-less, non-reflective surface
// until the caller configures it further.
func New() Material {
	return Material{KA: core.Uniform(1)}
}

// WithDiffuse sets KD from a scalar, broadcasting it across all three
// channels via core.Uniform.
func (m Material) WithDiffuse(k float64) Material {
	m.KD = core.Uniform(k)
	return m
}

// WithDiffuseTriple sets KD per-channel.
func (m Material) WithDiffuseTriple(k core.Triple) Material {
	m.KD = k
	return m
}

// WithSpecular sets KS and the shininess exponent N together, since a
// specular highlight without an exponent is meaningless.
func (m Material) WithSpecular(k float64, n float64) Material {
	m.KS = core.Uniform(k)
	m.N = n
	return m
}

// WithSpecularTriple sets KS per-channel and the shininess exponent N.
func (m Material) WithSpecularTriple(k core.Triple, n float64) Material {
	m.KS = k
	m.N = n
	return m
}

// WithAmbient sets KA from a scalar, overriding the New() default.
func (m Material) WithAmbient(k float64) Material {
	m.KA = core.Uniform(k)
	return m
}

// WithAmbientTriple sets KA per-channel.
func (m Material) WithAmbientTriple(k core.Triple) Material {
	m.KA = k
	return m
}

// WithTransmission sets KT, the straight-through refraction coefficient.
func (m Material) WithTransmission(k float64) Material {
	m.KT = core.Uniform(k)
	return m
}

// WithTransmissionTriple sets KT per-channel.
func (m Material) WithTransmissionTriple(k core.Triple) Material {
	m.KT = k
	return m
}

// WithReflection sets KR, the mirror-reflection coefficient.
func (m Material) WithReflection(k float64) Material {
	m.KR = core.Uniform(k)
	return m
}

// WithReflectionTriple sets KR per-channel.
func (m Material) WithReflectionTriple(k core.Triple) Material {
	m.KR = k
	return m
}

// IsReflective reports whether any channel of KR is nonzero, the gate the
// raytracer uses to decide whether to spawn a reflection ray at all.
func (m Material) IsReflective() bool {
	return !m.KR.IsZero()
}

// IsTransmissive reports whether any channel of KT is nonzero, the gate
// the raytracer uses to decide whether to spawn a transmission ray.
func (m Material) IsTransmissive() bool {
	return !m.KT.IsZero()
}
