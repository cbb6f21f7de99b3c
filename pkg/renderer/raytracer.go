package renderer

import (
	"math"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/geometry"
	"github.com/rayforge/tracer/pkg/material"
	"github.com/rayforge/tracer/pkg/scene"
)

// Raytracer owns a scene and the maximum recursion depth, and answers the
// single question every camera ray asks: what color does this ray see.
// A Raytracer is stateless across calls, so one instance can be shared by
// every worker goroutine.
type Raytracer struct {
	Scene    *scene.Scene
	MaxDepth int
}

// NewRaytracer builds a Raytracer over the given scene.
func NewRaytracer(s *scene.Scene, maxDepth int) *Raytracer {
	return &Raytracer{Scene: s, MaxDepth: maxDepth}
}

// RayColor traces ray through the scene, returning the background color
// on a miss and otherwise the sum of local Phong shading, emission,
// mirror reflection and straight-through transmission.
func (rt *Raytracer) RayColor(ray core.Ray) core.Color {
	return rt.rayColor(ray, 0, core.Uniform(1))
}

func (rt *Raytracer) rayColor(ray core.Ray, depth int, attenuation core.Triple) core.Color {
	if depth > rt.MaxDepth || attenuation.MaxChannel() < core.KMin {
		return core.Black
	}

	hits := rt.Scene.Root.Intersect(ray, math.Inf(1))
	hit, ok := core.ClosestPositive(hits)
	if !ok {
		return rt.Scene.Background
	}
	geom, ok := hit.Object.(geometry.Geometry)
	if !ok {
		return rt.Scene.Background
	}

	mat := geom.Material()
	normal := geom.NormalAt(hit.Point)
	viewDir := ray.Direction.Negate()

	color := rt.localShading(hit.Point, normal, viewDir, mat).Add(geom.Emission())

	if mat.IsReflective() {
		reflectDir := reflect(ray.Direction, normal)
		offset := normal
		if reflectDir.Dot(normal) < 0 {
			offset = normal.Negate()
		}
		reflectRay := core.NewRay(hit.Point.Add(offset.Scale(core.KMin)), reflectDir)
		bounced := rt.rayColor(reflectRay, depth+1, attenuation.Multiply(mat.KR))
		color = color.Add(bounced.ScaleTriple(mat.KR))
	}
	if mat.IsTransmissive() {
		transRay := core.NewRay(hit.Point.Add(ray.Direction.Scale(core.KMin)), ray.Direction)
		transmitted := rt.rayColor(transRay, depth+1, attenuation.Multiply(mat.KT))
		color = color.Add(transmitted.ScaleTriple(mat.KT))
	}
	return color
}

// localShading sums the Phong contribution of every light in the scene.
// A light with no directional component (Ambient) contributes KA*intensity
// unconditionally. A directional light is gated by the same-side test:
// if N·L and N·V disagree in sign, the viewer and the light are on
// opposite faces of the surface and the light contributes nothing.
func (rt *Raytracer) localShading(point core.Point, normal core.Vector, viewDir core.Vector, mat material.Material) core.Color {
	result := core.Black
	nv := normal.Dot(viewDir)

	for _, light := range rt.Scene.Lights {
		intensity := light.IntensityAt(point)
		dir, distance, ok := light.DirectionTo(point)
		if !ok {
			result = result.Add(tripleToColor(mat.KA.Multiply(intensity)))
			continue
		}

		nl := normal.Dot(dir)
		if !sameSign(nl, nv) {
			continue
		}
		absNL := math.Abs(nl)
		if absNL <= core.Epsilon {
			continue
		}

		shadingNormal := normal
		if nl < 0 {
			shadingNormal = normal.Negate()
		}

		ktr := rt.shadowTransparency(point, shadingNormal, dir, distance)
		if ktr.IsZero() {
			continue
		}

		diffuse := mat.KD.Scale(absNL)
		reflectDir := reflect(dir.Negate(), shadingNormal)
		var specular core.Triple
		if rv := reflectDir.Dot(viewDir); rv > 0 && mat.N > 0 {
			specular = mat.KS.Scale(math.Pow(rv, mat.N))
		}

		contribution := diffuse.Add(specular).Multiply(intensity).Multiply(ktr)
		result = result.Add(tripleToColor(contribution))
	}
	return result
}

// shadowTransparency casts a feeler from point toward the light, offset
// along the shading normal by K_MIN to avoid immediately re-hitting the
// surface that produced point. Each blocker along the way multiplies the
// running transparency by its own KT; an opaque blocker (KT all zero)
// short-circuits to full shadow.
func (rt *Raytracer) shadowTransparency(point core.Point, normal core.Vector, dirToLight core.Vector, distance float64) core.Triple {
	maxDistance := distance - core.KMin
	if maxDistance <= core.Epsilon {
		return core.Uniform(1)
	}
	origin := point.Add(normal.Scale(core.KMin))
	shadowRay := core.NewRay(origin, dirToLight)

	ktr := core.Uniform(1)
	for _, hit := range rt.Scene.Root.Intersect(shadowRay, maxDistance) {
		if hit.T <= core.Epsilon {
			continue
		}
		geom, ok := hit.Object.(geometry.Geometry)
		if !ok {
			continue
		}
		blockerMat := geom.Material()
		if !blockerMat.IsTransmissive() {
			return core.Triple{}
		}
		ktr = ktr.Multiply(blockerMat.KT)
		if ktr.IsZero() {
			return core.Triple{}
		}
	}
	return ktr
}

// reflect mirrors incident about normal: r = d - 2*(d·n)*n.
func reflect(incident, normal core.Vector) core.Vector {
	return incident.Add(normal.Scale(-2 * incident.Dot(normal)))
}

func sameSign(a, b float64) bool {
	if a == 0 || b == 0 {
		return true
	}
	return (a > 0) == (b > 0)
}

func tripleToColor(t core.Triple) core.Color {
	return core.NewColor(t.R, t.G, t.B)
}
