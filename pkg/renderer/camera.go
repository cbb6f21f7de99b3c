package renderer

import (
	"fmt"
	"math/rand"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/imagesink"
	"github.com/rayforge/tracer/pkg/scene"
)

// defaultMaxRecursion is the reflection/transmission recursion cutoff a
// camera's ray tracer uses when none is configured explicitly.
const defaultMaxRecursion = 10

// defaultTileSize is the tile edge length RenderImage partitions the
// image into for worker dispatch.
const defaultTileSize = 32

// dofConfig holds an opt-in thin-lens depth-of-field configuration:
// focal distance F, aperture A, and sample count K.
type dofConfig struct {
	F float64
	A float64
	K int
}

// Camera generates primary rays from a location, an orthonormal
// forward/up/right basis, and a viewport of width W and height H held
// at distance D in front of the location, mapped onto an Nx x Ny pixel
// grid. Its basis and viewport are fixed at construction; RayForPixel
// never recomputes them.
type Camera struct {
	location core.Point
	to       core.Vector // v_to: unit forward
	up       core.Vector // v_up: unit up
	right    core.Vector // v_right = v_to x v_up

	viewportWidth, viewportHeight float64
	viewportDistance              float64
	resX, resY                    int
	threads                       int
	maxRecursion                  int
	tileSize                      int

	dof *dofConfig

	rtScene *scene.Scene
	rtKind  string
}

// Builder assembles a Camera through a fluent, validating API matching
// the named camera-builder options: location, direction, viewport
// size/distance, resolution, multithreading, depth of field, and the
// ray tracer RenderImage should drive. Every With* call is infallible;
// Build performs the validation that can actually fail.
type Builder struct {
	location core.Point

	to           core.Vector
	toSet        bool
	lookAtTarget core.Point
	lookAtSet    bool
	up           core.Vector
	upSet        bool

	viewportWidth, viewportHeight float64
	viewportDistance              float64
	resX, resY                    int
	threads                       int
	maxRecursion                  int
	tileSize                      int

	dof *dofConfig

	rtScene *scene.Scene
	rtKind  string
}

// NewBuilder starts camera assembly at the origin looking down -Z with
// +Y up, a 2x2 viewport held one unit away, a 100x100 resolution and no
// depth of field — a plausible default for every With* call a caller
// skips.
func NewBuilder() *Builder {
	return &Builder{
		location:         core.NewPoint(0, 0, 0),
		to:               core.MustVector(0, 0, -1),
		toSet:            true,
		up:               core.AxisY,
		upSet:            true,
		viewportWidth:    2,
		viewportHeight:   2,
		viewportDistance: 1,
		resX:             100,
		resY:             100,
		maxRecursion:     defaultMaxRecursion,
		tileSize:         defaultTileSize,
	}
}

// WithLocation sets Pc, the camera's eye position.
func (b *Builder) WithLocation(p core.Point) *Builder {
	b.location = p
	return b
}

// WithDirection sets the forward direction directly (v_to) together
// with the up hint. Mutually exclusive with WithLookAt; whichever is
// called last wins.
func (b *Builder) WithDirection(to core.Vector, up core.Vector) *Builder {
	b.to = to
	b.toSet = true
	b.lookAtSet = false
	b.up = up
	b.upSet = true
	return b
}

// WithLookAt sets the forward direction as the vector from the
// location (as it stands at Build time) toward target, together with
// the up hint. Mutually exclusive with WithDirection; whichever is
// called last wins.
func (b *Builder) WithLookAt(target core.Point, up core.Vector) *Builder {
	b.lookAtTarget = target
	b.lookAtSet = true
	b.toSet = false
	b.up = up
	b.upSet = true
	return b
}

// WithViewportSize sets the viewport's world-space width and height.
func (b *Builder) WithViewportSize(w, h float64) *Builder {
	b.viewportWidth = w
	b.viewportHeight = h
	return b
}

// WithViewportDistance sets D, the distance from the location to the
// viewport plane along v_to.
func (b *Builder) WithViewportDistance(d float64) *Builder {
	b.viewportDistance = d
	return b
}

// WithResolution sets the image resolution (Nx columns, Ny rows).
func (b *Builder) WithResolution(nx, ny int) *Builder {
	b.resX = nx
	b.resY = ny
	return b
}

// WithMultithreading sets the worker count T; 0 means single-threaded.
func (b *Builder) WithMultithreading(t int) *Builder {
	b.threads = t
	return b
}

// WithDepthOfField opts into thin-lens depth of field: focal distance
// F, aperture A, and K jittered samples per pixel.
func (b *Builder) WithDepthOfField(f, a float64, k int) *Builder {
	b.dof = &dofConfig{F: f, A: a, K: k}
	return b
}

// WithMaxRecursion overrides the reflection/transmission recursion
// cutoff RenderImage's ray tracer uses (default 10).
func (b *Builder) WithMaxRecursion(n int) *Builder {
	b.maxRecursion = n
	return b
}

// WithTileSize overrides the tile edge length RenderImage partitions
// the image into for worker dispatch (default 32).
func (b *Builder) WithTileSize(n int) *Builder {
	b.tileSize = n
	return b
}

// WithRayTracer attaches the scene RenderImage will trace rays
// through and the tracer kind to use. "simple" (the recursive Whitted
// tracer in this package) is the only recognized kind.
func (b *Builder) WithRayTracer(s *scene.Scene, kind string) *Builder {
	b.rtScene = s
	b.rtKind = kind
	return b
}

// Build validates the assembled camera and returns it. Fails if the
// forward/up basis isn't orthogonal, the viewport or its distance
// isn't positive, the resolution isn't positive, or an unrecognized
// ray tracer kind was requested.
func (b *Builder) Build() (*Camera, error) {
	if !b.toSet && !b.lookAtSet {
		return nil, fmt.Errorf("renderer: camera has no direction; call WithDirection or WithLookAt")
	}
	if !b.upSet {
		return nil, fmt.Errorf("renderer: camera has no up vector; call WithDirection or WithLookAt")
	}

	var to core.Vector
	if b.lookAtSet {
		raw, err := b.lookAtTarget.SubtractSafe(b.location)
		if err != nil {
			return nil, fmt.Errorf("renderer: camera location and look-at target coincide")
		}
		to = raw.Normalize()
	} else {
		to = b.to.Normalize()
	}
	up := b.up.Normalize()

	if !core.IsZero(to.Dot(up)) {
		return nil, fmt.Errorf("renderer: camera forward and up vectors are not orthogonal")
	}
	right := to.Cross(up)

	if b.viewportWidth <= 0 || b.viewportHeight <= 0 {
		return nil, fmt.Errorf("renderer: camera viewport size must be positive, got %gx%g", b.viewportWidth, b.viewportHeight)
	}
	if b.viewportDistance <= 0 {
		return nil, fmt.Errorf("renderer: camera viewport distance must be positive, got %g", b.viewportDistance)
	}
	if b.resX <= 0 || b.resY <= 0 {
		return nil, fmt.Errorf("renderer: camera resolution must be positive, got %dx%d", b.resX, b.resY)
	}
	if b.rtScene != nil && b.rtKind != "simple" {
		return nil, fmt.Errorf("renderer: unrecognized ray tracer kind %q", b.rtKind)
	}

	return &Camera{
		location:         b.location,
		to:               to,
		up:               up,
		right:            right,
		viewportWidth:    b.viewportWidth,
		viewportHeight:   b.viewportHeight,
		viewportDistance: b.viewportDistance,
		resX:             b.resX,
		resY:             b.resY,
		threads:          b.threads,
		maxRecursion:     b.maxRecursion,
		tileSize:         b.tileSize,
		dof:              b.dof,
		rtScene:          b.rtScene,
		rtKind:           b.rtKind,
	}, nil
}

// Resolution returns the camera's image resolution (Nx, Ny).
func (c *Camera) Resolution() (int, int) {
	return c.resX, c.resY
}

// Threads returns the configured worker count (0 = single-threaded).
func (c *Camera) Threads() int {
	return c.threads
}

// RayForPixel builds the primary ray through pixel (i, j): row j
// top-to-bottom, column i left-to-right, over the camera's own
// resolution.
//
//	Pc_center = Pc + D*v_to
//	Rx = W/Nx ; Ry = H/Ny
//	xi =  (i - (Nx-1)/2) * Rx
//	yj = -(j - (Ny-1)/2) * Ry
//	Pij = Pc_center + xi*v_right + yj*v_up
//	direction = normalize(Pij - Pc)
//
// When depth of field is configured and rnd is non-nil, the ray
// origin is instead a jittered sample on the lens disk, aimed at the
// focal point of this un-jittered primary ray.
func (c *Camera) RayForPixel(i, j int, rnd *rand.Rand) core.Ray {
	center := c.location.Add(c.to.Scale(c.viewportDistance))
	rx := c.viewportWidth / float64(c.resX)
	ry := c.viewportHeight / float64(c.resY)
	xi := (float64(i) - float64(c.resX-1)/2) * rx
	yj := -(float64(j) - float64(c.resY-1)/2) * ry

	pij := center.Add(c.right.Scale(xi)).Add(c.up.Scale(yj))
	direction := c.to
	if raw, err := pij.SubtractSafe(c.location); err == nil {
		direction = raw.Normalize()
	}
	primary := core.NewRay(c.location, direction)

	if c.dof == nil || rnd == nil {
		return primary
	}
	return c.jitterForDepthOfField(primary, rnd)
}

// jitterForDepthOfField implements the thin-lens construction: the
// focal point sits along the primary ray's direction at the distance
// that puts it F away from the lens plane (measured along v_to), then
// a fresh ray is cast from a disk-jittered origin on the lens toward
// that fixed focal point.
func (c *Camera) jitterForDepthOfField(primary core.Ray, rnd *rand.Rand) core.Ray {
	cosAngle := primary.Direction.Dot(c.to)
	if cosAngle <= core.Epsilon {
		return primary
	}
	focalDistance := c.dof.F / cosAngle
	focalPoint := primary.Origin.Add(primary.Direction.Scale(focalDistance))

	lx, ly := sampleUnitDisk(rnd)
	radius := c.dof.A / 2
	origin := c.location.Add(c.right.Scale(lx * radius)).Add(c.up.Scale(ly * radius))

	direction, err := focalPoint.SubtractSafe(origin)
	if err != nil {
		return primary
	}
	return core.NewRay(origin, direction.Normalize())
}

func sampleUnitDisk(rnd *rand.Rand) (x, y float64) {
	for {
		x = 2*rnd.Float64() - 1
		y = 2*rnd.Float64() - 1
		if x*x+y*y < 1 {
			return x, y
		}
	}
}

// RenderImage drives the camera's attached ray tracer (see
// WithRayTracer) across a worker pool sized by Threads (a single worker
// when Threads is 0), writing every
// pixel of the camera's resolution into sink. The depth-of-field
// sample count comes from WithDepthOfField's K, or 1 primary sample
// per pixel when depth of field isn't configured.
func (c *Camera) RenderImage(sink imagesink.ImageSink) error {
	if c.rtScene == nil {
		return fmt.Errorf("renderer: camera has no ray tracer; call WithRayTracer before Build")
	}
	samples := 1
	if c.dof != nil && c.dof.K > 0 {
		samples = c.dof.K
	}
	rt := NewRaytracer(c.rtScene, c.maxRecursion)
	workers := c.threads
	if workers <= 0 {
		workers = 1
	}
	pool := NewWorkerPool(c, rt, sink, samples, workers, nil)
	pool.Render(c.tileSize)
	return nil
}
