package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rayforge/tracer/pkg/core"
	"github.com/rayforge/tracer/pkg/imagesink"
)

// Tile is a rectangular, non-overlapping region of the output image.
type Tile struct {
	Bounds image.Rectangle
}

// tiles partitions a width x height image into roughly tileSize-square
// tiles, row-major, matching the order a single-threaded renderer would
// visit pixels in.
func tiles(width, height, tileSize int) []Tile {
	var result []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			result = append(result, Tile{Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height))})
		}
	}
	return result
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// WorkerPool renders a scene's tiles across a fixed number of worker
// goroutines, each pulling from a shared channel of tiles until it's
// drained or the pool is stopped. Unlike a typical progressive renderer,
// each tile is rendered exactly once at full sample count; there is no
// incremental refinement pass.
type WorkerPool struct {
	camera          *Camera
	raytracer       *Raytracer
	sink            imagesink.ImageSink
	width, height   int
	samplesPerPixel int
	numWorkers      int
	logger          Logger
	cancelled       atomic.Bool
}

// NewWorkerPool builds a pool that will render camera's own resolution
// through raytracer into sink, taking samplesPerPixel samples per pixel
// for depth-of-field super-sampling. numWorkers<=0 defaults to
// runtime.NumCPU().
func NewWorkerPool(camera *Camera, rt *Raytracer, sink imagesink.ImageSink, samplesPerPixel, numWorkers int, logger Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	width, height := camera.Resolution()
	return &WorkerPool{
		camera:          camera,
		raytracer:       rt,
		sink:            sink,
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
		numWorkers:      numWorkers,
		logger:          logger,
	}
}

// Cancel requests that in-flight and queued tiles stop rendering as soon
// as the next tile boundary is reached. Safe to call from any goroutine.
func (wp *WorkerPool) Cancel() {
	wp.cancelled.Store(true)
}

// Render dispatches every tile across the worker pool and blocks until
// all tiles are either rendered or the pool is cancelled.
func (wp *WorkerPool) Render(tileSize int) {
	work := tiles(wp.width, wp.height, tileSize)
	taskQueue := make(chan Tile, len(work))
	for _, tile := range work {
		taskQueue <- tile
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go wp.worker(&wg, taskQueue)
	}
	wg.Wait()
	wp.logger.Printf("rendered %d tiles across %d workers\n", len(work), wp.numWorkers)
}

func (wp *WorkerPool) worker(wg *sync.WaitGroup, taskQueue <-chan Tile) {
	defer wg.Done()
	// math/rand.Rand is not safe for concurrent use; each worker owns an
	// independently seeded generator rather than sharing one.
	rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(len(taskQueue))))
	for tile := range taskQueue {
		if wp.cancelled.Load() {
			return
		}
		wp.renderTile(tile, rnd)
	}
}

func (wp *WorkerPool) renderTile(tile Tile, rnd *rand.Rand) {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			wp.sink.WritePixel(x, y, wp.samplePixel(x, y, rnd))
		}
	}
}

// samplePixel averages samplesPerPixel camera samples, each independently
// jittered across the lens for thin-lens depth of field, into a single
// pixel color.
func (wp *WorkerPool) samplePixel(x, y int, rnd *rand.Rand) core.Color {
	accum := core.Black
	n := wp.samplesPerPixel
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		ray := wp.camera.RayForPixel(x, y, rnd)
		accum = accum.Add(wp.raytracer.RayColor(ray))
	}
	return accum.Reduce(float64(n))
}
