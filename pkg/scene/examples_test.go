package scene

import (
	"testing"

	"github.com/rayforge/tracer/pkg/core"
)

func TestNewDefaultScene_BuildsWithoutError(t *testing.T) {
	s, err := NewDefaultScene()
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Geometry) == 0 {
		t.Error("expected the default scene to contain geometry")
	}
	if len(s.Lights) == 0 {
		t.Error("expected the default scene to contain lights")
	}
}

func TestNewSphereGridScene_ObjectCountMatchesGridSize(t *testing.T) {
	const n = 4
	s, err := NewSphereGridScene(n)
	if err != nil {
		t.Fatal(err)
	}
	// n*n spheres plus one ground plane.
	if got, want := len(s.Geometry), n*n+1; got != want {
		t.Errorf("expected %d geometry objects, got %d", want, got)
	}
}

func TestNewCornellBoxScene_EnclosesSpheres(t *testing.T) {
	s, err := NewCornellBoxScene()
	if err != nil {
		t.Fatal(err)
	}
	// Five walls plus two spheres.
	if got, want := len(s.Geometry), 7; got != want {
		t.Errorf("expected %d geometry objects, got %d", want, got)
	}

	// A ray fired from inside the box straight up should hit the ceiling.
	ray := core.NewRay(core.NewPoint(0, 1, 0), core.AxisY)
	hits := s.Root.Intersect(ray, 1000)
	if len(hits) == 0 {
		t.Error("expected a ray toward the ceiling to hit an enclosing wall")
	}
}

func TestAllExampleScenes_RejectNothingUnexpected(t *testing.T) {
	builders := []func() (*Scene, error){
		NewDefaultScene,
		func() (*Scene, error) { return NewSphereGridScene(2) },
		NewCornellBoxScene,
	}
	for _, build := range builders {
		if _, err := build(); err != nil {
			t.Errorf("expected example scene to build cleanly, got error: %v", err)
		}
	}
}
