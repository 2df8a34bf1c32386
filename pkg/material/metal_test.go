package material

import (
	"math/rand"
	"testing"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"
)

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	random := rand.New(rand.NewSource(42))

	// Ray hitting the surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// Incident (0,-1,-1)/√2 reflects to (0,-1,1)/√2
	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_AbsorbsWhenReflectionPointsInward(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	random := rand.New(rand.NewSource(42))

	// Incoming direction parallel to the outward normal: the mirror
	// reflection is the negated normal, whose dot with the normal is -1.
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))

	if _, didScatter := metal.Scatter(rayIn, hit, random); didScatter {
		t.Error("Expected absorption when the reflection points into the surface")
	}
}

func TestMetal_FuzzAbsorbsGrazingRays(t *testing.T) {
	// With maximum fuzz and a grazing reflection, the perturbed
	// direction frequently dips below the surface. Over many trials
	// at least one ray must be absorbed and at least one scattered.
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}
	// Nearly parallel to the surface, so the mirror reflection barely clears it.
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		if _, didScatter := metal.Scatter(rayIn, hit, random); didScatter {
			scattered++
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed at fuzz 1.0")
	}
	if scattered == 0 {
		t.Error("Expected some grazing rays to still scatter")
	}
}

func TestMetal_FuzzPerturbationBounded(t *testing.T) {
	fuzz := 0.3
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), fuzz)
	random := rand.New(rand.NewSource(42))

	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	mirror := core.NewVec3(0, 0, 1)

	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("Head-on reflection with small fuzz should always scatter")
		}
		if scatter.Scattered.Direction.Subtract(mirror).Length() > fuzz+1e-9 {
			t.Fatalf("Perturbation exceeds fuzz radius: %v", scatter.Scattered.Direction)
		}
	}
}
