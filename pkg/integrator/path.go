package integrator

import (
	"math"
	"math/rand"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"
)

// hitEpsilon culls hits too near the ray origin, which would
// otherwise re-intersect the surface a bounced ray just left
// ("shadow acne").
const hitEpsilon = 0.001

// Scene is the minimal view of a scene the integrator needs.
type Scene interface {
	Objects() []core.Hittable
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// PathIntegrator resolves the radiance carried by a ray by recursively
// bouncing it off scene surfaces until the bounce budget runs out, the
// ray escapes to the background, or a material absorbs it.
type PathIntegrator struct{}

// NewPathIntegrator creates a new path integrator
func NewPathIntegrator() *PathIntegrator {
	return &PathIntegrator{}
}

// RayColor computes the color carried by a ray. bouncesRemaining bounds
// the recursion depth exactly; every path terminates in a definite color.
func (pi *PathIntegrator) RayColor(ray core.Ray, bouncesRemaining int, scene Scene, random *rand.Rand) core.Vec3 {
	if bouncesRemaining <= 0 {
		// No bounces left: terminate the ray without any color.
		return core.Vec3{}
	}

	// Linear scan over all objects, shrinking the interval's upper
	// bound so only nearer hits can overwrite the record.
	var nearest *core.HitRecord
	interval := core.NewInterval(hitEpsilon, math.Inf(1))
	for _, object := range scene.Objects() {
		if hit, isHit := object.Hit(ray, interval); isHit {
			nearest = hit
			interval.Max = hit.T
		}
	}

	if nearest == nil {
		// Ray escaped the scene.
		return pi.backgroundGradient(ray, scene)
	}

	scatter, didScatter := nearest.Material.Scatter(ray, *nearest, random)
	if !didScatter {
		// Material completely absorbed the ray.
		return core.Vec3{}
	}

	// Each bounce filters light multiplicatively: the componentwise
	// product of the attenuation and the descendant color.
	descendantColor := pi.RayColor(scatter.Scattered, bouncesRemaining-1, scene, random)
	return scatter.Attenuation.MultiplyVec(descendantColor)
}

// backgroundGradient returns the sky color for a ray that escaped the
// scene, interpolated bottom-to-top on the ray direction's Y component.
func (pi *PathIntegrator) backgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.BackgroundColors()
	unitDirection := r.Direction.Normalize()

	// The legacy gradient weight 0.5*y + 1.0 exceeds 1 for upward
	// rays and extrapolates past the top color. Kept as-is for
	// output compatibility with existing renders.
	weight := 0.5*unitDirection.Y + 1.0
	return bottomColor.Lerp(topColor, weight)
}
