package geometry

import (
	"math"

	"github.com/hamedsabri/RayTracingInOneWeekend/pkg/core"
)

// Sphere represents a sphere shape. Radius must be positive; a
// degenerate radius is not validated here.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere within the parameter
// interval. The interval's lower bound is exclusive, so a root exactly
// at the previous bounce's exit point is rejected.
func (s *Sphere) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !t.Surrounds(root) {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if !t.Surrounds(root) {
			// Both intersections are outside valid range
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal, unit length by construction since radius > 0
	hitRecord.Normal = hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return hitRecord, true
}
