package core

import "math/rand"

// HitRecord contains information about a ray-object intersection.
// It is only valid after a successful Hit and is never shared
// between integrator invocations.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit-length outward surface normal
	Material Material // Material of the hit object
}

// Hittable is any surface a ray can intersect. Hit reports the
// nearest intersection with a parameter inside t, or false if the
// surface is missed within that interval.
type Hittable interface {
	Hit(ray Ray, t Interval) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray, originating at the hit point
	Attenuation Vec3 // Color attenuation applied to descendant light
}

// Material decides how a surface responds to an incoming ray:
// either a scattered ray with an attenuation, or full absorption
// (second return false).
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}
