package core

import "math/rand"

// Sampling helpers take an explicit *rand.Rand so that every render
// worker owns its own deterministic source; nothing in this package
// touches the process-global generator.

// RandomInRange returns a uniformly distributed value in [min, max)
func RandomInRange(i Interval, random *rand.Rand) float64 {
	return i.Min + (i.Max-i.Min)*random.Float64()
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		// Accept if inside unit sphere
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random point on the unit sphere surface
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}
