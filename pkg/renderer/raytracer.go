package renderer

import (
	"math"

	"github.com/df07/go-tiled-raytracer/pkg/core"
	"github.com/df07/go-tiled-raytracer/pkg/geometry"
)

var (
	skyBottomColor = core.NewVec3(1.0, 1.0, 1.0) // White at the horizon
	skyTopColor    = core.NewVec3(0.5, 0.7, 1.0) // Blue overhead
)

// RayColor returns the color seen along a ray: a visualisation of the
// surface normal when something is hit, otherwise the sky gradient.
func RayColor(r core.Ray, world geometry.Shape) core.Vec3 {
	var hit geometry.HitRecord
	if world.Hit(r, core.NewInterval(0, math.Inf(1)), &hit) {
		// Map each normal component from [-1,1] to [0,1]
		return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	}

	return backgroundGradient(r)
}

// backgroundGradient returns a gradient color based on ray direction
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*bottom + a*top
	return skyBottomColor.Multiply(1.0 - a).Add(skyTopColor.Multiply(a))
}
