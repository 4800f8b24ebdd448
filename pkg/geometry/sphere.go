package geometry

import (
	"math"

	"github.com/df07/go-tiled-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. Radius must be positive; the scene
// builders reject anything else before construction.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, hit *HitRecord) bool {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Half-angle form of the quadratic: roots are (h ± sqrt(h²-ac)) / a
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	hit.T = root
	hit.Point = ray.At(root)

	// Dividing by the radius gives a unit normal without a sqrt
	outwardNormal := hit.Point.Subtract(s.Center).Divide(s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return true
}
