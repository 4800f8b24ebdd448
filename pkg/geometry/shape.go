package geometry

import "github.com/df07/go-tiled-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray approached from outside the surface
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is anything a ray can hit. Hit reports whether the ray intersects
// the shape at some t strictly inside rayT and, if so, fills hit.
// Implementations must leave hit untouched on a miss and must be safe for
// concurrent use once constructed.
type Shape interface {
	Hit(ray core.Ray, rayT core.Interval, hit *HitRecord) bool
}
