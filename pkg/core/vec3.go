package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector. It is used interchangeably as a point, a
// direction and an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector has no direction and yields the zero vector.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return v.Divide(length)
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// ToRGB converts a linear color to 8-bit channels. Components are clamped to
// [0, 0.999] before scaling by 255.999 and truncated, so no channel can
// overflow to 256.
func (v Vec3) ToRGB() (r, g, b uint8) {
	c := v.Clamp(0.0, 0.999).Multiply(255.999)
	return uint8(c.X), uint8(c.Y), uint8(c.Z)
}

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{random.Float64(), random.Float64(), random.Float64()}
}

// RandomVec3InRange returns a vector with each component uniform in [min, max)
func RandomVec3InRange(random *rand.Rand, minVal, maxVal float64) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3InRange(random, -1, 1)
		lensq := p.LengthSquared()
		// Tiny vectors lose too much precision when normalized
		if 1e-160 < lensq && lensq <= 1.0 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomOnHemisphere returns a random unit vector in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	onUnitSphere := RandomUnitVector(random)
	if onUnitSphere.Dot(normal) > 0.0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}
