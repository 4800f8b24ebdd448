package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-tiled-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	var hit HitRecord
	if sphere.Hit(ray, core.NewInterval(0.001, 1000.0), &hit) {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			var hit HitRecord
			if !sphere.Hit(ray, core.NewInterval(0.001, 1000.0), &hit) {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	var hit HitRecord
	if !sphere.Hit(ray, core.NewInterval(0.001, 1000.0), &hit) {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	var hit HitRecord

	// Test tMax bound
	if sphere.Hit(ray, core.NewInterval(0.001, 0.5), &hit) {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	if sphere.Hit(ray, core.NewInterval(3.5, 1000.0), &hit) {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Bounds are exclusive: a root sitting exactly on tMax is rejected
	if sphere.Hit(ray, core.NewInterval(0, 1.0), &hit) {
		t.Errorf("Expected miss with root on the open upper bound, got t=%f", hit.T)
	}

	// Near root excluded, far root admitted
	if !sphere.Hit(ray, core.NewInterval(1.5, 1000.0), &hit) {
		t.Fatal("Expected far intersection to be found")
	}
	if math.Abs(hit.T-3.0) > 1e-9 || hit.FrontFace {
		t.Errorf("Expected back face hit at t=3, got t=%f front=%t", hit.T, hit.FrontFace)
	}
}

func TestSphere_Hit_MissLeavesRecordUntouched(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	hit := HitRecord{T: 42, FrontFace: true, Normal: core.NewVec3(1, 0, 0)}
	before := hit
	if sphere.Hit(ray, core.Universe, &hit) {
		t.Fatal("Expected miss")
	}
	if hit != before {
		t.Errorf("Expected record to be unchanged, got %+v", hit)
	}
}

func TestSphere_Hit_RandomRaysProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(0.3, -0.2, -2), 0.75)

	hits := 0
	for i := 0; i < 2000; i++ {
		origin := core.RandomVec3InRange(random, -3, 3)
		direction := core.RandomVec3InRange(random, -1, 1)
		ray := core.NewRay(origin, direction)

		var hit HitRecord
		if !sphere.Hit(ray, core.NewInterval(0, math.Inf(1)), &hit) {
			continue
		}
		hits++

		distance := hit.Point.Subtract(sphere.Center).Length()
		if math.Abs(distance-sphere.Radius) > 1e-9 {
			t.Fatalf("Hit point %v is %f from center, expected radius %f", hit.Point, distance, sphere.Radius)
		}
		if hit.Normal.Dot(ray.Direction) > 0 {
			t.Fatalf("Normal %v faces along ray direction %v", hit.Normal, ray.Direction)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit normal, got length %f", hit.Normal.Length())
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least some random rays to hit the sphere")
	}
}
