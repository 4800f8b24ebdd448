package geometry

import "github.com/df07/go-tiled-raytracer/pkg/core"

// HittableList is an ordered collection of shapes tested by linear scan.
// It is built once and then only read, so a single list can be shared by
// every render worker without locking.
type HittableList struct {
	shapes []Shape
}

// NewHittableList creates a list holding the given shapes in order
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{shapes: make([]Shape, 0, len(shapes))}
	list.shapes = append(list.shapes, shapes...)
	return list
}

// Add appends a shape. Only call while building the scene.
func (l *HittableList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.shapes)
}

// Shapes returns a copy of the shapes in insertion order
func (l *HittableList) Shapes() []Shape {
	shapes := make([]Shape, len(l.shapes))
	copy(shapes, l.shapes)
	return shapes
}

// Hit finds the closest intersection among all shapes within rayT.
// After every hit the upper bound shrinks to that hit's t, so later shapes
// can only replace it with something nearer.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, hit *HitRecord) bool {
	var tempHit HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, shape := range l.shapes {
		if shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), &tempHit) {
			hitAnything = true
			closestSoFar = tempHit.T
			*hit = tempHit
		}
	}

	return hitAnything
}
