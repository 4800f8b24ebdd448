package renderer

import (
	"image"
	"math/rand"
)

// Band is a horizontal slice of image rows rendered by one worker
type Band struct {
	ID     int             // Band index; also the output slot
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1), always full width
	Random *rand.Rand      // Band-private generator, never shared between workers
}

// NewBand creates a band with its own generator seeded from seed and the band ID
func NewBand(id int, bounds image.Rectangle, seed int64) *Band {
	return &Band{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(seed + int64(id))),
	}
}

// Rows returns the number of image rows in the band
func (b *Band) Rows() int {
	return b.Bounds.Dy()
}

// NewBandGrid splits the image rows into numBands contiguous bands of equal
// height, the last band taking any remainder. numBands is clamped to
// [1, height] so no band is empty.
//
// Only rows are split. Splitting columns as well would need per-row
// stitching of the text output and is not implemented.
func NewBandGrid(width, height, numBands int, seed int64) []*Band {
	numBands = max(1, min(numBands, height))
	bandHeight := height / numBands

	bands := make([]*Band, 0, numBands)
	for id := 0; id < numBands; id++ {
		y0 := id * bandHeight
		y1 := y0 + bandHeight
		if id == numBands-1 {
			y1 = height
		}
		bands = append(bands, NewBand(id, image.Rect(0, y0, width, y1), seed))
	}

	return bands
}
