package renderer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-tiled-raytracer/pkg/core"
)

// PPM header constants for the plain-text P3 format
const (
	ppmMagic    = "P3"
	ppmMaxValue = 255
)

// PPMHeader returns the three header lines of a P3 image
func PPMHeader(width, height int) string {
	return fmt.Sprintf("%s\n%d %d\n%d\n", ppmMagic, width, height, ppmMaxValue)
}

// AppendPixel appends one "r g b\n" line for color to buf
func AppendPixel(buf []byte, color core.Vec3) []byte {
	r, g, b := color.ToRGB()
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, '\n')
}

// FormatPixel returns the pixel line for color without the trailing newline
func FormatPixel(color core.Vec3) string {
	line := AppendPixel(nil, color)
	return string(line[:len(line)-1])
}

// WritePPM writes the header followed by the already formatted pixel lines
func WritePPM(w io.Writer, width, height int, pixels []byte) error {
	if _, err := io.WriteString(w, PPMHeader(width, height)); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	if _, err := w.Write(pixels); err != nil {
		return fmt.Errorf("writing ppm pixels: %w", err)
	}
	return nil
}
