package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/df07/go-tiled-raytracer/pkg/core"
)

func TestPPMHeader(t *testing.T) {
	got := PPMHeader(400, 225)
	expected := "P3\n400 225\n255\n"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFormatPixel(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected string
	}{
		{"black", core.NewVec3(0, 0, 0), "0 0 0"},
		{"white", core.NewVec3(1, 1, 1), "255 255 255"},
		{"sky midpoint", core.NewVec3(0.75, 0.85, 1.0), "191 217 255"},
		{"out of range", core.NewVec3(-2, 0.5, 9), "0 127 255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPixel(tt.color); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAppendPixel(t *testing.T) {
	buf := AppendPixel(nil, core.NewVec3(0, 0, 0))
	buf = AppendPixel(buf, core.NewVec3(0.5, 0.25, 0.75))

	expected := "0 0 0\n127 63 191\n"
	if string(buf) != expected {
		t.Errorf("Expected %q, got %q", expected, string(buf))
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, 1, 2, []byte("1 2 3\n4 5 6\n")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n1 2\n255\n1 2 3\n4 5 6\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}

	if err := WritePPM(failingWriter{}, 1, 1, nil); err == nil {
		t.Error("Expected error from failing writer")
	}
}
