package boxdraw

import (
	"image"
	"image/color"
	"testing"

	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

var red = color.RGBA{R: 255, A: 255}

func TestDrawBoxesOutline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	DrawBoxes(img, []hocr.BBox{{X0: 10, Y0: 10, X1: 20, Y1: 20}}, red)

	edges := []image.Point{
		{10, 10}, {20, 10}, {10, 20}, {20, 20}, // corners
		{15, 10}, {15, 20}, {10, 15}, {20, 15}, // edge midpoints
	}
	for _, p := range edges {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Errorf("pixel %v: expected outline color", p)
		}
	}
	if got := img.RGBAAt(15, 15); got != (color.RGBA{}) {
		t.Errorf("interior pixel should be untouched, got %v", got)
	}
	if got := img.RGBAAt(9, 9); got != (color.RGBA{}) {
		t.Errorf("exterior pixel should be untouched, got %v", got)
	}
}

func TestDrawBoxesClipsToBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	DrawBoxes(img, []hocr.BBox{{X0: 90, Y0: 90, X1: 150, Y1: 150}}, red)

	if img.RGBAAt(99, 90) != red {
		t.Error("clipped top edge should still be drawn inside bounds")
	}
	if img.RGBAAt(90, 99) != red {
		t.Error("clipped left edge should still be drawn inside bounds")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("blue: got %v", c)
	}

	c, err = ParseColor("#102030")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Errorf("#102030: got %v", c)
	}

	if _, err := ParseColor("bogus"); err == nil {
		t.Error("expected error for unknown color name")
	}
}
