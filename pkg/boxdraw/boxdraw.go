// Package boxdraw renders hOCR bounding boxes onto raster page images
// and PDF proof sheets, for visually checking OCR geometry against the
// source scan.
//
// Boxes are interpreted in the image's native pixel coordinate space:
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right corner
// of an outlined rectangle, with no scaling or offset applied. Drawing
// mutates the given image in place.
//
// Main Functions:
//
// - DrawBoxes: stroke box outlines onto an image
// - Preview: draw every boxed element of an hOCR file and display it
// - Mark: draw per-class boxes in per-class colors, optionally labeled
// - WriteProofPDF: embed the page image and boxes into a PDF
package boxdraw

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

// DrawBoxes strokes a one-pixel outline for each box onto the image,
// clipped to the image bounds. The image is mutated in place.
func DrawBoxes(img draw.Image, boxes []hocr.BBox, c color.Color) {
	for _, b := range boxes {
		drawRect(img, b, c)
	}
}

func drawRect(img draw.Image, b hocr.BBox, c color.Color) {
	bounds := img.Bounds()
	for x := max(b.X0, bounds.Min.X); x <= b.X1 && x < bounds.Max.X; x++ {
		setIfInside(img, bounds, x, b.Y0, c)
		setIfInside(img, bounds, x, b.Y1, c)
	}
	for y := max(b.Y0, bounds.Min.Y); y <= b.Y1 && y < bounds.Max.Y; y++ {
		setIfInside(img, bounds, b.X0, y, c)
		setIfInside(img, bounds, b.X1, y, c)
	}
}

func setIfInside(img draw.Image, bounds image.Rectangle, x, y int, c color.Color) {
	if image.Pt(x, y).In(bounds) {
		img.Set(x, y, c)
	}
}
