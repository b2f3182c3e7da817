package boxdraw

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

// WriteProofPDF builds a single-page PDF proof sheet: the page image
// at full size with the given boxes stroked over it. The page is sized
// to the image so box pixel coordinates map 1:1 onto PDF points.
func WriteProofPDF(imageData []byte, boxes []hocr.BBox, c color.Color, w io.Writer) error {
	return WriteClassProofPDF(imageData, []ClassBoxes{{Color: c, Boxes: boxes}}, w)
}

// WriteClassProofPDF is the per-class form: each resolved group's
// boxes are stroked in that group's color, in group order.
func WriteClassProofPDF(imageData []byte, groups []ClassBoxes, w io.Writer) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return fmt.Errorf("decode image config: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: float64(cfg.Width), Ht: float64(cfg.Height)})

	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: strings.ToUpper(format)}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(imageData))
	pdf.ImageOptions("page", 0, 0, float64(cfg.Width), float64(cfg.Height), false, opts, 0, "")

	pdf.SetLineWidth(1)
	for _, group := range groups {
		r, g, b, _ := group.Color.RGBA()
		pdf.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
		for _, box := range group.Boxes {
			pdf.Rect(float64(box.X0), float64(box.Y0),
				float64(box.Width()), float64(box.Height()), "D")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("generate proof pdf: %w", err)
	}
	return nil
}
