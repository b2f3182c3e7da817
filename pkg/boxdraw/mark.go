package boxdraw

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

// ClassColor assigns a drawing color to one hOCR element class.
type ClassColor struct {
	Class string `yaml:"class"`
	Color string `yaml:"color"`
	Label bool   `yaml:"label"` // draw the class name above each box
}

// ClassBoxes is one class's resolved drawing instructions: the parsed
// color paired with the boxes its selector matched, in document order.
// Resolve once, then hand the same groups to raster and PDF output.
type ClassBoxes struct {
	Class string
	Color color.Color
	Label bool
	Boxes []hocr.BBox
}

// ResolveClasses extracts the boxes for each listed hOCR class from an
// already-parsed document and parses its color, preserving list order.
// An empty Class entry stands for every boxed element.
func ResolveClasses(doc *hocr.Document, classes []ClassColor) ([]ClassBoxes, error) {
	selectors := make([]hocr.Selector, 0, len(classes))
	for _, cc := range classes {
		if cc.Class == "" {
			selectors = append(selectors, hocr.AllBoxed)
		} else {
			selectors = append(selectors, hocr.ByClass(cc.Class))
		}
	}
	boxmap, err := hocr.ExtractBBoxes(doc, selectors...)
	if err != nil {
		return nil, err
	}

	groups := make([]ClassBoxes, 0, len(classes))
	for i, cc := range classes {
		col, err := ParseColor(cc.Color)
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", cc.Class, err)
		}
		boxes, _ := boxmap.Boxes(selectors[i].Name())
		groups = append(groups, ClassBoxes{
			Class: cc.Class,
			Color: col,
			Label: cc.Label,
			Boxes: boxes,
		})
	}
	return groups, nil
}

// MarkGroups draws each resolved class group onto the page image, in
// group order, and returns the annotated image.
func MarkGroups(imagePath string, groups []ClassBoxes) (draw.Image, error) {
	img, err := OpenImage(imagePath)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		DrawBoxes(img, g.Boxes, g.Color)
		if g.Label {
			for _, b := range g.Boxes {
				labelBox(img, b, g.Class, g.Color)
			}
		}
	}
	return img, nil
}

// Mark draws the boxes of each listed hOCR class in its assigned
// color and returns the annotated image.
func Mark(imagePath, hocrPath string, classes []ClassColor) (draw.Image, error) {
	doc, err := hocr.Open(hocrPath)
	if err != nil {
		return nil, err
	}
	groups, err := ResolveClasses(doc, classes)
	if err != nil {
		return nil, err
	}
	return MarkGroups(imagePath, groups)
}

// Preview draws every boxed element of the hOCR file onto the page
// image in the given color and displays the result.
func Preview(imagePath, hocrPath, colorSpec string) error {
	img, err := Mark(imagePath, hocrPath, []ClassColor{{Class: "", Color: colorSpec}})
	if err != nil {
		return err
	}
	return Show(img)
}

// labelBox draws the class name just above the box's top-left corner,
// or inside it when the box touches the top edge.
func labelBox(img draw.Image, b hocr.BBox, label string, c color.Color) {
	y := b.Y0 - 2
	if y < img.Bounds().Min.Y+basicfont.Face7x13.Height {
		y = b.Y0 + basicfont.Face7x13.Height
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(b.X0, y),
	}
	d.DrawString(label)
}
