package hocr

import (
	"strings"

	"golang.org/x/net/html"
)

// Selector identifies a set of element nodes in a document. Class
// selectors match any element whose class attribute contains the hOCR
// class name; AllBoxed matches every element carrying a title
// attribute, which in hOCR marks the elements that have geometry.
type Selector struct {
	name  string
	class string // empty means "any element with a title attribute"
}

// ByClass builds a selector over elements of the given hOCR class,
// e.g. "ocr_line" or "ocrx_word".
func ByClass(class string) Selector {
	return Selector{name: class, class: class}
}

// Common selectors for the standard hOCR element classes.
var (
	AllBoxed = Selector{name: "all"}
	Pages    = ByClass("ocr_page")
	Lines    = ByClass("ocr_line")
	Words    = ByClass("ocr_word")
	XWords   = ByClass("ocrx_word")
)

// Name is the key under which this selector's results appear in a
// BBoxMap.
func (s Selector) Name() string { return s.name }

func (s Selector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if s.class == "" {
		_, ok := attrVal(n, "title")
		return ok
	}
	class, ok := attrVal(n, "class")
	return ok && strings.Contains(class, s.class)
}
