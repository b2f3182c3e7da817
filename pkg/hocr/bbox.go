package hocr

// BBox is an axis-aligned bounding rectangle in page pixel
// coordinates: (X0, Y0) top-left, (X1, Y1) bottom-right. Extraction
// does not enforce X0 <= X1, Y0 <= Y1; callers needing the check can
// use Valid.
type BBox struct {
	X0, Y0, X1, Y1 int
}

// Valid reports whether the corners are ordered top-left before
// bottom-right.
func (b BBox) Valid() bool {
	return b.X0 <= b.X1 && b.Y0 <= b.Y1
}

// Width returns X1 - X0.
func (b BBox) Width() int { return b.X1 - b.X0 }

// Height returns Y1 - Y0.
func (b BBox) Height() int { return b.Y1 - b.Y0 }

// BBoxMap is an ordered mapping from selector name to the boxes that
// selector matched, preserving the caller's selector order.
type BBoxMap struct {
	names []string
	boxes map[string][]BBox
}

// Selectors returns the selector names in the order they were queried.
func (m *BBoxMap) Selectors() []string { return m.names }

// Boxes returns the boxes extracted for the named selector, in
// document order, and whether the selector was part of the query.
func (m *BBoxMap) Boxes(name string) ([]BBox, bool) {
	b, ok := m.boxes[name]
	return b, ok
}

func (m *BBoxMap) put(name string, boxes []BBox) {
	if _, ok := m.boxes[name]; !ok {
		m.names = append(m.names, name)
	}
	m.boxes[name] = boxes
}

// ExtractBBoxes collects the bounding boxes of every node matched by
// each selector, in document order. With no selectors it defaults to
// AllBoxed. The document is never mutated.
//
// Every matched node must carry a title attribute with a well-formed
// bbox property; a missing title fails with MissingAttributeError and
// a missing or malformed bbox fails with MalformedGeometryError, both
// identifying the offending node by path. No partial results are
// returned on failure.
func ExtractBBoxes(doc *Document, selectors ...Selector) (*BBoxMap, error) {
	if len(selectors) == 0 {
		selectors = []Selector{AllBoxed}
	}
	result := &BBoxMap{boxes: make(map[string][]BBox)}
	for _, sel := range selectors {
		var boxes []BBox
		for _, n := range doc.Select(sel) {
			title, ok := attrVal(n, "title")
			if !ok {
				return nil, &MissingAttributeError{Path: doc.pathOf(n), Attr: "title"}
			}
			box, err := parseBBoxTitle(title)
			if err != nil {
				return nil, &MalformedGeometryError{
					Path:   doc.pathOf(n),
					Title:  title,
					Reason: err.Error(),
				}
			}
			boxes = append(boxes, box)
		}
		result.put(sel.Name(), boxes)
	}
	return result, nil
}
