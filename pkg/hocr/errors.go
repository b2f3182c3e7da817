package hocr

import "fmt"

// MissingAttributeError reports a node that lacks an attribute the hOCR
// contract requires it to carry (a title on a boxed node, a scoring
// title on a candidate).
type MissingAttributeError struct {
	Path string // path of the offending node
	Attr string // name of the missing attribute
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("node %s: missing required %q attribute", e.Path, e.Attr)
}

// MalformedGeometryError reports a title attribute that is present but
// does not contain a well-formed bbox property.
type MalformedGeometryError struct {
	Path   string // path of the offending node
	Title  string // raw title attribute value
	Reason string
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("node %s: malformed geometry in title %q: %s", e.Path, e.Title, e.Reason)
}

// InvalidShapeError reports a suggestion operation applied to a node
// that is not in the shape the operation requires.
type InvalidShapeError struct {
	Path   string
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("node %s: invalid word shape: %s", e.Path, e.Reason)
}

// PathResolutionError reports a node path that does not resolve against
// the document it was applied to.
type PathResolutionError struct {
	Path   string
	Reason string
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve path %q: %s", e.Path, e.Reason)
}

// NumericFormatError reports a scoring attribute whose value after the
// fixed prefix is not a parseable number.
type NumericFormatError struct {
	Path  string // path of the candidate node
	Value string // raw attribute value
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("node %s: scoring attribute %q has no parseable number", e.Path, e.Value)
}
