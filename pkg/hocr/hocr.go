// Package hocr implements reading and annotating hOCR documents,
// the HTML-based format OCR engines use to pair recognized text with
// page geometry.
//
// Unlike a snapshot parser, this package keeps the parsed document as a
// live, mutable HTML node tree so that annotations written by callers
// (alternative word readings with confidence scores) land in the same
// tree that is later serialized back out.
//
// This package provides:
//
// - A Document handle wrapping a parsed HTML tree with structural
//   selectors and stable step-indexed node paths
// - Extraction of bounding boxes from hOCR title attributes, with a
//   strict grammar for the bbox property and typed errors on violation
// - Reading and writing of per-word alternative-reading suggestions,
//   encoded as an "alternatives" container of scored candidate nodes
//
// Key Types:
//
// - Document: a parsed hOCR document backed by a mutable node tree
// - Selector: a named structural query over document nodes
// - BBox: an axis-aligned bounding rectangle in page pixel coordinates
// - BBoxMap: an ordered mapping from selector name to extracted boxes
// - Suggestion: one alternative reading with its nlp score
//
// Main Functions:
//
// - Open / Parse: obtain a Document from a file or stream
// - ExtractBBoxes: collect bounding boxes per selector in document order
// - ExtractSuggestions / InsertSuggestions: read or append alternative
//   readings on a word node addressed by its path
package hocr
