package hocr

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// WordRef pairs an hOCR word's text with the path locating it in its
// document, so the word can be revisited later for annotation.
type WordRef struct {
	Text string
	Path string
}

// ExtractWords lists every ocr_word element with its text and path, in
// document order.
func ExtractWords(doc *Document) ([]WordRef, error) {
	var out []WordRef
	for _, n := range doc.Select(Words) {
		path, err := doc.Path(n)
		if err != nil {
			return nil, err
		}
		out = append(out, WordRef{Text: directText(n), Path: path})
	}
	return out, nil
}

// ExtractTokens reads an hOCR stream and returns every non-empty span
// text in document order, with trailing whitespace stripped. The
// ocr_line spans OCR engines emit often carry stray newlines; those
// collapse to empty strings and are dropped.
func ExtractTokens(r io.Reader) ([]string, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" {
			word := strings.TrimRightFunc(directText(n), unicode.IsSpace)
			if word != "" {
				out = append(out, word)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.root)
	return out, nil
}
