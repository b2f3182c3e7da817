package hocr

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Suggestion is one alternative reading for a word, paired with its
// nlp confidence score. Scores have no declared bounds.
type Suggestion struct {
	Text  string
	Score float64
}

// Wire encoding of suggestions on the tree. A plain word holds its
// text directly; an annotated word holds an "alternatives" span whose
// ins children each carry one candidate, the score encoded in the
// title attribute behind the fixed "nlp " prefix.
const (
	alternativesClass = "alternatives"
	candidateClass    = "alt"
	scorePrefix       = "nlp "
)

// Sanitize trims leading and trailing whitespace and control
// characters from extracted text. Applied on suggestion extraction and
// shape detection, never on write.
func Sanitize(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

// alternativesContainer classifies the word node's annotation shape:
// it returns the alternatives container if the node is annotated, or
// nil if the node is still plain. Both the extract and insert paths go
// through this single check.
func alternativesContainer(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if class, ok := attrVal(c, "class"); ok && strings.Contains(class, alternativesClass) {
			return c
		}
	}
	return nil
}

// ExtractSuggestions reads the alternative readings recorded on the
// word node at wordPath, in document order, without deduplication.
// Candidate text is sanitized; scores are parsed from the scoring
// attribute behind the fixed prefix.
//
// The word must already be in annotated shape: calling this on a plain
// word fails with InvalidShapeError, it does not synthesize
// suggestions from the word's own text.
func ExtractSuggestions(doc *Document, wordPath string) ([]Suggestion, error) {
	word, err := doc.Resolve(wordPath)
	if err != nil {
		return nil, err
	}
	container := alternativesContainer(word)
	if container == nil {
		return nil, &InvalidShapeError{Path: wordPath, Reason: "word has no alternatives container"}
	}

	var out []Suggestion
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		title, ok := attrVal(c, "title")
		if !ok {
			return nil, &MissingAttributeError{Path: doc.pathOf(c), Attr: "title"}
		}
		if len(title) < len(scorePrefix) {
			return nil, &NumericFormatError{Path: doc.pathOf(c), Value: title}
		}
		score, err := strconv.ParseFloat(title[len(scorePrefix):], 64)
		if err != nil {
			return nil, &NumericFormatError{Path: doc.pathOf(c), Value: title}
		}
		out = append(out, Suggestion{Text: Sanitize(textContent(c)), Score: score})
	}
	return out, nil
}

// InsertSuggestions appends the given alternative readings to the word
// node at wordPath, mutating the tree in place.
//
// A plain word (sanitized direct text non-empty) transitions to
// annotated shape exactly once: its text is cleared and an
// alternatives container is appended. An already annotated word reuses
// its existing container. Candidates accumulate across calls in call
// order, then input order; nothing is deduplicated or replaced, so
// callers wanting a specific final order should batch into one call.
//
// Either every requested candidate is appended or, on failure, the
// tree is left exactly as it was. An empty suggestion list is a no-op.
func InsertSuggestions(doc *Document, wordPath string, suggestions []Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	word, err := doc.Resolve(wordPath)
	if err != nil {
		return err
	}
	container := alternativesContainer(word)
	// A word node is a leaf apart from its alternatives container;
	// a node with other element children is not a word at all.
	for c := word.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c != container {
			return &InvalidShapeError{Path: wordPath, Reason: "node has element children besides the alternatives container"}
		}
	}

	// Build every candidate before the first mutation so a failure
	// cannot leave a partial candidate list behind.
	candidates := make([]*html.Node, 0, len(suggestions))
	for _, s := range suggestions {
		candidates = append(candidates, newCandidate(s))
	}

	if container == nil {
		clearDirectText(word)
		container = &html.Node{
			Type: html.ElementNode,
			Data: "span",
			Attr: []html.Attribute{{Key: "class", Val: alternativesClass}},
		}
		word.AppendChild(container)
	}
	for _, c := range candidates {
		container.AppendChild(c)
	}
	return nil
}

// InsertSuggestion is the single-item form of InsertSuggestions.
func InsertSuggestion(doc *Document, wordPath string, text string, score float64) error {
	return InsertSuggestions(doc, wordPath, []Suggestion{{Text: text, Score: score}})
}

// newCandidate builds an ins node carrying the suggestion text
// verbatim and the score behind the fixed prefix.
func newCandidate(s Suggestion) *html.Node {
	n := &html.Node{
		Type: html.ElementNode,
		Data: "ins",
		Attr: []html.Attribute{
			{Key: "class", Val: candidateClass},
			{Key: "title", Val: scorePrefix + strconv.FormatFloat(s.Score, 'g', -1, 64)},
		},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s.Text})
	return n
}

// clearDirectText removes the node's direct text children, leaving any
// element children in place.
func clearDirectText(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type == html.TextNode {
			n.RemoveChild(c)
		}
		c = next
	}
}

// directText concatenates the node's direct text children.
func directText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// textContent concatenates all text beneath a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
