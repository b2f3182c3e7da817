package hocr

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// Document is a parsed hOCR document backed by a live HTML node tree.
// The tree is mutable and owned by the caller for the duration of a
// processing session; mutating operations assume exclusive access.
type Document struct {
	root *html.Node
}

// Open reads and parses the hOCR file at the given path. The file
// handle is released before Open returns, whether or not parsing
// succeeds.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hocr file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an hOCR document from the stream. Documents declaring a
// non-UTF-8 charset in a meta tag are decoded from Latin-1 first.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read hocr data: %w", err)
	}

	if enc := sniffCharset(string(data)); enc != "" && enc != "utf-8" {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", enc, err)
		}
		data = decoded
	}

	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse hocr: %w", err)
	}
	return &Document{root: root}, nil
}

// sniffCharset pulls the declared encoding out of a charset= meta
// fragment, if any. Returns "" when the document declares nothing.
func sniffCharset(content string) string {
	i := strings.Index(content, "charset=")
	if i < 0 {
		return ""
	}
	rest := content[i+len("charset="):]
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		return r == '"' || r == '\'' || r == ';' || r == '>' || r == ' '
	})
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// Root returns the underlying document node of the HTML tree.
func (d *Document) Root() *html.Node { return d.root }

// Render serializes the current state of the tree, including any
// suggestion annotations written since parsing.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render hocr: %w", err)
	}
	return nil
}

// Select returns the nodes matched by the selector in document order.
func (d *Document) Select(sel Selector) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if sel.matches(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Path returns the step-indexed path of an element node in this
// document, e.g. "/html[1]/body[1]/span[3]". The path stays valid as
// long as no structural mutation happens upstream of the node.
func (d *Document) Path(n *html.Node) (string, error) {
	if n == nil || n.Type != html.ElementNode {
		return "", &PathResolutionError{Reason: "not an element node"}
	}
	var steps []string
	cur := n
	for cur != nil && cur.Type == html.ElementNode {
		idx := 1
		for sib := cur.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type == html.ElementNode && sib.Data == cur.Data {
				idx++
			}
		}
		steps = append(steps, cur.Data+"["+strconv.Itoa(idx)+"]")
		cur = cur.Parent
	}
	if cur != d.root {
		return "", &PathResolutionError{Reason: "node does not belong to this document"}
	}
	var b strings.Builder
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(steps[i])
	}
	return b.String(), nil
}

// Resolve walks a step-indexed path back to its node. A path is only
// meaningful against the tree it was derived from; paths from another
// tree, or paths invalidated by structural mutation, fail with a
// PathResolutionError.
func (d *Document) Resolve(path string) (*html.Node, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, &PathResolutionError{Path: path, Reason: "path must be absolute"}
	}
	cur := d.root
	for _, step := range strings.Split(path[1:], "/") {
		tag, idx, err := parseStep(step)
		if err != nil {
			return nil, &PathResolutionError{Path: path, Reason: err.Error()}
		}
		var found *html.Node
		count := 0
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				count++
				if count == idx {
					found = c
					break
				}
			}
		}
		if found == nil {
			return nil, &PathResolutionError{Path: path, Reason: fmt.Sprintf("no %s element for step %q", tag, step)}
		}
		cur = found
	}
	return cur, nil
}

// parseStep splits one path step of the form "tag[i]". A bare "tag" is
// treated as "tag[1]".
func parseStep(step string) (string, int, error) {
	if step == "" {
		return "", 0, fmt.Errorf("empty step")
	}
	open := strings.IndexByte(step, '[')
	if open < 0 {
		return step, 1, nil
	}
	if !strings.HasSuffix(step, "]") || open == 0 {
		return "", 0, fmt.Errorf("bad step %q", step)
	}
	idx, err := strconv.Atoi(step[open+1 : len(step)-1])
	if err != nil || idx < 1 {
		return "", 0, fmt.Errorf("bad index in step %q", step)
	}
	return step[:open], idx, nil
}

// pathOf is Path for nodes already known to live in this document,
// used when building error values.
func (d *Document) pathOf(n *html.Node) string {
	p, err := d.Path(n)
	if err != nil {
		return "?"
	}
	return p
}

// attrVal returns the value of the named attribute and whether the
// node carries it at all.
func attrVal(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
