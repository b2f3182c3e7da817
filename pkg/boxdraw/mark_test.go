package boxdraw

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

const markedPage = `<html><body>
<div class="ocr_page" title="bbox 0 0 100 100">
 <span class="ocr_line" title="bbox 10 10 90 30">
  <span class="ocrx_word" title="bbox 10 10 40 30">cat</span>
  <span class="ocrx_word" title="bbox 50 10 90 30">sat</span>
 </span>
</div>
</body></html>`

func TestResolveClassesHonorsClassList(t *testing.T) {
	doc, err := hocr.Parse(strings.NewReader(markedPage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	groups, err := ResolveClasses(doc, []ClassColor{
		{Class: "ocr_line", Color: "blue"},
		{Class: "ocrx_word", Color: "red", Label: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Class != "ocr_line" || len(groups[0].Boxes) != 1 {
		t.Errorf("line group: got class %q with %d boxes", groups[0].Class, len(groups[0].Boxes))
	}
	if groups[1].Class != "ocrx_word" || len(groups[1].Boxes) != 2 {
		t.Errorf("word group: got class %q with %d boxes", groups[1].Class, len(groups[1].Boxes))
	}
	if groups[0].Color != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("line group color: got %v", groups[0].Color)
	}
	if !groups[1].Label {
		t.Error("word group should keep its label setting")
	}
}

func TestResolveClassesRejectsUnknownColor(t *testing.T) {
	doc, err := hocr.Parse(strings.NewReader(markedPage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := ResolveClasses(doc, []ClassColor{{Class: "ocr_line", Color: "bogus"}}); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestWriteClassProofPDF(t *testing.T) {
	doc, err := hocr.Parse(strings.NewReader(markedPage))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	groups, err := ResolveClasses(doc, []ClassColor{
		{Class: "ocr_line", Color: "blue"},
		{Class: "ocrx_word", Color: "red"},
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 100, 100))); err != nil {
		t.Fatalf("encode page image: %v", err)
	}

	var out bytes.Buffer
	if err := WriteClassProofPDF(img.Bytes(), groups, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", out.Bytes()[:min(8, out.Len())])
	}
}
