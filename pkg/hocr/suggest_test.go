package hocr

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestInsertExtractRoundTrip(t *testing.T) {
	doc := parseSample(t)
	path := wordPathByID(t, doc, "word_1")

	in := []Suggestion{{Text: "cat", Score: 0.9}, {Text: "car", Score: 0.4}}
	if err := InsertSuggestions(doc, path, in); err != nil {
		t.Fatalf("insert: %v", err)
	}

	out, err := ExtractSuggestions(doc, path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("suggestion %d: expected %v, got %v", i, in[i], out[i])
		}
	}

	// The one-time transition clears the word's own text.
	word, err := doc.Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := directText(word); got != "" {
		t.Errorf("word text should be cleared, got %q", got)
	}
}

func TestRepeatedInsertReusesContainer(t *testing.T) {
	doc := parseSample(t)
	path := wordPathByID(t, doc, "word_1")

	if err := InsertSuggestions(doc, path, []Suggestion{{Text: "cat", Score: 0.9}}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := InsertSuggestions(doc, path, []Suggestion{{Text: "car", Score: 0.4}, {Text: "cut", Score: 0.1}}); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	word, err := doc.Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	containers := 0
	for c := word.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if class, _ := attrVal(c, "class"); strings.Contains(class, "alternatives") {
			containers++
		}
	}
	if containers != 1 {
		t.Fatalf("expected exactly one alternatives container, got %d", containers)
	}

	out, err := ExtractSuggestions(doc, path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	wantTexts := []string{"cat", "car", "cut"}
	if len(out) != len(wantTexts) {
		t.Fatalf("expected %d accumulated candidates, got %d", len(wantTexts), len(out))
	}
	for i, want := range wantTexts {
		if out[i].Text != want {
			t.Errorf("candidate %d: expected %q, got %q", i, want, out[i].Text)
		}
	}
}

func TestExtractSanitizesCandidateText(t *testing.T) {
	markup := `<html><body><span class="ocr_word" id="w"><span class="alternatives"><ins class="alt" title="nlp 0.5">  cat
</ins></span></span></body></html>`
	doc, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	path := wordPathByID(t, doc, "w")

	out, err := ExtractSuggestions(doc, path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(out) != 1 || out[0].Text != "cat" {
		t.Errorf("expected sanitized %q, got %v", "cat", out)
	}
}

func TestExtractOnPlainWordFails(t *testing.T) {
	doc := parseSample(t)
	path := wordPathByID(t, doc, "word_2")

	_, err := ExtractSuggestions(doc, path)
	var serr *InvalidShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected InvalidShapeError, got %v", err)
	}
}

func TestExtractRejectsBadScore(t *testing.T) {
	markup := `<html><body><span class="ocr_word" id="w"><span class="alternatives"><ins class="alt" title="nlp abc">cat</ins></span></span></body></html>`
	doc, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	path := wordPathByID(t, doc, "w")

	_, err = ExtractSuggestions(doc, path)
	var nerr *NumericFormatError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NumericFormatError, got %v", err)
	}
}

func TestExtractRejectsUnscoredCandidate(t *testing.T) {
	markup := `<html><body><span class="ocr_word" id="w"><span class="alternatives"><ins class="alt">cat</ins></span></span></body></html>`
	doc, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	path := wordPathByID(t, doc, "w")

	_, err = ExtractSuggestions(doc, path)
	var merr *MissingAttributeError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MissingAttributeError, got %v", err)
	}
}

func TestScoreRoundTrip(t *testing.T) {
	doc := parseSample(t)
	path := wordPathByID(t, doc, "word_1")

	if err := InsertSuggestion(doc, path, "cat", 0.875); err != nil {
		t.Fatalf("insert: %v", err)
	}
	out, err := ExtractSuggestions(doc, path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(out) != 1 || out[0].Score != 0.875 {
		t.Errorf("expected score 0.875, got %v", out)
	}
}

func TestInsertEmptyListIsNoOp(t *testing.T) {
	doc := parseSample(t)
	path := wordPathByID(t, doc, "word_1")

	if err := InsertSuggestions(doc, path, nil); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// No transition happened: the word is still plain.
	word, err := doc.Resolve(path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := directText(word); got != "cot" {
		t.Errorf("word text should be untouched, got %q", got)
	}
	if _, err := ExtractSuggestions(doc, path); err == nil {
		t.Error("expected plain word after empty insert")
	}
}

func TestInsertOnNonWordNode(t *testing.T) {
	doc := parseSample(t)
	line := doc.Select(Lines)[0]
	path, err := doc.Path(line)
	if err != nil {
		t.Fatalf("path: %v", err)
	}

	err = InsertSuggestion(doc, path, "cat", 0.9)
	var serr *InvalidShapeError
	if !errors.As(err, &serr) {
		t.Fatalf("expected InvalidShapeError, got %v", err)
	}
}

func TestInsertOnUnresolvablePath(t *testing.T) {
	doc := parseSample(t)
	err := InsertSuggestion(doc, "/html[1]/body[1]/span[99]", "cat", 0.9)
	var perr *PathResolutionError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PathResolutionError, got %v", err)
	}
}
