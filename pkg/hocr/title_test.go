package hocr

import "testing"

func TestTitleProperties(t *testing.T) {
	props := TitleProperties("bbox 100 200 300 400; x_wconf 95")
	if got := props["bbox"]; len(got) != 4 || got[0] != "100" || got[3] != "400" {
		t.Errorf("bbox values: got %v", got)
	}
	if got := props["x_wconf"]; len(got) != 1 || got[0] != "95" {
		t.Errorf("x_wconf values: got %v", got)
	}
}

func TestParseBBoxTitle(t *testing.T) {
	box, err := parseBBoxTitle(`image "page.png"; bbox 10 20 30 40; ppageno 0`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := BBox{X0: 10, Y0: 20, X1: 30, Y1: 40}
	if box != want {
		t.Errorf("expected %v, got %v", want, box)
	}
}

func TestParseBBoxTitleRejectsBadGrammar(t *testing.T) {
	for _, title := range []string{
		"x 1 2 3",        // no bbox keyword
		"bbox 1 2 3",     // too few integers
		"bbox 1 2 3 4 5", // too many integers
		"bbox a b c d",   // not integers
		"bbox -1 2 3 4",  // negative coordinate
		"bbox 1.5 2 3 4", // not an integer
		"",               // empty title
		"x_wconf 95",     // unrelated property only
	} {
		if _, err := parseBBoxTitle(title); err == nil {
			t.Errorf("title %q: expected error", title)
		}
	}
}
