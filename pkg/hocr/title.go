package hocr

import (
	"errors"
	"strconv"
	"strings"
)

// TitleProperties breaks an hOCR title attribute into its properties.
// Example input: "bbox 100 200 300 400; x_wconf 95" yields
// {"bbox": ["100","200","300","400"], "x_wconf": ["95"]}.
func TitleProperties(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items := strings.Fields(part)
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}
	return result
}

var errNoBBox = errors.New("no bbox property")

// parseBBoxTitle locates the bbox property within a title attribute and
// parses it against the grammar: the literal keyword "bbox" followed by
// exactly four non-negative integers. Other semicolon-separated
// properties before or after the bbox are ignored. A present but
// non-conforming bbox property is an error, never a zero box.
func parseBBoxTitle(title string) (BBox, error) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 || fields[0] != "bbox" {
			continue
		}
		if len(fields) != 5 {
			return BBox{}, errors.New("bbox property must carry exactly four integers")
		}
		var coords [4]int
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return BBox{}, errors.New("bbox coordinate " + strconv.Quote(f) + " is not an integer")
			}
			if v < 0 {
				return BBox{}, errors.New("bbox coordinate " + strconv.Quote(f) + " is negative")
			}
			coords[i] = v
		}
		return BBox{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, nil
	}
	return BBox{}, errNoBBox
}
