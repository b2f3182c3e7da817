package boxdraw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// palette maps the color names accepted by ParseColor.
var palette = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"orange":  {255, 165, 0, 255},
	"gray":    {128, 128, 128, 255},
}

// ParseColor resolves a color specifier: either a named color from the
// palette or a "#rrggbb" hex triplet.
func ParseColor(spec string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := palette[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 255,
			}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", spec)
}
