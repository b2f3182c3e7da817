package boxdraw

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // decoder registration
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// OpenImage decodes the page image at the given path into a mutable
// image ready for drawing. PNG and JPEG are supported.
func OpenImage(path string) (draw.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if mutable, ok := src.(draw.Image); ok {
		return mutable, nil
	}
	// JPEG decodes to a read-only YCbCr image; copy into RGBA.
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

// SavePNG writes the image to the given path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Show writes the image to a temporary PNG and opens it with the
// platform's default image viewer.
func Show(img image.Image) error {
	dir, err := os.MkdirTemp("", "boxdraw")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	path := filepath.Join(dir, "preview.png")
	if err := SavePNG(path, img); err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch image viewer: %w", err)
	}
	return nil
}
