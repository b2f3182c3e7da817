// hocrboxes is a command-line tool for visualizing hOCR bounding boxes
// over the scanned page image they were recognized from.
//
// It extracts the bbox geometry from an hOCR file and draws outlined
// rectangles onto the page image, either for every boxed element or
// per hOCR class with per-class colors from a YAML config file.
//
// Usage:
//
//	hocrboxes -hocr page.hocr -image page.png [options]
//
// Required flags:
//
//	-hocr string     Path to the hOCR file
//	-image string    Path to the page image (PNG or JPEG)
//
// Options:
//
//	-color string    Box color for all boxed elements (default "blue")
//	-config string   YAML file assigning colors per hOCR class
//	-output string   Write the annotated image as PNG instead of displaying it
//	-proof string    Also write a PDF proof sheet to this path
//
// Config file format:
//
//	classes:
//	  - class: ocr_line
//	    color: blue
//	  - class: ocrx_word
//	    color: red
//	    label: true
//
// Examples:
//
// Preview every box in the default viewer:
//
//	hocrboxes -hocr page.hocr -image page.png
//
// Mark lines and words in different colors and save a PNG:
//
//	hocrboxes -hocr page.hocr -image page.png -config colors.yaml -output marked.png
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sfrazier-OGL/Iris/pkg/boxdraw"
	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

type markConfig struct {
	Classes []boxdraw.ClassColor `yaml:"classes"`
}

// loadClasses reads the per-class color assignments from a YAML file.
func loadClasses(path string) ([]boxdraw.ClassColor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg markConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Classes) == 0 {
		return nil, fmt.Errorf("config %s lists no classes", path)
	}
	return cfg.Classes, nil
}

func main() {
	hocrPath := flag.String("hocr", "", "Path to the hOCR file")
	imagePath := flag.String("image", "", "Path to the page image")
	colorSpec := flag.String("color", "blue", "Box color when no config file is given")
	configPath := flag.String("config", "", "YAML file assigning colors per hOCR class")
	outputPath := flag.String("output", "", "Write annotated PNG to this path instead of displaying")
	proofPath := flag.String("proof", "", "Write a PDF proof sheet to this path")
	flag.Parse()

	if *hocrPath == "" || *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -hocr and -image are required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	classes := []boxdraw.ClassColor{{Class: "", Color: *colorSpec}}
	if *configPath != "" {
		var err error
		classes, err = loadClasses(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	doc, err := hocr.Open(*hocrPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	groups, err := boxdraw.ResolveClasses(doc, classes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := boxdraw.MarkGroups(*imagePath, groups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *proofPath != "" {
		if err := writeProof(*imagePath, groups, *proofPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing proof PDF: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote proof PDF to %s\n", *proofPath)
	}

	if *outputPath != "" {
		if err := boxdraw.SavePNG(*outputPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote annotated image to %s\n", *outputPath)
		return
	}
	if err := boxdraw.Show(img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeProof strokes the same resolved class groups the raster output
// drew into a PDF proof sheet.
func writeProof(imagePath string, groups []boxdraw.ClassBoxes, proofPath string) error {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	out, err := os.Create(proofPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return boxdraw.WriteClassProofPDF(imageData, groups, out)
}
