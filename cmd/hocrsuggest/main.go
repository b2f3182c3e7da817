// hocrsuggest lists or records alternative readings for a word in an
// hOCR document.
//
// Words are addressed by the step-indexed paths printed by -words.
// Added suggestions accumulate on the word: the first insertion moves
// the word's text into an alternatives container, later insertions
// append to it.
//
// Usage:
//
//	hocrsuggest -hocr page.hocr [options]
//
// Options:
//
//	-words            List every word with its path
//	-word string      Path of the word to operate on
//	-list             List the suggestions recorded on -word
//	-add text=score   Suggestion to insert on -word (repeatable)
//	-output string    Write the updated document here (default: stdout)
//
// Examples:
//
// Find the word to annotate:
//
//	hocrsuggest -hocr page.hocr -words
//
// Record two alternative readings in one pass:
//
//	hocrsuggest -hocr page.hocr -word '/html[1]/body[1]/span[3]' \
//	    -add cat=0.9 -add car=0.4 -output page_annotated.hocr
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sfrazier-OGL/Iris/pkg/hocr"
)

// suggestionFlags collects repeated -add text=score values.
type suggestionFlags []hocr.Suggestion

func (s *suggestionFlags) String() string {
	parts := make([]string, len(*s))
	for i, sug := range *s {
		parts[i] = fmt.Sprintf("%s=%g", sug.Text, sug.Score)
	}
	return strings.Join(parts, ",")
}

func (s *suggestionFlags) Set(value string) error {
	eq := strings.LastIndex(value, "=")
	if eq <= 0 {
		return fmt.Errorf("expected text=score, got %q", value)
	}
	score, err := strconv.ParseFloat(value[eq+1:], 64)
	if err != nil {
		return fmt.Errorf("bad score in %q: %w", value, err)
	}
	*s = append(*s, hocr.Suggestion{Text: value[:eq], Score: score})
	return nil
}

func main() {
	hocrPath := flag.String("hocr", "", "Path to the hOCR file")
	listWords := flag.Bool("words", false, "List every word with its path")
	wordPath := flag.String("word", "", "Path of the word to operate on")
	list := flag.Bool("list", false, "List suggestions recorded on -word")
	var adds suggestionFlags
	flag.Var(&adds, "add", "Suggestion to insert as text=score (repeatable)")
	outputPath := flag.String("output", "", "Write the updated document to this path (default: stdout)")
	flag.Parse()

	if *hocrPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -hocr is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := hocr.Open(*hocrPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *listWords:
		words, err := hocr.ExtractWords(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, w := range words {
			fmt.Printf("%s\t%s\n", w.Path, w.Text)
		}

	case *list:
		if *wordPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -list requires -word")
			os.Exit(1)
		}
		suggestions, err := hocr.ExtractSuggestions(doc, *wordPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, s := range suggestions {
			fmt.Printf("%s\t%g\n", s.Text, s.Score)
		}

	case len(adds) > 0:
		if *wordPath == "" {
			fmt.Fprintln(os.Stderr, "Error: -add requires -word")
			os.Exit(1)
		}
		// One batched call so the final candidate order matches the
		// order the -add flags were given in.
		if err := hocr.InsertSuggestions(doc, *wordPath, adds); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out := os.Stdout
		if *outputPath != "" {
			f, err := os.Create(*outputPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		if err := doc.Render(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "Error: nothing to do; use -words, -list or -add")
		flag.PrintDefaults()
		os.Exit(1)
	}
}
