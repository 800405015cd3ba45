package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/kailas-cloud/symptomlog/internal/repository/assets"
)

func checkCommand(c *cli.Context) error {
	dir := c.String("assets")
	b, err := assets.Load(assets.DirPaths(dir).Optional())
	if err != nil {
		return fmt.Errorf("load assets from %s: %w", dir, err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "corpus:          %d words\n", b.Corpus.Len())
	fmt.Fprintf(w, "symptom vectors: %d symptoms, dim %d\n", b.SymptomVectors.Len(), b.SymptomVectors.Dim())
	fmt.Fprintf(w, "word vectors:    %d words, dim %d\n", b.WordVectors.Len(), b.WordVectors.Dim())
	fmt.Fprintf(w, "dictionary:      %s\n", optionalSize(len(b.Dictionary), b.Dictionary != nil))
	if b.Catalog != nil {
		fmt.Fprintf(w, "catalog:         %d names\n", b.Catalog.Len())
	} else {
		fmt.Fprintln(w, "catalog:         absent")
	}
	if b.Relations != nil {
		fmt.Fprintf(w, "relations:       %d sources\n", b.Relations.Len())
	} else {
		fmt.Fprintln(w, "relations:       absent")
	}

	var missing []string
	for _, word := range b.Corpus.Words() {
		if !b.WordVectors.Contains(word) {
			missing = append(missing, word)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(w, "corpus words without vectors: %v\n", missing)
	}

	if b.WordVectors.Len() > 0 && b.WordVectors.Dim() != b.SymptomVectors.Dim() {
		return fmt.Errorf("word vector dim %d does not match symptom vector dim %d",
			b.WordVectors.Dim(), b.SymptomVectors.Dim())
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func optionalSize(n int, present bool) string {
	if !present {
		return "absent"
	}
	return fmt.Sprintf("%d words", n)
}
