// Package assets loads the static classifier inputs from disk: vocabulary,
// spelling dictionary, word vectors and the symptom tables.
package assets

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kailas-cloud/symptomlog/internal/domain/corpus"
)

// ReadCorpus reads one vocabulary word per line. Blank lines and lines
// starting with '#' are skipped.
func ReadCorpus(r io.Reader) (*corpus.Corpus, error) {
	var words []string
	err := scanLines(r, func(_ int, line string) error {
		words = append(words, line)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return corpus.New(words), nil
}

// ReadDictionary reads "word [count]" lines into word -> frequency.
// A missing count means one; repeated words accumulate.
func ReadDictionary(r io.Reader) (map[string]int, error) {
	freq := make(map[string]int)
	err := scanLines(r, func(n int, line string) error {
		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])
		count := 1
		if len(fields) > 1 {
			c, err := strconv.Atoi(fields[1])
			if err != nil || c < 0 {
				return fmt.Errorf("line %d: bad count %q", n, fields[1])
			}
			count = c
		}
		freq[word] += count
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return freq, nil
}

// scanLines calls fn with every trimmed, non-blank, non-comment line and its
// 1-based line number.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}
