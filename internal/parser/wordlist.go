// Package parser provides utilities for parsing and transforming input data.
// It turns puzzle files into letter graphs and word lists into ranked entries.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultWordLimit is how many ranked entries a word list yields by default.
const DefaultWordLimit = 200000

type WordListOptions struct {
	// Limit stops reading after this many accepted entries. Zero or less
	// means DefaultWordLimit.
	Limit int

	// MinLength drops shorter entries. Zero keeps everything.
	MinLength int
}

// ParseWordList reads one entry per line, most frequent first. A second
// whitespace separated column, such as a frequency count, is ignored.
// Entries are upper-cased; entries holding anything but letters, repeats,
// blank lines and '#' comments are dropped.
func ParseWordList(r io.Reader, opts WordListOptions) ([]string, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultWordLimit
	}

	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(words) < limit {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := strings.ToUpper(fields[0])
		if !isLetters(word) || len(word) < opts.MinLength || seen[word] {
			continue
		}

		seen[word] = true
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return words, nil
}

func isLetters(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}
