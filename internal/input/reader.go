// Package input reads raw label lists for batch processing.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLabelsFile reads labels from a UTF-8 text file, one label per line.
// Blank lines are skipped; surrounding whitespace is trimmed.
func ReadLabelsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open labels file: %w", err)
	}
	defer f.Close()

	labels, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read labels from %s: %w", path, err)
	}

	return labels, nil
}

// ReadLabels reads labels from r, one per line, skipping blank lines.
func ReadLabels(r io.Reader) ([]string, error) {
	var labels []string

	scanner := bufio.NewScanner(r)
	// Labels are short, but imported catalogs occasionally carry very long
	// lines; allow up to 1 MiB per line.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		labels = append(labels, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return labels, nil
}
