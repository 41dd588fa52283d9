// Package linesource supplies the one-unit-per-line input that dom.Build
// consumes, either from text already in that form or from ordinary HTML.
package linesource

import (
	"bufio"
	"io"
	"strings"
)

// ReadLines returns the non-empty lines of r with any trailing carriage
// return removed. Lines of spaces are text and are kept verbatim.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
