// Package matrix — text loader.
//
// Format: one matrix row per line, entries are base-10 integers separated by
// any run of spaces or tabs. Blank lines (including a trailing newline at EOF)
// are ignored. Example for n=3:
//
//	0 2 9
//	2 0 6
//	9 6 0
//
// The parsed rows are handed to New, so the loader returns the same
// validation sentinels as direct construction (plus ErrSyntax).
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single row. 1 MiB covers ~100k vertices of
// six-digit weights, far beyond what either solver can process.
const maxLineBytes = 1 << 20

// Parse reads a whitespace-delimited matrix from r and validates it.
//
// Errors: ErrSyntax (wrapped with line and column), any New sentinel, or an
// I/O error from r.
//
// Complexity: O(n²) time and memory.
func Parse(r io.Reader, opts ...Option) (*Distance, error) {
	var (
		rows   [][]int64
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for k, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix: line %d, column %d: %q: %w", lineNo, k+1, tok, ErrSyntax)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}

	return New(rows, opts...)
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string, opts ...Option) (*Distance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
