// Package fileio implements the ASCII segment-file reader and
// intersection-output writer as collaborators external to the sweep
// engine, kept out of the core package so the core stays free of any I/O
// dependency.
package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dkrylov/sweepline"
)

// ReadSegments parses one segment per line from r: four whitespace-
// separated real numbers "x1 y1 x2 y2". Blank lines, and leading/trailing
// whitespace on a line, are tolerated and skipped. Any parse failure is
// reported as an *sweepline.InputMalformedError naming the offending line;
// the core's own *sweepline.InvariantViolatedError is never raised here —
// segment construction happens through sweepline.NewSegment, so a
// geometrically invalid line (vertical, zero-length) surfaces as an
// InputMalformedError too, since from this reader's point of view it is
// the input file, not the core, that is at fault.
func ReadSegments(r io.Reader) ([]sweepline.Segment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var segments []sweepline.Segment
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) != 4 {
			return nil, &sweepline.InputMalformedError{
				Line: lineNo,
				Raw:  raw,
				Err:  fmt.Errorf("expected 4 fields (x1 y1 x2 y2), got %d", len(fields)),
			}
		}

		coords := make([]float64, 4)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &sweepline.InputMalformedError{Line: lineNo, Raw: raw, Err: err}
			}
			coords[i] = v
		}

		seg, err := sweepline.NewSegment(
			sweepline.NewPoint(coords[0], coords[1]),
			sweepline.NewPoint(coords[2], coords[3]),
		)
		if err != nil {
			return nil, &sweepline.InputMalformedError{Line: lineNo, Raw: raw, Err: err}
		}

		segments = append(segments, seg)
	}

	if err := scanner.Err(); err != nil {
		return nil, &sweepline.InputMalformedError{Line: lineNo, Raw: "", Err: err}
	}

	return segments, nil
}
