package trajectory

// Package trajectory extracts the sequence and the ordered secondary
// structures from the text output of RNA folding-pathway simulators and
// converts them to vienna records. Each simulator has its own scanner; the
// package keeps no state between calls.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Format names a simulator whose output can be converted.
type Format int

const (
	Multistrand Format = iota
	DrTransformer
	Kinwalker
)

// Formats lists every supported simulator in driver order.
var Formats = []Format{Multistrand, DrTransformer, Kinwalker}

// String returns the tag written in record headers.
func (f Format) String() string {
	switch f {
	case Multistrand:
		return "multistrand"
	case DrTransformer:
		return "drtransformer"
	case Kinwalker:
		return "kinwalker"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) valid() bool { return f >= Multistrand && f <= Kinwalker }

// ParseFormat maps a tag back to its Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	ErrInvalidArguments = errors.New("you must specify input and output files")
	ErrSequenceNotFound = errors.New("cannot find the sequence")
	ErrEmptyResult      = errors.New("nothing to write to output file")
	ErrUnknownFormat    = errors.New("unknown trajectory format")
)

var (
	sequencePattern  = regexp.MustCompile(`^[ACGTU]+$`)
	structurePattern = regexp.MustCompile(`^[.()]+`)
)

// Trajectory is what one scan of a simulator output yields.
type Trajectory struct {
	Format     Format
	Sequence   string
	Structures []string
}

// maxLineSize bounds a single input line; long sequences fit on one line.
const maxLineSize = 16 * 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return s
}

// scanSequence advances s to the first line for which extract returns a
// non-empty sequence. Lines after it are left for the caller.
func scanSequence(s *bufio.Scanner, f Format, extract func(line string) string) (string, error) {
	for s.Scan() {
		if seq := extract(s.Text()); seq != "" {
			return seq, nil
		}
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w (%s)", ErrSequenceNotFound, f)
}

// firstStructure returns the dot-bracket prefix of the first token on line,
// or "" when the line is blank or the token does not start with one.
func firstStructure(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return structurePattern.FindString(fields[0])
}

// Parse dispatches to the scanner for f.
func Parse(f Format, r io.Reader) (*Trajectory, error) {
	switch f {
	case Multistrand:
		return ParseMultistrand(r)
	case DrTransformer:
		return ParseDrTransformer(r)
	case Kinwalker:
		return ParseKinwalker(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}
