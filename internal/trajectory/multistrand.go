package trajectory

import (
	"io"
	"strings"
)

// ParseMultistrand reads Multistrand trajectory output. The sequence is the
// first line made only of nucleotides, written in RNA alphabet; every later
// line whose first token starts with dot-bracket characters adds a step.
func ParseMultistrand(r io.Reader) (*Trajectory, error) {
	s := newScanner(r)
	seq, err := scanSequence(s, Multistrand, func(line string) string {
		return sequencePattern.FindString(strings.TrimSpace(line))
	})
	if err != nil {
		return nil, err
	}

	t := &Trajectory{Format: Multistrand, Sequence: strings.ReplaceAll(seq, "T", "U")}
	for s.Scan() {
		if st := firstStructure(s.Text()); st != "" {
			t.Structures = append(t.Structures, st)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
