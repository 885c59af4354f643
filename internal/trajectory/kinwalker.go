package trajectory

import (
	"io"
	"strings"
)

// ParseKinwalker reads Kinwalker output: the sequence is the first token of
// the first line that starts with a nucleotide word, and each later line
// beginning with a dot-bracket token is one step.
func ParseKinwalker(r io.Reader) (*Trajectory, error) {
	s := newScanner(r)
	seq, err := scanSequence(s, Kinwalker, func(line string) string {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return ""
		}
		return sequencePattern.FindString(fields[0])
	})
	if err != nil {
		return nil, err
	}

	t := &Trajectory{Format: Kinwalker, Sequence: seq}
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
