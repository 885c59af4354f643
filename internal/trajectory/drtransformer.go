package trajectory

import (
	"io"
	"strings"
)

// drtStep is the bookkeeping carried between DrTransformer lines. Values
// are kept as the raw tokens and compared lexically, so "10" < "9".
type drtStep struct {
	id        string
	index     string
	occupancy string
}

// ParseDrTransformer reads DrTransformer trajectory output. The sequence is
// the first line that is only nucleotides once '#' markers and whitespace
// are trimmed. Structure lines have at least five columns: step id, index
// within the step, structure, energy, occupancy.
//
// A line that starts a new step is always kept. A line repeating the step
// id is kept if its index is lower than the previous line's, or replaces
// the previous structure if its occupancy is higher; otherwise it is
// dropped. Once an index has gone down, every later line is tested the
// same way whatever its step id.
func ParseDrTransformer(r io.Reader) (*Trajectory, error) {
	s := newScanner(r)
	seq, err := scanSequence(s, DrTransformer, func(line string) string {
		return sequencePattern.FindString(strings.TrimSpace(strings.Trim(line, "#")))
	})
	if err != nil {
		return nil, err
	}

	t := &Trajectory{Format: DrTransformer, Sequence: seq}
	prev := drtStep{id: "-1", index: "-1", occupancy: "-1"}
	lastStep := false
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 5 {
			continue
		}
		st := structurePattern.FindString(fields[2])
		if st == "" {
			continue
		}
		cur := drtStep{id: fields[0], index: fields[1], occupancy: fields[4]}

		if cur.id == prev.id || lastStep {
			switch {
			case prev.index > cur.index:
				lastStep = true
			case prev.occupancy < cur.occupancy:
				if n := len(t.Structures); n > 0 {
					t.Structures = t.Structures[:n-1]
				}
			default:
				continue
			}
		}
		prev = cur
		t.Structures = append(t.Structures, st)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
