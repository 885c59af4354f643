package vienna

// Package vienna writes and reads the multi-record sequence/structure text
// layout consumed by RNAplot. Each record is a header naming the simulator
// and step, the sequence prefix covered by the structure, and the
// dot-bracket structure itself.

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NumDigits is the zero-padded width of the step number in record headers.
const NumDigits = 5

// Record is one folding snapshot as written to a vienna file.
type Record struct {
	Tag       string
	Step      int
	Sequence  string
	Structure string
}

// Header returns the record name without the leading '>', e.g.
// "kinwalker_00002". Steps wider than NumDigits are not truncated.
func Header(tag string, step int) string {
	return fmt.Sprintf("%s_%0*d", tag, NumDigits, step)
}

// Name is the header of r.
func (r Record) Name() string { return Header(r.Tag, r.Step) }

// Records pairs every structure with the prefix of sequence it covers and
// numbers them from 1 in the order given.
func Records(tag, sequence string, structures []string) []Record {
	recs := make([]Record, 0, len(structures))
	for i, s := range structures {
		n := len(s)
		if n > len(sequence) {
			n = len(sequence)
		}
		recs = append(recs, Record{
			Tag:       tag,
			Step:      i + 1,
			Sequence:  sequence[:n],
			Structure: s,
		})
	}
	return recs
}

// Write emits recs to w. Every record, the first included, is preceded by a
// blank line.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, "\n>%s\n%s\n%s\n", r.Name(), r.Sequence, r.Structure); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Encode returns the full text of recs.
func Encode(recs []Record) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, recs) // bytes.Buffer writes do not fail
	return buf.Bytes()
}

// splitHeader splits "tag_00012" into its tag and step.
func splitHeader(name string) (string, int, error) {
	i := strings.LastIndexByte(name, '_')
	if i <= 0 || i == len(name)-1 {
		return "", 0, fmt.Errorf("malformed header %q", name)
	}
	step, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed step in header %q: %w", name, err)
	}
	return name[:i], step, nil
}

// Parse reads records written by Write. Blank lines between records are
// ignored; every header must be followed by a sequence and a structure line.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var (
		records []Record
		current Record
		want    int // lines still expected for current
		lineNo  int
		hdrLine int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case want == 0 && line == "":
			continue
		case want == 0:
			if !strings.HasPrefix(line, ">") {
				return nil, fmt.Errorf("line %d: expected record header, got %q", lineNo, line)
			}
			tag, step, err := splitHeader(line[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current = Record{Tag: tag, Step: step}
			hdrLine = lineNo
			want = 2
		case want == 2:
			current.Sequence = line
			want = 1
		default:
			current.Structure = line
			records = append(records, current)
			want = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if want != 0 {
		return nil, fmt.Errorf("line %d: record %q is truncated", hdrLine, current.Name())
	}
	return records, nil
}
