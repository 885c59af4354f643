package trajectory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rnaplot/internal/vienna"
)

// OutputExt replaces the input extension when naming converted files.
const OutputExt = ".vienna"

// Options tunes Run. The zero value converts and writes.
type Options struct {
	// DryRun parses and emits in memory but does not write the output.
	DryRun bool
}

// ConvertMultistrand converts a Multistrand trajectory file to vienna.
func ConvertMultistrand(input, output string) error {
	return Convert(Multistrand, input, output)
}

// ConvertDrTransformer converts a DrTransformer trajectory file to vienna.
func ConvertDrTransformer(input, output string) error {
	return Convert(DrTransformer, input, output)
}

// ConvertKinwalker converts a Kinwalker output file to vienna.
func ConvertKinwalker(input, output string) error {
	return Convert(Kinwalker, input, output)
}

// Convert reads input as format f and writes its records to output,
// replacing any existing file. Nothing is written on error.
func Convert(f Format, input, output string) error {
	_, err := Run(f, input, output, Options{})
	return err
}

// Run is Convert returning the emitted records.
func Run(f Format, input, output string, opts Options) ([]vienna.Record, error) {
	if input == "" || output == "" {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidArguments, f)
	}
	if !f.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	t, err := parseFile(f, input)
	if err != nil {
		return nil, err
	}
	recs := vienna.Records(f.String(), t.Sequence, t.Structures)
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptyResult, f)
	}
	if opts.DryRun {
		return recs, nil
	}
	if err := os.WriteFile(output, vienna.Encode(recs), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	return recs, nil
}

// parseFile scans input and releases it before returning.
func parseFile(f Format, input string) (*Trajectory, error) {
	rc, err := Open(input)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", input, err)
	}
	defer rc.Close()

	t, err := Parse(f, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return t, nil
}

// splitExt mirrors os.path.splitext: dots leading the base name never
// start an extension.
func splitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	base := filepath.Base(path)
	if ext == "" || strings.Trim(strings.TrimSuffix(base, ext), ".") == "" {
		return path, ""
	}
	return strings.TrimSuffix(path, ext), ext
}

// OutputPath names the vienna file for input: a compression suffix is
// dropped, then the extension is replaced by OutputExt. A non-empty dir
// relocates the result into dir.
func OutputPath(input, dir string) string {
	p := input
	for _, ext := range compressedExts {
		if strings.HasSuffix(p, ext) && len(p) > len(ext) {
			p = strings.TrimSuffix(p, ext)
			break
		}
	}
	stem, _ := splitExt(p)
	out := stem + OutputExt
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out
}
