package trajectory

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

// compressedExts are stripped before an output name is derived.
var compressedExts = []string{".gz", ".zst"}

// mappedFile serves reads from a read-only memory map of the whole file.
type mappedFile struct {
	*bytes.Reader
	mm mmap.MMap
	f  *os.File
}

func (m *mappedFile) Close() error {
	uerr := m.mm.Unmap()
	if err := m.f.Close(); err != nil {
		return err
	}
	return uerr
}

// decompressor closes the decoder and the file underneath it.
type decompressor struct {
	io.Reader
	closeDec func()
	f        *os.File
}

func (d *decompressor) Close() error {
	d.closeDec()
	return d.f.Close()
}

// Open returns a reader over the contents of path. Files ending in .gz or
// .zst are decompressed; other regular files are memory mapped.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := pgzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressor{Reader: zr, closeDec: func() { _ = zr.Close() }, f: f}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressor{Reader: zr, closeDec: zr.Close, f: f}, nil
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// empty files and pipes cannot be mapped
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return f, nil
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return f, nil
	}
	return &mappedFile{Reader: bytes.NewReader(mm), mm: mm, f: f}, nil
}
