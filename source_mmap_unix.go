//go:build unix

package tabrec

import (
	"bytes"
	"os"

	"golang.org/x/sys/unix"
)

// openMapped maps f read-only and closes it; the mapping outlives the
// descriptor. Callers fall back to the buffered path on error.
func openMapped(f *os.File, size int64) (Source, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	_ = f.Close()
	return &mappedSource{r: bytes.NewReader(data), data: data}, nil
}

type mappedSource struct {
	r    *bytes.Reader
	data []byte
}

func (m *mappedSource) Read(p []byte) (int, error) { return m.r.Read(p) }

func (m *mappedSource) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return unix.Munmap(data)
}
