package tabrec

import (
	"bytes"
	"io"
	"os"
)

// Source abstracts over polymorphic byte inputs. Both read paths yield the
// same character stream to the tokenizer; Close releases whatever backs it.
type Source interface {
	io.Reader
	io.Closer
}

// mmapThreshold is the file size at which OpenFile switches from a buffered
// file read to a read-only memory mapping. Files at or above it must not
// require loading the whole file into addressable memory at once.
const mmapThreshold int64 = 100 << 20

// FromReader wraps an io.Reader as a Source. Readers that are already
// closeable are closed by Records.Close.
func FromReader(r io.Reader) Source {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

// FromBytes wraps a byte slice as a Source.
func FromBytes(b []byte) Source { return io.NopCloser(bytes.NewReader(b)) }

// OpenFile opens path for decoding, selecting the read path by size: a
// plain buffered file below the threshold, a read-only memory mapping at or
// above it where the platform supports one. Mappings may be opened
// concurrently by multiple readers of the same file without coordination.
func OpenFile(path string) (Source, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeIOError, Message: "stat input file", Cause: err, Offset: -1})
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeIOError, Message: "open input file", Cause: err, Offset: -1})
	}
	if fi.Size() >= mmapThreshold {
		src, merr := openMapped(f, fi.Size())
		if merr != nil {
			// Mapping failed; the buffered path still satisfies the contract
			// of not loading the file wholesale.
			return f, nil
		}
		return src, nil
	}
	return f, nil
}
