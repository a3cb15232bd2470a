//go:build !unix

package tabrec

import (
	"errors"
	"os"
)

// openMapped reports no mapping support; OpenFile keeps the buffered file,
// which still avoids loading the input wholesale.
func openMapped(_ *os.File, _ int64) (Source, error) {
	return nil, errors.New("memory mapping unsupported on this platform")
}
