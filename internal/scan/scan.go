// Package scan splits a comma-delimited byte stream into logical lines of
// trimmed field strings. It has no knowledge of layout or schema.
package scan

import (
	"bufio"
	"io"
	"strings"
)

// Scanner tokenizes a character stream. The quote machine has two states,
// normal and in-quotes, plus an escape flag: a double quote toggles the
// state unless doubled inside quotes (literal quote), and inside quotes a
// backslash marks the next character for literal inclusion. Both escape
// mechanisms are active at the same time. Outside quotes a comma ends the
// field and CR, LF, or CRLF ends the line; inside quotes all of those are
// literal content. Unterminated quotes are not an error: the remainder of
// the stream is consumed as quoted content.
type Scanner struct {
	r   *bufio.Reader
	off int64
	bom bool // leading byte-order mark already handled
	eof bool
}

// New wraps r in a Scanner. Reads go through an internal look-ahead buffer
// so the state machine never touches the source one byte at a time.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 64<<10)}
}

// Location reports the byte offset consumed so far.
func (s *Scanner) Location() int64 { return s.off }

// Next returns the fields of the next logical line. Lines whose fields are
// all blank are skipped. Returns io.EOF once the stream is exhausted.
func (s *Scanner) Next() ([]string, error) {
	for {
		fields, err := s.line()
		if err != nil {
			return nil, err
		}
		if !blank(fields) {
			return fields, nil
		}
	}
}

func (s *Scanner) line() ([]string, error) {
	if s.eof {
		return nil, io.EOF
	}
	if !s.bom {
		s.bom = true
		if r, size, err := s.r.ReadRune(); err == nil {
			if r == '\ufeff' {
				s.off += int64(size)
			} else {
				_ = s.r.UnreadRune()
			}
		}
	}

	var (
		fields     []string
		field      strings.Builder
		inQuotes   bool
		escapeNext bool
	)
	endField := func() {
		fields = append(fields, strings.TrimSpace(field.String()))
		field.Reset()
	}
	for {
		r, size, err := s.r.ReadRune()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			s.eof = true
			// No trailing terminator: flush whatever accumulated.
			if field.Len() > 0 || len(fields) > 0 {
				endField()
				return fields, nil
			}
			return nil, io.EOF
		}
		s.off += int64(size)

		if escapeNext {
			field.WriteRune(r)
			escapeNext = false
			continue
		}
		if inQuotes {
			switch r {
			case '\\':
				escapeNext = true
			case '"':
				if n, nsize, nerr := s.r.ReadRune(); nerr == nil {
					if n == '"' {
						s.off += int64(nsize)
						field.WriteRune('"')
						continue
					}
					_ = s.r.UnreadRune()
				}
				inQuotes = false
			default:
				field.WriteRune(r)
			}
			continue
		}
		switch r {
		case '"':
			inQuotes = true
		case ',':
			endField()
		case '\r':
			// CRLF is one terminator, not two.
			if n, nsize, nerr := s.r.ReadRune(); nerr == nil {
				if n == '\n' {
					s.off += int64(nsize)
				} else {
					_ = s.r.UnreadRune()
				}
			}
			endField()
			return fields, nil
		case '\n':
			endField()
			return fields, nil
		default:
			field.WriteRune(r)
		}
	}
}

func blank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
