package tabrec

import (
	"context"
	"errors"
	"io"

	"github.com/reoring/tabrec/internal/layout"
	"github.com/reoring/tabrec/internal/scan"
)

// rawRecords yields assembled raw records; both layout assemblers satisfy it.
type rawRecords interface {
	Next() (layout.Record, error)
}

// ParseHorizontal decodes row-major input: the first line names the fields,
// each later line yields one record. Records stream one line at a time.
func ParseHorizontal(ctx context.Context, sc *Schema, src Source, opts ...ParseOpt) *Records {
	lines, rs := newParse(ctx, sc, src, opts)
	rs.raw = layout.NewRows(lines)
	return rs
}

// ParseVertical decodes transposed input: each line is one field name
// followed by its values per record. The assembler must read the entire
// input before any record can be emitted, so cancellation before end of
// input yields zero records.
func ParseVertical(ctx context.Context, sc *Schema, src Source, opts ...ParseOpt) *Records {
	lines, rs := newParse(ctx, sc, src, opts)
	rs.raw = layout.NewColumns(lines)
	return rs
}

// ParseHorizontalFile decodes the file at path row-major, selecting a
// buffered or memory-mapped source by size. Close the result to release the
// source.
func ParseHorizontalFile(ctx context.Context, sc *Schema, path string, opts ...ParseOpt) (*Records, error) {
	src, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	rs := ParseHorizontal(ctx, sc, src, opts...)
	rs.owned = true
	return rs, nil
}

// ParseVerticalFile is the transposed counterpart of ParseHorizontalFile.
func ParseVerticalFile(ctx context.Context, sc *Schema, path string, opts ...ParseOpt) (*Records, error) {
	src, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	rs := ParseVertical(ctx, sc, src, opts...)
	rs.owned = true
	return rs, nil
}

// Collect drains rs and closes it, returning the accepted records together
// with the terminal error, if any. Records produced before a cancellation
// remain valid.
func Collect(rs *Records) ([]Record, error) {
	defer rs.Close()
	var out []Record
	for rs.Next() {
		out = append(out, rs.Record())
	}
	return out, rs.Err()
}

func newParse(ctx context.Context, sc *Schema, src Source, opts []ParseOpt) (*ctxLines, *Records) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	sn := scan.New(src)
	lines := &ctxLines{ctx: ctx, sn: sn}
	return lines, &Records{sch: sc, opt: opt, src: src, sn: sn}
}

// Records is a lazy sequence of accepted records. It follows the
// bufio.Scanner protocol: Next advances, Record returns the current value,
// Err reports the terminal failure once Next returns false.
type Records struct {
	sch   *Schema
	opt   ParseOpt
	raw   rawRecords
	src   Source
	sn    *scan.Scanner
	owned bool

	cur  Record
	err  error
	done bool
}

// Next advances to the next accepted record. It returns false at end of
// input, on cancellation, and on I/O failure; consult Err to distinguish.
func (rs *Records) Next() bool {
	if rs.done {
		return false
	}
	for {
		rr, err := rs.raw.Next()
		if err != nil {
			rs.finish(err)
			return false
		}
		b := newBuilder(rs.opt.IssueSink)
		for _, f := range rr {
			decodeField(b, f.Name, f.Value)
		}
		rec := b.finalize()
		if !rs.sch.Accept(rec) {
			rs.opt.report(Issue{Code: CodeRequired, Message: "record dropped: required field missing", Offset: rs.sn.Location()})
			continue
		}
		rs.cur = rec
		return true
	}
}

// Record returns the record produced by the last successful Next.
func (rs *Records) Record() Record { return rs.cur }

// Err returns nil after a clean end of input. Cancellation surfaces as the
// context's error (match with errors.Is); I/O failures surface as Issues
// with code io_error.
func (rs *Records) Err() error { return rs.err }

// Close stops iteration. Records obtained from the file variants own their
// source and close it; caller-supplied sources stay open for the caller.
func (rs *Records) Close() error {
	rs.done = true
	if rs.src == nil {
		return nil
	}
	src := rs.src
	rs.src = nil
	if !rs.owned {
		return nil
	}
	return src.Close()
}

func (rs *Records) finish(err error) {
	rs.done = true
	if errors.Is(err, io.EOF) {
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		rs.err = err
		return
	}
	rs.err = AppendIssues(nil, Issue{Code: CodeIOError, Message: "read input", Cause: err, Offset: rs.sn.Location()})
}

// ctxLines checks for cancellation at line granularity before delegating to
// the tokenizer. A cancelled context discards the current partial line.
type ctxLines struct {
	ctx context.Context
	sn  *scan.Scanner
}

func (c *ctxLines) Next() ([]string, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	return c.sn.Next()
}
