package tabrec

// Package tabrec decodes comma-delimited tabular text into structured
// records. It supports two physical layouts:
//
// - Horizontal (row-major): the first line names the fields, each later
//   line is one record's values in the same order.
// - Vertical (transposed): each line is one field name followed by that
//   field's values for every record, one value per column.
//
// Field names may address nested structure through a dotted/bracketed path
// syntax (Skills[2], Address.City, Projects[1].Role). A caller-supplied
// Schema declares which names are required, optional, or pattern-matched
// and gates each fully decoded record; decoding itself is
// schema-independent.
//
// Design policy:
// - Keep only public APIs in the root package; put the tokenizer and the
//   layout assemblers under internal/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	rs := tabrec.ParseHorizontal(ctx, tabrec.V2(), tabrec.FromReader(r))
//	for rs.Next() {
//		use(rs.Record())
//	}
//	if err := rs.Err(); err != nil { ... }
//
//	rs, err := tabrec.ParseVerticalFile(ctx, sc, "people.csv")
//	defer rs.Close()
