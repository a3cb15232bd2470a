package tabrec

// ParseOpt bundles parsing options. The zero value matches the reference
// behavior: malformed values, unknown fields, and gate rejections are
// absorbed silently.
type ParseOpt struct {
	// IssueSink, when non-nil, receives non-fatal notices the decoder would
	// otherwise swallow: failed coercions, unrecognized field names, and
	// records dropped by the schema gate. It never affects which records are
	// produced.
	IssueSink func(Issue)
}

func (o ParseOpt) report(is Issue) {
	if o.IssueSink != nil {
		o.IssueSink(is)
	}
}
