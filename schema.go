package tabrec

import (
	"regexp"
	"strings"
)

// Schema is an immutable description of one schema revision: the field
// names a record must carry, the scalar names acknowledged as legitimate,
// and the structural name patterns (matched case-insensitively) a revision
// permits. Patterns are compiled once at construction. The gate consults
// required names only; see Recognizes for the pattern check.
type Schema struct {
	version  string
	required map[string]struct{}
	optional map[string]struct{}
	patterns []*regexp.Regexp
}

// NewSchema builds a Schema. Pattern compilation failures surface as Issues
// with code bad_schema.
func NewSchema(version string, required, optional, patterns []string) (*Schema, error) {
	s := &Schema{
		version:  version,
		required: nameSet(required),
		optional: nameSet(optional),
	}
	var iss Issues
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			iss = AppendIssues(iss, Issue{Path: p, Code: CodeBadSchema, Message: "bad pattern", Cause: err, Offset: -1})
			continue
		}
		s.patterns = append(s.patterns, re)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustSchema is NewSchema that panics on error, for preset construction.
func MustSchema(version string, required, optional, patterns []string) *Schema {
	s, err := NewSchema(version, required, optional, patterns)
	if err != nil {
		panic(err)
	}
	return s
}

// Version reports the informational version tag.
func (s *Schema) Version() string { return s.version }

// Accept reports whether rec satisfies every required field: name and email
// non-empty, age positive. Required names with no corresponding check are
// automatically satisfied.
func (s *Schema) Accept(rec Record) bool {
	for name := range s.required {
		switch name {
		case "name":
			if rec.Name == "" {
				return false
			}
		case "email":
			if rec.Email == "" {
				return false
			}
		case "age":
			if rec.Age <= 0 {
				return false
			}
		}
	}
	return true
}

// Recognizes reports whether the field name is legitimate under this
// revision: a required or optional scalar, or a structural name matching
// one of the patterns. Decoding never consults this; it exists for callers
// that want to audit input headers against a revision.
func (s *Schema) Recognizes(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := s.required[key]; ok {
		return true
	}
	if _, ok := s.optional[key]; ok {
		return true
	}
	for _, re := range s.patterns {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

func nameSet(names []string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return m
}

// Built-in revisions. Each adds to the one before it.
var (
	schemaV1 = MustSchema("v1",
		[]string{"name", "email", "age"},
		[]string{"phone"},
		[]string{`^skills\[\d+\]$`},
	)
	schemaV2 = MustSchema("v2",
		[]string{"name", "email", "age"},
		[]string{"phone", "department"},
		[]string{`^skills\[\d+\]$`, `^languages\[\d+\]$`},
	)
	schemaV3 = MustSchema("v3",
		[]string{"name", "email", "age"},
		[]string{"phone", "department", "startdate"},
		[]string{`^skills\[\d+\]$`, `^languages\[\d+\]$`, `^address\.\w+$`},
	)
	schemaV4 = MustSchema("v4",
		[]string{"name", "email", "age"},
		[]string{"phone", "department", "startdate", "notes"},
		[]string{`^skills\[\d+\]$`, `^languages\[\d+\]$`, `^address\.\w+$`, `^projects\[\d+\]\.\w+$`},
	)
)

// V1 returns the first built-in schema revision: the three required scalars
// plus phone and a skills list.
func V1() *Schema { return schemaV1 }

// V2 adds department and the languages list.
func V2() *Schema { return schemaV2 }

// V3 adds startDate and the nested address object.
func V3() *Schema { return schemaV3 }

// V4 adds notes and the projects list.
func V4() *Schema { return schemaV4 }
