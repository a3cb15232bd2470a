package tabrec

import (
	"strconv"
	"strings"
	"time"
)

// Path decoding: every raw name is interpreted as a field path (a bare
// scalar, name[idx], name.sub, or name[idx].sub) and its value routed into
// the record under construction. Routing is schema-independent; the schema
// only gates the finished record. Unrecognized names and malformed indices
// are dropped without effect, and failed coercions are silent no-writes.
// Blank values leave fields at their defaults, but a blank value at an
// indexed path still registers the index: the final list grows to cover it
// with an empty placeholder.

// scalarSetters maps the case-normalized scalar vocabulary to setters,
// built once instead of switching on header text per field per record.
var scalarSetters = map[string]func(*builder, string){
	"name":  func(b *builder, v string) { b.rec.Name = v },
	"email": func(b *builder, v string) { b.rec.Email = v },
	"phone": func(b *builder, v string) { b.rec.Phone = v },
	"department": func(b *builder, v string) {
		b.rec.Department = v
	},
	"notes": func(b *builder, v string) { b.rec.Notes = v },
	"age": func(b *builder, v string) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			b.drop(v, "age", "not a non-negative integer")
			return
		}
		b.rec.Age = n
	},
	"startdate": func(b *builder, v string) {
		t, ok := parseDate(v)
		if !ok {
			b.drop(v, "startDate", "unparsable date")
			return
		}
		b.rec.StartDate = t
	},
}

func (b *builder) drop(value, path, msg string) {
	if b.report != nil {
		b.report(Issue{Path: path, Code: CodeInvalidFormat, Message: msg + ": " + value, Offset: -1})
	}
}

func (b *builder) unknown(name string) {
	if b.report != nil {
		b.report(Issue{Path: name, Code: CodeUnknownField, Message: "unrecognized field name", Offset: -1})
	}
}

// decodeField routes one raw name/value pair into the builder.
func decodeField(b *builder, name, value string) {
	key := strings.ToLower(name)
	if value == "" {
		touchPath(b, key)
		return
	}
	if set, ok := scalarSetters[key]; ok {
		set(b, value)
		return
	}
	base, idx, sub, ok := splitPath(key)
	if !ok {
		b.unknown(name)
		return
	}
	switch {
	case base == "skills" && idx >= 0 && sub == "":
		b.setSkill(idx, value)
	case base == "languages" && idx >= 0 && sub == "":
		b.setLanguage(idx, value)
	case base == "address" && idx < 0 && sub != "":
		setAddressField(b, name, sub, value)
	case base == "projects" && idx >= 0 && sub != "":
		setProjectField(b, name, idx, sub, value)
	default:
		b.unknown(name)
	}
}

// touchPath registers an index referenced with a blank value so the final
// list covers it, without writing anything.
func touchPath(b *builder, key string) {
	base, idx, sub, ok := splitPath(key)
	if !ok || idx < 0 {
		return
	}
	switch {
	case base == "skills" && sub == "":
		if _, seen := b.skills[idx]; !seen {
			b.setSkill(idx, "")
		}
	case base == "languages" && sub == "":
		if _, seen := b.languages[idx]; !seen {
			b.setLanguage(idx, "")
		}
	case base == "projects" && sub != "":
		if _, seen := b.projects[idx]; !seen {
			b.putProject(idx, b.project(idx))
		}
	}
}

func setAddressField(b *builder, name, sub, value string) {
	a := b.address()
	switch sub {
	case "street":
		a.Street = value
	case "city":
		a.City = value
	case "state":
		a.State = value
	case "zipcode":
		a.ZipCode = value
	default:
		b.unknown(name)
	}
}

func setProjectField(b *builder, name string, idx int, sub, value string) {
	p := b.project(idx)
	switch sub {
	case "name":
		p.Name = value
	case "role":
		p.Role = value
	case "startdate":
		t, ok := parseDate(value)
		if !ok {
			b.drop(value, name, "unparsable date")
			return
		}
		p.StartDate = t
	case "enddate":
		t, ok := parseDate(value)
		if !ok {
			b.drop(value, name, "unparsable date")
			return
		}
		p.EndDate = t
	default:
		b.unknown(name)
		return
	}
	b.putProject(idx, p)
}

// splitPath classifies a case-normalized field path. idx is -1 when the
// path carries no bracket. ok is false for malformed paths, including
// non-numeric bracket contents.
func splitPath(key string) (base string, idx int, sub string, ok bool) {
	idx = -1
	if open := strings.IndexByte(key, '['); open >= 0 {
		end := strings.IndexByte(key, ']')
		if end < open {
			return "", -1, "", false
		}
		n, err := strconv.Atoi(key[open+1 : end])
		if err != nil || n < 0 {
			return "", -1, "", false
		}
		base, idx = key[:open], n
		rest := key[end+1:]
		if rest == "" {
			return base, idx, "", true
		}
		if rest[0] != '.' || len(rest) == 1 {
			return "", -1, "", false
		}
		return base, idx, rest[1:], true
	}
	if dot := strings.IndexByte(key, '.'); dot >= 0 {
		if dot == 0 || dot == len(key)-1 {
			return "", -1, "", false
		}
		return key[:dot], -1, key[dot+1:], true
	}
	return "", -1, "", false
}

// parseDate accepts the short date form first and falls back to RFC3339.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
