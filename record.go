package tabrec

import "time"

// Record is one decoded tabular record. List fields have no index gaps:
// indices implied during decoding but never written materialize as empty
// placeholders, so a list's length is one plus the highest index seen.
// Address is nil unless any of its sub-fields was written.
type Record struct {
	Name       string
	Age        int
	Email      string
	Phone      string
	Department string
	StartDate  time.Time
	Skills     []string
	Languages  []string
	Address    *Address
	Projects   []Project
	Notes      string
}

// Address is the optional nested object of a Record. Sub-fields never
// written stay empty strings.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Project is one element of a Record's project list.
type Project struct {
	Name      string
	Role      string
	StartDate time.Time
	EndDate   time.Time
}

// builder accumulates one record while its raw name/value pairs stream in.
// List writes land in sparse index maps and are densified once at finalize,
// avoiding a resize-and-fill pass per out-of-order write.
type builder struct {
	rec       Record
	skills    map[int]string
	languages map[int]string
	projects  map[int]Project
	report    func(Issue)
}

func newBuilder(report func(Issue)) *builder {
	return &builder{report: report}
}

func (b *builder) address() *Address {
	if b.rec.Address == nil {
		b.rec.Address = &Address{}
	}
	return b.rec.Address
}

func (b *builder) setSkill(i int, v string) {
	if b.skills == nil {
		b.skills = make(map[int]string)
	}
	b.skills[i] = v
}

func (b *builder) setLanguage(i int, v string) {
	if b.languages == nil {
		b.languages = make(map[int]string)
	}
	b.languages[i] = v
}

func (b *builder) project(i int) Project {
	if b.projects == nil {
		b.projects = make(map[int]Project)
	}
	return b.projects[i]
}

func (b *builder) putProject(i int, p Project) { b.projects[i] = p }

// finalize densifies the sparse lists and freezes the record.
func (b *builder) finalize() Record {
	b.rec.Skills = densify(b.skills)
	b.rec.Languages = densify(b.languages)
	if len(b.projects) > 0 {
		max := 0
		for i := range b.projects {
			if i > max {
				max = i
			}
		}
		ps := make([]Project, max+1)
		for i, p := range b.projects {
			ps[i] = p
		}
		b.rec.Projects = ps
	}
	return b.rec
}

func densify(m map[int]string) []string {
	if len(m) == 0 {
		return nil
	}
	max := 0
	for i := range m {
		if i > max {
			max = i
		}
	}
	out := make([]string, max+1)
	for i, v := range m {
		out[i] = v
	}
	return out
}
