package tabrec_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tabrec "github.com/reoring/tabrec"
)

func TestPresetsAreProgressive(t *testing.T) {
	cases := []struct {
		name   string
		v1, v4 bool
	}{
		{"name", true, true},
		{"Skills[3]", true, true},
		{"languages[0]", false, true},
		{"Address.City", false, true},
		{"PROJECTS[2].ROLE", false, true},
		{"badge", false, false},
	}
	for _, tc := range cases {
		if got := tabrec.V1().Recognizes(tc.name); got != tc.v1 {
			t.Fatalf("V1.Recognizes(%q) = %v, want %v", tc.name, got, tc.v1)
		}
		if got := tabrec.V4().Recognizes(tc.name); got != tc.v4 {
			t.Fatalf("V4.Recognizes(%q) = %v, want %v", tc.name, got, tc.v4)
		}
	}
	if tabrec.V2().Version() != "v2" {
		t.Fatalf("version tag: %s", tabrec.V2().Version())
	}
}

func TestNewSchemaRejectsBadPattern(t *testing.T) {
	_, err := tabrec.NewSchema("x", nil, nil, []string{`^ok$`, `([`})
	if err == nil {
		t.Fatalf("want bad_schema error")
	}
	iss, ok := tabrec.AsIssues(err)
	if !ok || iss[0].Code != tabrec.CodeBadSchema {
		t.Fatalf("want Issues with bad_schema, got %v", err)
	}
}

func TestUnknownRequiredNameIsAutoSatisfied(t *testing.T) {
	ctx := context.Background()
	sc, err := tabrec.NewSchema("x", []string{"name", "badge"}, nil, nil)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	input := "Name,Age\nAlice,30\n"
	recs, err := tabrec.Collect(tabrec.ParseHorizontal(ctx, sc, tabrec.FromReader(strings.NewReader(input))))
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("required name without a check must not reject, got %d records", len(recs))
	}
}

func TestParseSchemaYAML(t *testing.T) {
	doc := `
version: v9
required: [name, email, age]
optional: [phone]
patterns:
  - ^skills\[\d+\]$
`
	sc, err := tabrec.ParseSchema([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc.Version() != "v9" || !sc.Recognizes("SKILLS[1]") || sc.Recognizes("languages[0]") {
		t.Fatalf("yaml schema wrong: %+v", sc)
	}
}

func TestParseSchemaJSON(t *testing.T) {
	doc := `{"version":"v9","required":["name"],"optional":["phone"],"patterns":["^languages\\[\\d+\\]$"]}`
	sc, err := tabrec.ParseSchema([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !sc.Recognizes("Languages[2]") || sc.Recognizes("skills[0]") {
		t.Fatalf("json schema wrong")
	}
}

func TestLoadSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	doc := "version: v9\nrequired: [name]\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	sc, err := tabrec.LoadSchemaFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Version() != "v9" {
		t.Fatalf("version: %s", sc.Version())
	}
	if _, err := tabrec.LoadSchemaFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("want io error for missing schema file")
	}
}
