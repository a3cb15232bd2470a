package scan

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func lines(t *testing.T, input string) [][]string {
	t.Helper()
	s := New(strings.NewReader(input))
	var out [][]string
	for {
		fs, err := s.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out = append(out, fs)
	}
}

func TestQuotedDelimiter(t *testing.T) {
	got := lines(t, "\"Smith, John\",30\n")
	want := [][]string{{"Smith, John", "30"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestDoubledQuoteEscape(t *testing.T) {
	got := lines(t, `"John ""The Expert"" Doe",x`)
	if got[0][0] != `John "The Expert" Doe` {
		t.Fatalf("doubled quotes not unescaped: %q", got[0][0])
	}
}

func TestBackslashEscapeInsideQuotes(t *testing.T) {
	got := lines(t, `"a\"b","c\\d"`)
	want := []string{`a"b`, `c\d`}
	if !reflect.DeepEqual(got[0], want) {
		t.Fatalf("want %v, got %v", want, got[0])
	}
}

func TestMultiLineQuotedField(t *testing.T) {
	got := lines(t, "\"first\nsecond\",tail\nnext,row\n")
	if len(got) != 2 {
		t.Fatalf("want 2 lines, got %d", len(got))
	}
	if got[0][0] != "first\nsecond" {
		t.Fatalf("embedded newline lost: %q", got[0][0])
	}
}

func TestLineTerminators(t *testing.T) {
	// LF, CRLF, and bare CR all terminate exactly one line.
	got := lines(t, "a\nb\r\nc\rd")
	want := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestBlankLinesSkipped(t *testing.T) {
	got := lines(t, "a,b\n\n   \n , ,\nc,d\n")
	want := [][]string{{"a", "b"}, {"c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestEOFMidField(t *testing.T) {
	got := lines(t, "a,b")
	want := [][]string{{"a", "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	got = lines(t, "a,")
	want = [][]string{{"a", ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("trailing comma: want %v, got %v", want, got)
	}
}

func TestUnterminatedQuoteIsPermissive(t *testing.T) {
	// The rest of the stream is consumed as quoted content, no error.
	got := lines(t, "\"abc,def\nghi")
	want := [][]string{{"abc,def\nghi"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFieldTrimming(t *testing.T) {
	got := lines(t, "  a  ,\tb\t,  \"  c  \"  \n")
	want := [][]string{{"a", "b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestBOMStripped(t *testing.T) {
	got := lines(t, "\ufeffname,age\n")
	want := [][]string{{"name", "age"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestLocationAdvances(t *testing.T) {
	s := New(strings.NewReader("ab,cd\nef\n"))
	if _, err := s.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Location() != 6 {
		t.Fatalf("want offset 6 after first line, got %d", s.Location())
	}
}
