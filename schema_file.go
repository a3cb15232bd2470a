package tabrec

import (
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Schema definitions can be loaded from YAML or JSON documents so the same
// binary can follow schema revisions without recompiling:
//
//	version: v3
//	required: [name, email, age]
//	optional: [phone, department, startDate]
//	patterns:
//	  - ^skills\[\d+\]$
//	  - ^address\.\w+$

type schemaDoc struct {
	Version  string   `json:"version" yaml:"version"`
	Required []string `json:"required" yaml:"required"`
	Optional []string `json:"optional" yaml:"optional"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

// ParseSchema decodes a schema definition from data. Documents whose first
// non-space byte is '{' are decoded as JSON, everything else as YAML.
func ParseSchema(data []byte) (*Schema, error) {
	var doc schemaDoc
	if isJSONDoc(data) {
		if err := gojson.Unmarshal(data, &doc); err != nil {
			return nil, AppendIssues(nil, Issue{Code: CodeBadSchema, Message: "bad schema document", Cause: err, Offset: -1})
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, AppendIssues(nil, Issue{Code: CodeBadSchema, Message: "bad schema document", Cause: err, Offset: -1})
		}
	}
	return NewSchema(doc.Version, doc.Required, doc.Optional, doc.Patterns)
}

// LoadSchemaFile reads a schema definition from path via ParseSchema.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeIOError, Message: "read schema file", Cause: err, Offset: -1})
	}
	return ParseSchema(data)
}

func isJSONDoc(data []byte) bool {
	s := strings.TrimLeft(string(data), " \t\r\n")
	return strings.HasPrefix(s, "{")
}
