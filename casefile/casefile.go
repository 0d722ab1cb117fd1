// Package casefile loads batch acceptance tests for patterns.
//
// The native format is a small DSL:
//
//	// comment
//	pattern "(ab)*" {
//		accept "" "ab" "abab"
//		reject "a" "aba"
//	}
//	pattern "|" { malformed }
//
// A case needs at least one expectation or the malformed keyword.
//
// Files ending in .yaml or .yml hold a list of cases instead:
//
//	# cases.yaml
//	- pattern: "(ab)*"
//	  accept: ["", "ab"]
//	  reject: ["a"]
//	- pattern: "|"
//	  malformed: true
package casefile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"sigs.k8s.io/yaml"
)

type Case struct {
	Pattern   string   `json:"pattern"`
	Malformed bool     `json:"malformed,omitempty"`
	Accept    []string `json:"accept,omitempty"`
	Reject    []string `json:"reject,omitempty"`
	// Source locates the case, e.g. "cases.txt:3:1"
	Source string `json:"-"`
}

type fileAST struct {
	Cases []*caseAST `parser:"@@*"`
}

type caseAST struct {
	Pos lexer.Position

	Pattern      string       `parser:"'pattern' @String '{'"`
	Malformed    bool         `parser:"( @'malformed'"`
	Expectations []*expectAST `parser:"| @@+ ) '}'"`
}

type expectAST struct {
	Verdict string   `parser:"@('accept' | 'reject')"`
	Inputs  []string `parser:"@String+"`
}

var parser = participle.MustBuild[fileAST]()

// Parse reads cases in the DSL format. filename is only used in positions.
func Parse(filename string, r io.Reader) ([]Case, error) {
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, len(file.Cases))
	for _, c := range file.Cases {
		pattern, err := strconv.Unquote(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid pattern string %s: %w", c.Pos, c.Pattern, err)
		}

		tc := Case{Pattern: pattern, Malformed: c.Malformed, Source: c.Pos.String()}
		for _, e := range c.Expectations {
			for _, quoted := range e.Inputs {
				s, err := strconv.Unquote(quoted)
				if err != nil {
					return nil, fmt.Errorf("%s: invalid input string %s: %w", c.Pos, quoted, err)
				}
				if e.Verdict == "accept" {
					tc.Accept = append(tc.Accept, s)
				} else {
					tc.Reject = append(tc.Reject, s)
				}
			}
		}
		cases = append(cases, tc)
	}
	return cases, nil
}

// ParseYAML reads a YAML list of cases.
func ParseYAML(filename string, data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	for i := range cases {
		cases[i].Source = fmt.Sprintf("%s[%d]", filename, i)
		if cases[i].Malformed && len(cases[i].Accept)+len(cases[i].Reject) > 0 {
			return nil, fmt.Errorf("%s: a malformed pattern cannot accept or reject input", cases[i].Source)
		}
	}
	return cases, nil
}

// Load reads a case file, choosing the format by extension.
func Load(path string) ([]Case, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseYAML(path, data)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}
