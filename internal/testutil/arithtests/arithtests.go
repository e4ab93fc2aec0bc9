// Package arithtests parses files describing arithmetic test cases.
//
// A file is a list of tests, each starting with a "-- test: name" line.
// A line starting with '>' is an operation that must succeed, the next line
// being its expected result. A line starting with '!' is an operation that
// must fail, the next line being a regular expression surrounded by single
// quotes that the error must match. Other lines starting with "--" are comments.
//
//	-- test: overflow
//	> add 9223372036854775807 1
//	unsigned 9223372036854775808
//	! div 1 0
//	'division by zero'
package arithtests

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Statement struct {
	Op       string
	Operands []string
	Line     int
	Res      string
	ResLine  int
	Fail     bool
}

type Test struct {
	Name       string
	Statements []*Statement
}

type Suite struct {
	Tests []*Test
}

func Parse(r io.Reader) (*Suite, error) {
	s := bufio.NewScanner(r)
	ts := Suite{}

	var curTest *Test
	var curStmt *Statement
	lineNum := 0
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		lineNum++
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "-- test:"):
			curTest = &Test{
				Name: strings.TrimSpace(strings.TrimPrefix(line, "-- test:")),
			}
			ts.Tests = append(ts.Tests, curTest)
		case strings.HasPrefix(line, "--"): // ignore normal comments
			continue
		case line[0] == '>' || line[0] == '!':
			if curTest == nil {
				return nil, fmt.Errorf("line %d: statement outside of a test", lineNum)
			}
			fields, err := splitFields(line[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: missing operator", lineNum)
			}
			curStmt = &Statement{
				Op:       fields[0],
				Operands: fields[1:],
				Line:     lineNum,
				Fail:     line[0] == '!',
			}
			curTest.Statements = append(curTest.Statements, curStmt)
		default:
			if curStmt == nil {
				return nil, fmt.Errorf("line %d: result without statement", lineNum)
			}
			if curStmt.Fail {
				if line[0] != '\'' || line[len(line)-1] != '\'' {
					return nil, fmt.Errorf("error statement must be surrounded by ' in `%s`", line)
				}

				curStmt.Res = line[1 : len(line)-1]
			} else {
				curStmt.Res = line
			}
			curStmt.ResLine = lineNum
		}
	}

	return &ts, s.Err()
}

// splitFields splits s around spaces, keeping double quoted strings,
// quotes included, in a single field.
func splitFields(s string) ([]string, error) {
	var fields []string

	s = strings.TrimSpace(s)
	for s != "" {
		if s[0] == '"' {
			end := 1
			for end < len(s) && s[end] != '"' {
				if s[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(s) {
				return nil, fmt.Errorf("unterminated string in `%s`", s)
			}
			fields = append(fields, s[:end+1])
			s = strings.TrimSpace(s[end+1:])
			continue
		}

		end := strings.IndexAny(s, " \t")
		if end == -1 {
			end = len(s)
		}
		fields = append(fields, s[:end])
		s = strings.TrimSpace(s[end:])
	}

	return fields, nil
}
