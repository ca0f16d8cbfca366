// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"
)

// limit keeps the sum of any two exponents inside an int8.
const limit = 63

var errMaxRange = fmt.Errorf("max must be in [1, %d]", limit)

var errEmptyPackage = errors.New("package name must be non-empty")

var tableTmpl = template.Must(template.New("table").Parse(`// Code generated by genexponent. DO NOT EDIT.

package {{.Package}}

// Max is the largest exponent magnitude a dimension vector may carry.
const Max = {{.Max}}

// addable[a+Max] lists the non-zero b with |a+b| <= Max.
var addable = [2*Max + 1][]Exponent{
{{- range .Addable}}
	// {{.A}}
	{{.Values}},
{{- end}}
}

// subtractable[a+Max] lists the non-zero b with |a-b| <= Max.
var subtractable = [2*Max + 1][]Exponent{
{{- range .Subtractable}}
	// {{.A}}
	{{.Values}},
{{- end}}
}
`))

type row struct {
	A      int
	Values string
}

type table struct {
	Package      string
	Max          int
	Addable      []row
	Subtractable []row
}

// rows lists, for every a in [-bound, bound], the non-zero b with |op(a, b)| <= bound.
func rows(bound int, op func(a, b int) int) []row {
	out := make([]row, 0, 2*bound+1)
	for a := -bound; a <= bound; a++ {
		var vals []string
		for b := -bound; b <= bound; b++ {
			if b == 0 {
				continue
			}
			if r := op(a, b); r >= -bound && r <= bound {
				vals = append(vals, strconv.Itoa(b))
			}
		}
		out = append(out, row{A: a, Values: "{" + strings.Join(vals, ", ") + "}"})
	}

	return out
}

// generate writes the gofmt-ed table file for the given package and bound.
func generate(w io.Writer, pkg string, bound int) error {
	if bound < 1 || bound > limit {
		return fmt.Errorf("genexponent: %d: %w", bound, errMaxRange)
	}
	if pkg == "" {
		return fmt.Errorf("genexponent: %w", errEmptyPackage)
	}

	t := table{
		Package:      pkg,
		Max:          bound,
		Addable:      rows(bound, func(a, b int) int { return a + b }),
		Subtractable: rows(bound, func(a, b int) int { return a - b }),
	}

	var buf bytes.Buffer
	if err := tableTmpl.Execute(&buf, t); err != nil {
		return fmt.Errorf("genexponent: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("genexponent: format: %w", err)
	}
	_, err = w.Write(src)

	return err
}
