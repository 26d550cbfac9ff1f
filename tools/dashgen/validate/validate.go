// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail generation; warnings are
// informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Dashboard validates every "expr" found in the dashboard's JSON form.
func Dashboard(dash any, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshaling dashboard: %v", err)}}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decoding dashboard: %v", err)}}
	}

	var exprs []string
	collectExprs(doc, &exprs)
	if len(exprs) == 0 {
		return Result{Warnings: []string{"dashboard has no queries"}}
	}

	return Exprs(exprs, known)
}

// Exprs validates a list of PromQL expressions.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, e := range exprs {
		res.merge(expr(e, known))
	}
	return res
}

func expr(e string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(e)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", e, err))
		return res
	}

	for _, name := range MetricNames(parsed) {
		if !known[name] {
			res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", name, e))
		}
	}
	return res
}

// MetricNames returns the sorted, de-duplicated metric names selected by
// an expression. Histogram series suffixes are folded onto the base name.
func MetricNames(e parser.Expr) []string {
	seen := map[string]struct{}{}
	parser.Inspect(e, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[baseName(vs.Name)] = struct{}{}
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}

func collectExprs(v any, out *[]string) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if s, ok := child.(string); ok && k == "expr" && s != "" {
				*out = append(*out, s)
				continue
			}
			collectExprs(child, out)
		}
	case []any:
		for _, child := range t {
			collectExprs(child, out)
		}
	}
}
