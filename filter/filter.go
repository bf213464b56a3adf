// Package filter compiles expr expressions for selecting movies from a
// TMDb list.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tmdbctl/tmdb"
)

// Filter represents a compiled filter expression
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. The expression is evaluated against
// a single list entry exposed as Movie, e.g.:
//
//	Movie.VoteAverage > 7.5 and contains(Movie.Title, "god")
//	releaseYear(Movie) >= 2000
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(tmdb.ListMovie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a list entry
func (f *Filter) Evaluate(movie tmdb.ListMovie) (bool, error) {
	result, err := expr.Run(f.program, newEnv(movie))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean: %v", result)
	}
	return matched, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expr
}

// Apply returns the entries matching the filter
func (f *Filter) Apply(movies []tmdb.ListMovie) ([]tmdb.ListMovie, error) {
	var matched []tmdb.ListMovie
	for _, movie := range movies {
		ok, err := f.Evaluate(movie)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, movie)
		}
	}
	return matched, nil
}

// newEnv builds the evaluation environment: the movie under test plus a set
// of static helper functions usable in expressions.
func newEnv(movie tmdb.ListMovie) map[string]interface{} {
	return map[string]interface{}{
		"Movie": movie,

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		// Date helpers
		"releaseYear": func(m tmdb.ListMovie) int {
			return m.ReleaseYear()
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"now": time.Now,
	}
}
