// Package route - tour utilities shared by the genetic operators.
//
// Genetic operators only ever touch the interior of a route; the fixed start
// and end are stripped before an operator runs and restored afterwards.
// WithEndpoints(Interior(r)) == r for every valid route.
package route

import (
	"strconv"
	"strings"
)

// Interior returns a fresh copy of r without its first and last elements.
// Routes shorter than two elements yield an empty interior.
//
// Complexity: O(n).
func Interior(r Route) Route {
	if len(r) < 2 {
		return Route{}
	}

	return r[1 : len(r)-1].Clone()
}

// WithEndpoints returns a fresh route [Start, interior..., Start].
//
// Complexity: O(n).
func WithEndpoints(interior Route) Route {
	out := make(Route, 0, len(interior)+2)
	out = append(out, Start)
	out = append(out, interior...)

	return append(out, Start)
}

// String renders r as "[1 9 6 3 | 1]" where the bar marks the closure.
func (r Route) String() string {
	if len(r) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		n  = len(r) - 1
		i  int
	)
	sb.WriteString("[")
	for i = 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(int(r[i])))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(int(r[n])))
	sb.WriteString("]")

	return sb.String()
}
