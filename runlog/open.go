package runlog

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/route"
)

// Header is the column layout shared by every format.
var Header = []string{"seed", "generation", "fitness", "route"}

// Log is a ga.Sink backed by a file.
type Log interface {
	ga.Sink
	io.Closer
}

var (
	_ Log = (*CSVSink)(nil)
	_ Log = (*XLSXSink)(nil)
)

// Open returns a Log for path, chosen by extension (.csv or .xlsx).
func Open(path string) (Log, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return OpenCSV(path)
	case ".xlsx":
		return OpenXLSX(path)
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

// FormatRoute renders r as space-separated location codes.
func FormatRoute(r route.Route) string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.Itoa(int(v))
	}

	return strings.Join(parts, " ")
}

// ParseRoute is the inverse of FormatRoute.
func ParseRoute(s string) (route.Route, error) {
	fields := strings.Fields(s)
	r := make(route.Route, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", s, err)
		}
		r[i] = route.Location(v)
	}

	return r, nil
}

// row converts rec to the string columns of Header.
func row(rec ga.GenerationRecord) []string {
	return []string{
		strconv.FormatInt(rec.Seed, 10),
		strconv.Itoa(rec.Generation),
		strconv.FormatFloat(rec.Fitness, 'f', -1, 64),
		FormatRoute(rec.Route),
	}
}
