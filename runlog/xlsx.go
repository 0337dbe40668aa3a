package runlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/route"
)

// SheetName is the worksheet XLSXSink writes to.
const SheetName = "generations"

// xlsxHeader extends Header with the area initials of the route.
var xlsxHeader = append(append([]string(nil), Header...), "areas")

// XLSXSink writes GenerationRecords to an Excel workbook.
type XLSXSink struct {
	mu     sync.Mutex
	file   *excelize.File
	path   string
	next   int // next 1-based row to write
	closed bool
}

// OpenXLSX opens the workbook at path, or starts a new one when the file does
// not exist. New rows go below any rows already in SheetName. Nothing is
// written to disk until Close.
func OpenXLSX(path string) (*XLSXSink, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return newXLSX(path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}

	return resumeXLSX(f, path)
}

func newXLSX(path string) (*XLSXSink, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("runlog: xlsx sheet: %w", err)
	}
	s := &XLSXSink{file: f, path: path, next: 1}
	if err := s.writeRow(toAny(xlsxHeader)); err != nil {
		_ = f.Close()
		return nil, err
	}

	return s, nil
}

func resumeXLSX(f *excelize.File, path string) (*XLSXSink, error) {
	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("runlog: xlsx sheet: %w", err)
	}
	if idx < 0 {
		if idx, err = f.NewSheet(SheetName); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("runlog: xlsx sheet: %w", err)
		}
	}
	f.SetActiveSheet(idx)

	rows, err := f.GetRows(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("runlog: xlsx rows: %w", err)
	}
	s := &XLSXSink{file: f, path: path, next: len(rows) + 1}
	if len(rows) == 0 {
		if err = s.writeRow(toAny(xlsxHeader)); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return s, nil
}

// WriteGeneration implements ga.Sink.
func (s *XLSXSink) WriteGeneration(rec ga.GenerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	return s.writeRow([]any{
		rec.Seed,
		rec.Generation,
		rec.Fitness,
		FormatRoute(rec.Route),
		strings.Join(route.Initials(rec.Route), "-"),
	})
}

// Close saves the workbook to its path and releases it. Calling Close twice
// is a no-op.
func (s *XLSXSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.file.SaveAs(s.path)
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("runlog: save %s: %w", s.path, err)
	}

	return nil
}

func (s *XLSXSink) writeRow(vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, s.next)
		if err != nil {
			return fmt.Errorf("runlog: xlsx cell: %w", err)
		}
		if err = s.file.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("runlog: xlsx write %s: %w", cell, err)
		}
	}
	s.next++

	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}
