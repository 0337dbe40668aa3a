package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/katalvlaran/georoute/ga"
)

// CSVSink writes GenerationRecords as CSV rows.
type CSVSink struct {
	mu     sync.Mutex
	w      *csv.Writer
	closer io.Closer
	closed bool
}

// NewCSV writes rows to w without a header. Close does not close w.
func NewCSV(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// OpenCSV appends to the file at path, creating it when missing. A header
// row is written when the file is empty.
func OpenCSV(path string) (*CSVSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("runlog: stat %s: %w", path, err)
	}

	s := &CSVSink{w: csv.NewWriter(f), closer: f}
	if st.Size() == 0 {
		if err = s.write(Header); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return s, nil
}

// WriteGeneration implements ga.Sink. The row is flushed before returning.
func (s *CSVSink) WriteGeneration(rec ga.GenerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	return s.write(row(rec))
}

// Close flushes pending output and closes the file opened by OpenCSV.
// Calling Close twice is a no-op.
func (s *CSVSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.w.Flush()
	err := s.w.Error()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

func (s *CSVSink) write(cols []string) error {
	if err := s.w.Write(cols); err != nil {
		return fmt.Errorf("runlog: csv write: %w", err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("runlog: csv flush: %w", err)
	}

	return nil
}
