package ga

import "github.com/katalvlaran/georoute/route"

// GenerationRecord is one row of the per-generation log.
type GenerationRecord struct {
	Seed       int64
	Generation int
	Fitness    float64
	Route      route.Route
}

// Sink receives one GenerationRecord per completed generation. Run never
// calls a nil Sink; the runlog package provides CSV and XLSX implementations.
type Sink interface {
	WriteGeneration(rec GenerationRecord) error
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(rec GenerationRecord) error

// WriteGeneration implements Sink.
func (f SinkFunc) WriteGeneration(rec GenerationRecord) error { return f(rec) }
