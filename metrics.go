package ipformat

// Metrics records detection outcomes and format events emitted by Converter.
//
// Implementations should be safe for concurrent use, as a single Converter
// instance is typically shared across many goroutines.
type Metrics interface {
	// RecordDetectionSuccess is called when a detection rule matches raw
	// input and produces a canonical candidate.
	RecordDetectionSuccess(rule string)
	// RecordDetectionFailure is called when a detection rule matches
	// structurally but fails to parse a numeric component.
	RecordDetectionFailure(rule string)
	// RecordFormatEvent is called for each conversion failure kind
	// (unrecognized format, malformed numeral, invalid address).
	RecordFormatEvent(event string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordDetectionSuccess(string) {}

func (noopMetrics) RecordDetectionFailure(string) {}

func (noopMetrics) RecordFormatEvent(string) {}
