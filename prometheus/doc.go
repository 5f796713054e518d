// Package prometheus provides a Prometheus adapter for
// github.com/abczzz13/ipformat.
//
// The package exposes ipformat options that install a Prometheus-backed
// Metrics implementation on a converter, using either the default registerer
// or a caller-provided registerer.
package prometheus
