//go:build !debug

package sweepline

// traceEvent is a no-op unless the package is built with the "debug" build
// tag, in which case debug_trace.go's version prints a trace of the sweep
// to stderr. Verbose geometry tracing is gated behind a build tag rather
// than a runtime flag (matching the wider library's own log_debug.go
// pattern) to keep it completely free on the hot path by default.
func traceEvent(format string, args ...any) {}
