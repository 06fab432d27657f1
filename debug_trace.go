//go:build debug

package sweepline

import (
	"log"
	"os"
)

var traceLogger = log.New(os.Stderr, "[sweepline] ", log.LstdFlags|log.Lmicroseconds)

// traceEvent logs a single step of the sweep. Only compiled in when built
// with `-tags debug`.
func traceEvent(format string, args ...any) {
	traceLogger.Printf(format, args...)
}
