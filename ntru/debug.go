package ntru

import (
	"fmt"
	"io"
	"os"
)

var debugOn = os.Getenv("NTRU_DEBUG") == "1"

// Debugf writes a trace line to stderr when NTRU_DEBUG=1 is set in the
// environment. It is a no-op otherwise, so call sites can leave the calls in
// place without a measurable cost in normal operation.
func Debugf(format string, a ...any) {
	dbg(os.Stderr, format, a...)
}

func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}
