package fixtree

import (
	"io"
	"log"

	"github.com/ulikunitz/fixtree/internal/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// SetDebug uses the log.Logger type to write debug information, for instance
// about truncated output, on the given writer. If w is nil no output will be
// written.
func SetDebug(w io.Writer) {
	if w == nil {
		debug = nil
		return
	}
	debug = log.New(w, "fixtree: ", 0)
}
