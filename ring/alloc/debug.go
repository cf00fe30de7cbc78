package alloc

import (
	"fmt"
	"os"
)

// logAlloc enables allocator debug logging when RINGKIT_LOG_ALLOC is set.
var logAlloc = os.Getenv("RINGKIT_LOG_ALLOC") != ""

func logAllocf(format string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] "+format+"\n", args...)
	}
}
