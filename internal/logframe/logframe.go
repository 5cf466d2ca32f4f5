// Package logframe emits the platform correlation line a function
// container writes once per request, when configured to do so.
package logframe

import (
	"fmt"
	"io"
)

// Emit writes "<name>=<value>\n" to both w1 and w2 when both name and value
// are non-empty. Call sites pass the FN_LOGFRAME_NAME env var as name and
// the value of the header named by FN_LOGFRAME_HDR as value.
func Emit(w1, w2 io.Writer, name, value string) {
	if name == "" || value == "" {
		return
	}
	line := fmt.Sprintf("%s=%s\n", name, value)
	io.WriteString(w1, line)
	io.WriteString(w2, line)
}
