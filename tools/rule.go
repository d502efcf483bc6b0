package tools

import (
	"fmt"
	"io"
	"strings"
)

// Rule writes a separator line of n copies of ch.
func Rule(w io.Writer, ch string, n int) {
	fmt.Fprintln(w, strings.Repeat(ch, n))
}

// Println writes a line and discards the write error, narration is best effort.
func Println(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func Printf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}
