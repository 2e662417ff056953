package deque

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/redact"
)

// String renders the elements in order, e.g. "Deque[1, 2, 3]".
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Deque[")
	for i, t := range d.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, t)
	}
	sb.WriteByte(']')
	return sb.String()
}

// SafeFormat implements the redact.SafeFormatter interface. The elements are
// treated as unsafe, so redact.Sprint(d) yields "Deque[‹1›, ‹2›, ‹3›]" and the
// redacted form hides every element.
func (d *Deque[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString("Deque[")
	for i, t := range d.All() {
		if i > 0 {
			w.SafeString(", ")
		}
		w.Print(t)
	}
	w.SafeString("]")
}
