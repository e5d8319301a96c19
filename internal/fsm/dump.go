package fsm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDump writes one line per symbol listing the target of every
// column. Epsilon moves carry an "e" suffix.
func (f *FSM) WriteDump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for sym := 0; sym < AlphabetSize; sym++ {
		fmt.Fprintf(bw, "%03d =>", sym)
		for i := range f.cols {
			a := f.cols[i].actions[sym]
			if a.Move == Epsilon {
				fmt.Fprintf(bw, " %de", a.Target)
			} else {
				fmt.Fprintf(bw, " %d", a.Target)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Dump returns the output of WriteDump as a string.
func (f *FSM) Dump() string {
	var sb strings.Builder
	_ = f.WriteDump(&sb)
	return sb.String()
}

func (f *FSM) String() string {
	return fmt.Sprintf("fsm(%q, %d states)", f.pattern, len(f.cols))
}
