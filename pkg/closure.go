package normalize

import (
	"fmt"
	"io"
)

// Closure returns x⁺: the smallest superset of x such that whenever an
// FD's left side is contained in the result, its right side is too.
// x is not mutated.
func Closure(x AttributeSet, fds FDSet) AttributeSet {
	return closure(x, fds, nil)
}

// ClosureTrace is Closure with a line written to w for each FD
// application, showing the dependency that fired and the working set
// after it. Diagnostic output only; the result is identical to
// Closure's.
func ClosureTrace(x AttributeSet, fds FDSet, w io.Writer) AttributeSet {
	return closure(x, fds, w)
}

func closure(x AttributeSet, fds FDSet, trace io.Writer) AttributeSet {
	result := x.Clone()
	for {
		changed := false
		for _, fd := range fds {
			if fd.LHS.Len() == 0 {
				// an empty determinant never fires (see NewFD)
				continue
			}
			if !fd.LHS.SubsetOf(result) || fd.RHS.SubsetOf(result) {
				continue
			}
			result = result.Union(fd.RHS)
			changed = true
			if trace != nil {
				fmt.Fprintf(trace, "apply %s: %s\n", fd, result)
			}
		}
		if !changed {
			return result
		}
	}
}
