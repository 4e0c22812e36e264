package normalize

import "fmt"

type emptyLHS struct {
	RHS AttributeSet
}

func (e *emptyLHS) Error() string {
	return fmt.Sprintf("functional dependency with empty left-hand side (-> %s)", e.RHS)
}

// consistencyViolation means a BCNF split failed to strictly shrink
// both branches. It can't happen for a well-formed violation; hitting
// it indicates an inconsistent FD set.
type consistencyViolation struct {
	Schema AttributeSet
	On     FD
}

func (e *consistencyViolation) Error() string {
	return fmt.Sprintf("split of %s on %s did not shrink both branches", e.Schema, e.On)
}
