package normalize

// FD is a functional dependency: the attributes of LHS determine the
// attributes of RHS.
type FD struct {
	LHS AttributeSet
	RHS AttributeSet
}

// NewFD copies its arguments into an FD. An empty determinant is
// rejected: such a dependency is either meaningless or would drive
// every closure to the whole universe, so it never enters an FDSet
// through this constructor.
func NewFD(lhs AttributeSet, rhs AttributeSet) (FD, error) {
	if lhs.Len() == 0 {
		return FD{}, &emptyLHS{RHS: rhs}
	}
	return FD{LHS: lhs.Clone(), RHS: rhs.Clone()}, nil
}

func (fd FD) String() string {
	return fd.LHS.String() + " -> " + fd.RHS.String()
}

// FDSet is an ordered list of dependencies. The order is significant:
// the decomposer splits on the first violating FD it encounters, so
// two orderings of the same dependencies can produce different (both
// valid) decompositions.
type FDSet []FD
