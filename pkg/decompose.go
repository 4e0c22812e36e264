package normalize

import (
	"bytes"
	"strings"
)

// DecompositionNode is one schema in the split tree produced by
// DecomposeTree. Interior nodes record the violating FD that drove
// their split; leaves (SplitOn == nil) are in BCNF.
type DecompositionNode struct {
	Schema  AttributeSet
	SplitOn *FD
	Left    *DecompositionNode
	Right   *DecompositionNode
}

// Leaves returns the node's leaf schemas in tree order.
func (n *DecompositionNode) Leaves() []AttributeSet {
	if n.SplitOn == nil {
		return []AttributeSet{n.Schema}
	}
	return append(n.Left.Leaves(), n.Right.Leaves()...)
}

// Format renders the split tree, one schema per line, children
// indented under their parent.
func (n *DecompositionNode) Format() string {
	buf := bytes.NewBufferString("")
	n.format(buf, 0)
	return buf.String()
}

func (n *DecompositionNode) format(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(n.Schema.String())
	if n.SplitOn != nil {
		buf.WriteString(" [split on ")
		buf.WriteString(n.SplitOn.String())
		buf.WriteString("]")
	}
	buf.WriteString("\n")
	if n.SplitOn != nil {
		n.Left.format(buf, depth+1)
		n.Right.format(buf, depth+1)
	}
}

// Decompose produces a lossless-join decomposition of schema into
// sub-schemas that each satisfy BCNF under fds. The first violating
// FD in list order drives each split, so the result depends on the
// order of fds. A schema with no applicable violating FD comes back
// as the single element [schema].
func Decompose(schema AttributeSet, fds FDSet) ([]AttributeSet, error) {
	root, err := DecomposeTree(schema, fds)
	if err != nil {
		return nil, err
	}
	return root.Leaves(), nil
}

// DecomposeTree is Decompose, keeping the split tree: each interior
// node records which FD split it and the two projected children.
// Decompose returns this tree's leaf sequence.
func DecomposeTree(schema AttributeSet, fds FDSet) (*DecompositionNode, error) {
	node := &DecompositionNode{Schema: schema.Clone()}
	violation, found := findViolation(schema, fds)
	if !found {
		return node, nil
	}

	// Standard BCNF split on (L, R): one side takes L's closure, the
	// other takes L plus everything outside it. Both contain L, so the
	// natural join on L is lossless.
	closureL := Closure(violation.LHS, fds)
	t1 := closureL.Intersect(schema)
	t2 := violation.LHS.Union(schema.Minus(closureL))
	if t1.Len() >= schema.Len() || t2.Len() >= schema.Len() {
		return nil, &consistencyViolation{Schema: schema, On: violation}
	}

	left, err := DecomposeTree(t1, fds)
	if err != nil {
		return nil, err
	}
	right, err := DecomposeTree(t2, fds)
	if err != nil {
		return nil, err
	}
	node.SplitOn = &violation
	node.Left = left
	node.Right = right
	return node, nil
}

// findViolation returns the first FD in list order that violates BCNF
// for schema: its determinant applies (LHS ⊆ schema), it is non-trivial
// within schema (RHS adds attributes of schema beyond LHS), and its
// determinant is not a superkey. FDs whose LHS falls outside schema are
// skipped, which is how dependencies left over from an enclosing schema
// are tolerated during recursion.
func findViolation(schema AttributeSet, fds FDSet) (FD, bool) {
	for _, fd := range fds {
		if fd.LHS.Len() == 0 || !fd.LHS.SubsetOf(schema) {
			continue
		}
		if fd.RHS.Intersect(schema).SubsetOf(fd.LHS) {
			continue
		}
		if IsSuperkey(schema, fd.LHS, fds) {
			continue
		}
		return fd, true
	}
	return FD{}, false
}
