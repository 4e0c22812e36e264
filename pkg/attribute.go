// Package normalize decides keys of relation schemas and decomposes
// them into Boyce-Codd Normal Form, by way of attribute-set closures
// under functional dependencies. Everything here is a pure function
// over immutable sets; rendering and storage live with the callers.
package normalize

import (
	"bytes"
	"sort"
)

// Attribute is the name of a column in a relation.
type Attribute string

// AttributeSet is an unordered, deduplicated set of attributes.
// Operations return new sets; receivers and arguments are never mutated.
type AttributeSet map[Attribute]struct{}

func NewAttributeSet(attrs ...Attribute) AttributeSet {
	set := make(AttributeSet, len(attrs))
	for _, attr := range attrs {
		set[attr] = struct{}{}
	}
	return set
}

func (as AttributeSet) Len() int {
	return len(as)
}

func (as AttributeSet) Contains(attr Attribute) bool {
	_, ok := as[attr]
	return ok
}

func (as AttributeSet) Clone() AttributeSet {
	out := make(AttributeSet, len(as))
	for attr := range as {
		out[attr] = struct{}{}
	}
	return out
}

func (as AttributeSet) Union(other AttributeSet) AttributeSet {
	out := as.Clone()
	for attr := range other {
		out[attr] = struct{}{}
	}
	return out
}

func (as AttributeSet) Intersect(other AttributeSet) AttributeSet {
	out := make(AttributeSet)
	for attr := range as {
		if other.Contains(attr) {
			out[attr] = struct{}{}
		}
	}
	return out
}

// Minus returns the attributes of as that are not in other.
func (as AttributeSet) Minus(other AttributeSet) AttributeSet {
	out := make(AttributeSet)
	for attr := range as {
		if !other.Contains(attr) {
			out[attr] = struct{}{}
		}
	}
	return out
}

func (as AttributeSet) SubsetOf(other AttributeSet) bool {
	for attr := range as {
		if !other.Contains(attr) {
			return false
		}
	}
	return true
}

func (as AttributeSet) Equal(other AttributeSet) bool {
	return len(as) == len(other) && as.SubsetOf(other)
}

// Sorted returns the attributes in lexical order.
func (as AttributeSet) Sorted() []Attribute {
	attrs := make([]Attribute, 0, len(as))
	for attr := range as {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i] < attrs[j]
	})
	return attrs
}

func (as AttributeSet) String() string {
	buf := bytes.NewBufferString("{")
	for idx, attr := range as.Sorted() {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(string(attr))
	}
	buf.WriteString("}")
	return buf.String()
}
