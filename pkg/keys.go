package normalize

// IsSuperkey reports whether candidate determines every attribute of
// universe, i.e. whether its closure covers the universe.
func IsSuperkey(universe AttributeSet, candidate AttributeSet, fds FDSet) bool {
	return universe.SubsetOf(Closure(candidate, fds))
}

// IsKey reports whether candidate is a minimal superkey for universe.
// Minimality is checked by removing one attribute at a time: candidate
// is a key if it is a superkey and no single-attribute removal leaves
// a superkey.
func IsKey(universe AttributeSet, candidate AttributeSet, fds FDSet) bool {
	if !IsSuperkey(universe, candidate, fds) {
		return false
	}
	for attr := range candidate {
		smaller := candidate.Clone()
		delete(smaller, attr)
		if IsSuperkey(universe, smaller, fds) {
			return false
		}
	}
	return true
}
