package normalize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// The running example: a person relation where city determines zipcode
// and ssn determines name and city.
func personSchema() AttributeSet {
	return NewAttributeSet("name", "ssn", "phone", "city", "zipcode")
}

func personFDs() FDSet {
	return FDSet{
		{LHS: NewAttributeSet("city"), RHS: NewAttributeSet("zipcode")},
		{LHS: NewAttributeSet("ssn"), RHS: NewAttributeSet("name", "city")},
	}
}

func TestClosure(t *testing.T) {
	fds := personFDs()

	testCases := []struct {
		in  AttributeSet
		exp string
	}{
		{NewAttributeSet("ssn"), "{city, name, ssn, zipcode}"},
		{NewAttributeSet("city"), "{city, zipcode}"},
		{NewAttributeSet("phone"), "{phone}"},
		{NewAttributeSet("ssn", "phone"), "{city, name, phone, ssn, zipcode}"},
		{NewAttributeSet(), "{}"},
	}
	for idx, testCase := range testCases {
		require.Equal(t, testCase.exp, Closure(testCase.in, fds).String(),
			"case %d: closure of %s", idx, testCase.in)
	}
}

func TestClosureDoesNotMutateInput(t *testing.T) {
	in := NewAttributeSet("ssn")
	Closure(in, personFDs())
	require.Equal(t, "{ssn}", in.String())
}

func TestClosureReflexivity(t *testing.T) {
	fds := personFDs()
	for _, in := range []AttributeSet{
		NewAttributeSet(),
		NewAttributeSet("phone"),
		NewAttributeSet("city", "phone"),
		personSchema(),
	} {
		require.True(t, in.SubsetOf(Closure(in, fds)),
			"closure of %s must contain it", in)
	}
}

func TestClosureMonotonicity(t *testing.T) {
	fds := personFDs()
	pairs := []struct {
		x AttributeSet
		y AttributeSet
	}{
		{NewAttributeSet("city"), NewAttributeSet("city", "ssn")},
		{NewAttributeSet(), NewAttributeSet("ssn")},
		{NewAttributeSet("phone"), personSchema()},
	}
	for _, pair := range pairs {
		require.True(t, Closure(pair.x, fds).SubsetOf(Closure(pair.y, fds)),
			"closure of %s must be contained in closure of %s", pair.x, pair.y)
	}
}

func TestClosureIdempotence(t *testing.T) {
	fds := personFDs()
	for _, in := range []AttributeSet{
		NewAttributeSet("ssn"),
		NewAttributeSet("city"),
		NewAttributeSet("phone", "zipcode"),
	} {
		once := Closure(in, fds)
		twice := Closure(once, fds)
		require.True(t, once.Equal(twice), "closure of %s is not a fixpoint", in)
	}
}

// An FD with an empty determinant could slip in through an FD literal;
// it must never fire.
func TestClosureEmptyLHSNeverFires(t *testing.T) {
	fds := FDSet{
		{LHS: NewAttributeSet(), RHS: NewAttributeSet("b")},
	}
	require.Equal(t, "{a}", Closure(NewAttributeSet("a"), fds).String())
}

func TestClosureTrace(t *testing.T) {
	buf := bytes.NewBufferString("")
	result := ClosureTrace(NewAttributeSet("ssn"), personFDs(), buf)
	require.Equal(t, "{city, name, ssn, zipcode}", result.String())
	require.Equal(t,
		"apply {ssn} -> {city, name}: {city, name, ssn}\n"+
			"apply {city} -> {zipcode}: {city, name, ssn, zipcode}\n",
		buf.String())
}
