package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const personDecls = `
relation person (name, ssn, phone, city, zipcode)
fd city -> zipcode
fd ssn -> name, city
`

func TestParsePerson(t *testing.T) {
	file, err := Parse(personDecls)
	require.NoError(t, err)
	require.Equal(t, "person", file.RelationName())

	schema, err := file.Schema()
	require.NoError(t, err)
	require.Equal(t, "{city, name, phone, ssn, zipcode}", schema.String())

	fds, err := file.FDSet()
	require.NoError(t, err)
	require.Len(t, fds, 2)
	require.Equal(t, "{city} -> {zipcode}", fds[0].String())
	require.Equal(t, "{ssn} -> {city, name}", fds[1].String())
}

func TestParseKeywordsCaseInsensitive(t *testing.T) {
	file, err := Parse("RELATION r (a, b)\nFD a -> b")
	require.NoError(t, err)
	require.Equal(t, "r", file.RelationName())
	fds, err := file.FDSet()
	require.NoError(t, err)
	require.Len(t, fds, 1)
}

func TestParseCompoundDeterminant(t *testing.T) {
	file, err := Parse("relation r (a, b, c)\nfd a, b -> c")
	require.NoError(t, err)
	fds, err := file.FDSet()
	require.NoError(t, err)
	require.Equal(t, "{a, b} -> {c}", fds[0].String())
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		in    string
		error string
	}{
		{"fd a -> b", "no relation declared"},
		{"relation r (a)\nfd a -> b", "unknown attribute: b"},
		{"relation r (a, b)\nfd x -> a", "unknown attribute: x"},
	}
	for idx, testCase := range testCases {
		file, err := Parse(testCase.in)
		require.NoError(t, err, "case %d should lex/parse", idx)
		_, err = file.FDSet()
		require.Error(t, err, "case %d", idx)
		require.Equal(t, testCase.error, err.Error(), "case %d", idx)
	}

	// syntax errors surface from the parser itself
	_, err := Parse("relation (")
	require.Error(t, err)
}
