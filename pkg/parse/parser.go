package parse

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	normalize "github.com/vilterp/normalize/pkg"
)

var (
	declLexer = lexer.Upper(
		lexer.Must(
			lexer.Regexp(`(\s+)`+
				`|(?P<Keyword>(?i)RELATION|FD)`+
				`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)`+
				`|(?P<Operators>->|[,()])`,
			),
		),
		"Keyword",
	)
	declParser = participle.MustBuild(&File{}, declLexer)
)

// File is a parsed sequence of declarations: a relation and the
// functional dependencies over its attributes.
type File struct {
	Decls []*Decl `{ @@ }`
}

type Decl struct {
	Relation *Relation `  @@`
	FD       *FDDecl   `| @@`
}

type Relation struct {
	Name       string   `"RELATION" @Ident` // parser can't distinguish idents and keywords
	Attributes []string `"(" @Ident { "," @Ident } ")"`
}

// FDDecl allows a single attribute or a comma-separated list on either
// side; both are normalized to sets by FDSet.
type FDDecl struct {
	LHS []string `"FD" @Ident { "," @Ident }`
	RHS []string `"->" @Ident { "," @Ident }`
}

// Parse parses relation/fd declarations.
func Parse(input string) (*File, error) {
	result := &File{}
	err := declParser.ParseString(input, result)
	return result, err
}

func (f *File) relation() *Relation {
	for _, decl := range f.Decls {
		if decl.Relation != nil {
			return decl.Relation
		}
	}
	return nil
}

// RelationName returns the declared relation's name, or "" if no
// relation has been declared.
func (f *File) RelationName() string {
	rel := f.relation()
	if rel == nil {
		return ""
	}
	return rel.Name
}

// Schema returns the declared relation's attribute set.
func (f *File) Schema() (normalize.AttributeSet, error) {
	rel := f.relation()
	if rel == nil {
		return nil, &noRelation{}
	}
	schema := normalize.NewAttributeSet()
	for _, attr := range rel.Attributes {
		schema[normalize.Attribute(attr)] = struct{}{}
	}
	return schema, nil
}

// FDSet converts the fd declarations into an ordered FDSet, in
// declaration order. Every attribute mentioned must belong to the
// declared relation. This is the canonicalization boundary: downstream
// code only ever sees attribute sets.
func (f *File) FDSet() (normalize.FDSet, error) {
	schema, err := f.Schema()
	if err != nil {
		return nil, err
	}
	var fds normalize.FDSet
	for _, decl := range f.Decls {
		if decl.FD == nil {
			continue
		}
		lhs, err := attrSet(decl.FD.LHS, schema)
		if err != nil {
			return nil, err
		}
		rhs, err := attrSet(decl.FD.RHS, schema)
		if err != nil {
			return nil, err
		}
		fd, err := normalize.NewFD(lhs, rhs)
		if err != nil {
			return nil, err
		}
		fds = append(fds, fd)
	}
	return fds, nil
}

func attrSet(names []string, schema normalize.AttributeSet) (normalize.AttributeSet, error) {
	set := normalize.NewAttributeSet()
	for _, name := range names {
		attr := normalize.Attribute(name)
		if !schema.Contains(attr) {
			return nil, &unknownAttribute{Attribute: name}
		}
		set[attr] = struct{}{}
	}
	return set, nil
}
