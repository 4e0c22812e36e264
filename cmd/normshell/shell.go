package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	_ "github.com/mattn/go-sqlite3"
	"github.com/robertkrimen/isatty"
	normalize "github.com/vilterp/normalize/pkg"
	"github.com/vilterp/normalize/pkg/materialize"
	"github.com/vilterp/normalize/pkg/parse"
)

var declPath = flag.String("f", "", "declaration file to load on startup")
var batch = flag.Bool("decompose", false, "print the BCNF decomposition of the loaded declarations and exit")
var verbose = flag.Bool("v", false, "trace closure computations")

func main() {
	// get cmdline flags
	flag.Parse()

	sess := &session{
		file:    &parse.File{},
		verbose: *verbose,
	}

	if *declPath != "" {
		contents, err := os.ReadFile(*declPath)
		if err != nil {
			fmt.Println("couldn't read declarations:", err)
			os.Exit(1)
		}
		if err := sess.load(string(contents)); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}

	if *batch {
		sess.printDecomposition()
		os.Exit(0)
	}

	// check if is TTY
	isInputTty := isatty.Check(os.Stdin.Fd())

	if isInputTty {
		fmt.Println("normalize shell")
		fmt.Println("\\h for help")
	}

	// initialize readline
	prompt := ""
	if isInputTty {
		prompt = "normalize> "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "/tmp/.normalize-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye!",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, readlineErr := l.Readline()
		if readlineErr != nil {
			fmt.Println("bye!")
			os.Exit(0)
		}

		line = strings.Trim(line, "\t ")
		if len(line) == 0 {
			continue
		}

		if strings.HasPrefix(line, `\`) {
			sess.runCommand(line)
		} else if err := sess.load(line); err != nil {
			fmt.Println("error:", err)
		}
	}
}

type session struct {
	file    *parse.File
	verbose bool
}

// load parses declarations and appends them to the session, keeping
// the previous declarations if the new ones don't validate.
func (s *session) load(input string) error {
	parsed, err := parse.Parse(input)
	if err != nil {
		return err
	}
	merged := &parse.File{
		Decls: append(append([]*parse.Decl{}, s.file.Decls...), parsed.Decls...),
	}
	if _, err := merged.FDSet(); err != nil {
		return err
	}
	s.file = merged
	return nil
}

func (s *session) schemaAndFDs() (normalize.AttributeSet, normalize.FDSet, bool) {
	schema, err := s.file.Schema()
	if err != nil {
		fmt.Println("error:", err)
		return nil, nil, false
	}
	fds, err := s.file.FDSet()
	if err != nil {
		fmt.Println("error:", err)
		return nil, nil, false
	}
	return schema, fds, true
}

func (s *session) runCommand(line string) {
	parts := strings.SplitN(line, " ", 2)
	command := parts[0]
	args := ""
	if len(parts) == 2 {
		args = strings.Trim(parts[1], "\t ")
	}

	switch command {
	case `\h`:
		fmt.Println(`\h	            help`)
		fmt.Println(`\d	            describe relation and fds`)
		fmt.Println(`\closure a, b	    closure of an attribute set`)
		fmt.Println(`\superkey a, b	    superkey test`)
		fmt.Println(`\key a, b	    key test`)
		fmt.Println(`\decompose	    BCNF decomposition`)
		fmt.Println(`\plan	            materialization DDL for the decomposition`)
		fmt.Println(`\materialize f.db  run the materialization against a SQLite file`)
	case `\d`:
		schema, fds, ok := s.schemaAndFDs()
		if !ok {
			return
		}
		fmt.Printf("relation %s %s\n", s.file.RelationName(), schema)
		for _, fd := range fds {
			fmt.Println("fd", fd)
		}
	case `\closure`:
		schema, fds, ok := s.schemaAndFDs()
		if !ok {
			return
		}
		attrs, err := parseAttrs(args, schema)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if s.verbose {
			fmt.Println(normalize.ClosureTrace(attrs, fds, os.Stdout))
		} else {
			fmt.Println(normalize.Closure(attrs, fds))
		}
	case `\superkey`:
		schema, fds, ok := s.schemaAndFDs()
		if !ok {
			return
		}
		attrs, err := parseAttrs(args, schema)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(normalize.IsSuperkey(schema, attrs, fds))
	case `\key`:
		schema, fds, ok := s.schemaAndFDs()
		if !ok {
			return
		}
		attrs, err := parseAttrs(args, schema)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(normalize.IsKey(schema, attrs, fds))
	case `\decompose`:
		s.printDecomposition()
	case `\plan`:
		tables, ok := s.plan()
		if !ok {
			return
		}
		for _, table := range tables {
			fmt.Println(table.DDL)
		}
	case `\materialize`:
		if args == "" {
			fmt.Println("usage: \\materialize <file.db>")
			return
		}
		tables, ok := s.plan()
		if !ok {
			return
		}
		db, err := sql.Open("sqlite3", args)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		defer db.Close()
		if err := materialize.Exec(db, tables); err != nil {
			fmt.Println("error:", err)
			return
		}
		for _, table := range tables {
			fmt.Println("created", table.Name)
		}
	default:
		fmt.Println("unknown command; \\h for help")
	}
}

func (s *session) printDecomposition() {
	schema, fds, ok := s.schemaAndFDs()
	if !ok {
		return
	}
	tree, err := normalize.DecomposeTree(schema, fds)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(tree.Format())
	for _, leaf := range tree.Leaves() {
		fmt.Println("schema", leaf)
	}
}

func (s *session) plan() ([]materialize.Table, bool) {
	schema, fds, ok := s.schemaAndFDs()
	if !ok {
		return nil, false
	}
	schemas, err := normalize.Decompose(schema, fds)
	if err != nil {
		fmt.Println("error:", err)
		return nil, false
	}
	return materialize.Plan(s.file.RelationName(), schemas), true
}

func parseAttrs(args string, schema normalize.AttributeSet) (normalize.AttributeSet, error) {
	attrs := normalize.NewAttributeSet()
	for _, name := range strings.Split(args, ",") {
		name = strings.Trim(name, "\t ")
		if name == "" {
			continue
		}
		attr := normalize.Attribute(name)
		if !schema.Contains(attr) {
			return nil, fmt.Errorf("unknown attribute: %s", name)
		}
		attrs[attr] = struct{}{}
	}
	return attrs, nil
}
