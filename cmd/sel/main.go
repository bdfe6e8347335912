package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~mango/opts"
	"github.com/peterh/liner"

	"git.sr.ht/~mango/sel/ast"
	"git.sr.ht/~mango/sel/lexer"
	"git.sr.ht/~mango/sel/log"
	"git.sr.ht/~mango/sel/parser"
)

// With -a each form is printed as a Go-syntax tree instead of being
// re-serialized to surface syntax.
var dumpAst bool

func main() {
	flags, optind, err := opts.GetLong(os.Args, []opts.LongOpt{
		{Short: 'a', Long: "ast", Arg: opts.None},
	})
	if err != nil {
		usage()
	}
	for _, f := range flags {
		switch f.Key {
		case 'a':
			dumpAst = true
		}
	}

	switch args := os.Args[optind:]; len(args) {
	case 0:
		runRepl()
	case 1:
		log.CrashOnError = true
		runFile(args[0])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: sel [-a] [file]")
	os.Exit(1)
}

func runFile(f string) {
	bytes, err := os.ReadFile(f)
	if err != nil {
		log.Err("%s", err)
	}

	prog, err := parse(string(bytes))
	if err != nil {
		log.Err("%s", err)
	}
	printProgram(prog)
}

func runRepl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		line, err := ln.Prompt("> ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			return
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			log.Err("%s", err)
			return
		}

		prog, err := parse(line)
		if err != nil {
			log.Err("%s", err)
			continue
		}
		printProgram(prog)
		ln.AppendHistory(line)
	}
}

func parse(src string) ([]ast.Node, error) {
	toks, err := lexer.Tokens(src)
	if err != nil {
		return nil, err
	}
	return parser.Parse(toks)
}

func printProgram(prog []ast.Node) {
	for _, n := range prog {
		if dumpAst {
			fmt.Printf("%#v\n", n)
		} else {
			fmt.Println(n)
		}
	}
}
