package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/narop-lang/narop/lang"
	"github.com/narop-lang/narop/ops"
	"github.com/narop-lang/narop/resolve"
	"github.com/narop-lang/narop/tree"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

// main() starts an interactive CLI ("N.REPL"), where users declare classes,
// variables and operator overloads, and enter infix expressions. N.REPL
// runs every expression through the scan/parse/flatten/resolve pipeline and
// prints the overload bindings of the resulting tree.
//
// Commands:
//
//    class NAME                   declare a class-like type
//    var NAME TYPE                declare a variable of a type
//    op SYM T1 T2 … [...] -> R    register an overload (… marks variadic)
//    ops                          list registered overloads
//    <expression>                 check an infix expression
//
// Please refer to modules "lang", "ops" and "resolve".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to NREPL")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("narop> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		session: lang.NewSession(),
		repl:    repl,
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		if err := intp.Execute(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	session *lang.Session
	repl    *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Execute(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Execute runs one line of input, either a declaration command or an
// expression to check.
func (intp *Intp) Execute(line string) error {
	args := strings.Fields(line)
	switch args[0] {
	case "class":
		if len(args) != 2 {
			return fmt.Errorf("usage: class NAME")
		}
		intp.session.DeclareClass(args[1])
		pterm.Info.Println("class " + args[1])
		return nil
	case "var":
		if len(args) != 3 {
			return fmt.Errorf("usage: var NAME TYPE")
		}
		intp.session.DeclareVar(args[1], args[2])
		pterm.Info.Printf("var %s : %s\n", args[1], args[2])
		return nil
	case "op":
		ov, err := parseOverload(args[1:])
		if err != nil {
			return err
		}
		if err := intp.session.Define(ov); err != nil {
			return err
		}
		pterm.Info.Println(ov.String())
		return nil
	case "ops":
		intp.session.Registry.Each(func(ov *ops.Overload) {
			pterm.Info.Println(ov.String())
		})
		return nil
	}
	return intp.check(line)
}

// parseOverload reads an overload definition of the form
// "SYM T1 T2 … [...] -> R". A literal "..." before the arrow marks the
// overload as variadic, "_" leaves a parameter unconstrained.
func parseOverload(args []string) (*ops.Overload, error) {
	if len(args) < 5 || args[len(args)-2] != "->" {
		return nil, fmt.Errorf("usage: op SYM T1 T2 … [...] -> R")
	}
	ov := &ops.Overload{
		Symbol: args[0],
		Result: args[len(args)-1],
	}
	for _, p := range args[1 : len(args)-2] {
		if p == "..." {
			ov.Variadic = true
			continue
		}
		if p == "_" {
			p = ""
		}
		ov.Params = append(ov.Params, p)
	}
	return ov, nil
}

// check runs an expression through the session and prints the linearized
// tree together with the binding of every call node.
func (intp *Intp) check(line string) error {
	ar, root, err := intp.session.Check(line)
	if err != nil {
		return err
	}
	pterm.Info.Println(ar.ListString(root))
	describeBindings(ar, root)
	return nil
}

func describeBindings(ar *tree.Arena, ref tree.NodeRef) {
	if ar.Node(ref).Kind() == tree.LeafNode {
		return
	}
	for _, arg := range ar.Args(ref) {
		describeBindings(ar, arg)
	}
	if b, ok := ar.Node(ref).UData.(*resolve.Binding); ok {
		pterm.Info.Printf("%s  %s\n", ar.ListString(ref), b.String())
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
