/*
Barbel compiles a single pattern and evaluates it against a single input,
reporting accept or reject.

Usage:

	barbel [flags] PATTERN INPUT

The flags are:

	-v, --version
		Give the current version of barbel and then exit.

	-t, --tree
		Print the pattern's debug parse tree instead of evaluating it
		against INPUT. INPUT is not required in this mode.

Exit status is 0 if PATTERN matched INPUT, 1 if it did not, and 2 if
PATTERN could not be compiled.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dekarrin/barbel"
	"github.com/dekarrin/barbel/internal/version"
)

const (
	// ExitAccept indicates the input matched the pattern.
	ExitAccept = 0

	// ExitReject indicates the input did not match the pattern.
	ExitReject = 1

	// ExitCompileError indicates the pattern could not be compiled.
	ExitCompileError = 2
)

var (
	returnCode  int   = ExitAccept
	flagVersion *bool = pflag.BoolP("version", "v", false, "Gives the version info")
	flagTree    *bool = pflag.BoolP("tree", "t", false, "Print the pattern's debug parse tree instead of evaluating it")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()

	if *flagTree {
		runTree(args)
		return
	}

	runMatch(args)
}

func runTree(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: expected a PATTERN argument")
		returnCode = ExitCompileError
		return
	}
	tree, err := barbel.FormatParseTree(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}
	fmt.Println(tree)
}

func runMatch(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "ERROR: expected PATTERN and INPUT arguments")
		returnCode = ExitCompileError
		return
	}
	pattern, input := args[0], args[1]

	n, err := barbel.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}

	if barbel.Evaluate(n, input) {
		fmt.Println("ACCEPT")
		returnCode = ExitAccept
		return
	}
	fmt.Println("REJECT")
	returnCode = ExitReject
}
