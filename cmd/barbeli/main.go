/*
Barbeli starts an interactive pattern-matching session.

It reads patterns and input strings from an interactive prompt, compiles
each pattern, evaluates it against the given input, and prints whether the
input is accepted. Patterns and inputs may be preceded by a leading command
to request the debug parse tree instead of an accept/reject verdict.

Usage:

	barbeli [flags]

The flags are:

	-v, --version
		Give the current version of barbel and then exit.

Once a session has started, enter a pattern followed by " / " and an input
string, e.g. "a(b|c)?d / abd". Prefix the line with "tree " to print the
pattern's parse tree instead of evaluating it. Quit with <ctrl>D.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/dekarrin/barbel"
	"github.com/dekarrin/barbel/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the REPL.
	ExitInitError
)

var (
	returnCode  int   = ExitSuccess
	flagVersion *bool = pflag.BoolP("version", "v", false, "Gives the version info")
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

	initDisplay()

	repl, err := readline.New("barbeli> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		returnCode = ExitInitError
		return
	}
	defer repl.Close()

	pterm.Info.Println("Welcome to barbeli. Enter PATTERN / INPUT, or \"tree PATTERN\". Quit with <ctrl>D")
	runREPL(repl)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "  OK",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
}

func runREPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "tree ") {
			evalTree(strings.TrimSpace(strings.TrimPrefix(line, "tree ")))
			continue
		}

		evalMatch(line)
	}
	pterm.Info.Println("Good bye!")
}

func evalTree(pattern string) {
	tree, err := barbel.FormatParseTree(pattern)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Println(tree)
}

func evalMatch(line string) {
	pattern, input, ok := strings.Cut(line, "/")
	if !ok {
		pterm.Error.Println(`expected "PATTERN / INPUT"`)
		return
	}
	pattern = strings.TrimSpace(pattern)
	input = strings.TrimSpace(input)

	n, err := barbel.CompileCached(pattern)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	if barbel.Evaluate(n, input) {
		pterm.Success.Println("ACCEPT")
	} else {
		pterm.Info.Println("REJECT")
	}
}
