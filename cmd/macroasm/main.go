package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Urethramancer/macroasm/assembler"
	"github.com/grimdork/climate/arg"
)

// Every long option can also be set as MACROASM_<OPTION>.
const (
	appName   = "macroasm"
	envPrefix = "MACROASM"
	posSource = "SOURCE"

	usageHint = "Usage: macroasm [OPTIONS] SOURCE (see --help)"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newOptions() *arg.Options {
	opt := arg.New(appName)
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Write the listing to this file instead of standard output.", "", false, arg.VarString, nil)
	opt.SetFlag(arg.GroupDefault, "l", "labels", "Print the label table to standard error.")
	opt.SetFlag(arg.GroupDefault, "s", "strict", "Fail on references to undefined labels.")
	opt.SetFlag(arg.GroupDefault, "v", "verbose", "Log assembly progress to standard error.")
	opt.SetPositional(posSource, "Macro assembly source file.", "", false, arg.VarString)
	return opt
}

// run assembles the file named in args and returns the process exit code.
// Missing arguments and unreadable files are not failures.
func run(args []string, stdout, stderr io.Writer) int {
	opt := newOptions()
	// ParseEnvironment ignores malformed values rather than failing.
	_ = opt.ParseEnvironment(envPrefix, "")

	err := opt.Parse(padArgs(args))
	if errors.Is(err, arg.ErrNoArgs) {
		fmt.Fprintln(stdout, usageHint)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return 2
	}

	path := opt.GetPosString(posSource)
	if path == "" {
		fmt.Fprintln(stdout, usageHint)
		return 0
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stdout, err.Error())
		return 0
	}

	asm := assembler.New().SetStrict(opt.GetBool("strict"))
	if opt.GetBool("verbose") {
		asm.SetLogger(log.New(stderr, appName+": ", 0))
	}

	listing, err := asm.Assemble(string(data))
	if err != nil {
		return report(stdout, err)
	}

	if opt.GetBool("labels") {
		fmt.Fprint(stderr, asm.Labels().String())
	}

	out := opt.GetString("output")
	if out == "" {
		fmt.Fprint(stdout, listing)
		return 0
	}

	if err := os.WriteFile(out, []byte(listing), 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing output file: %v\n", err)
		return 1
	}
	return 0
}

// report prints the single diagnostic line for a failed assembly.
func report(w io.Writer, err error) int {
	var ve *assembler.ValidationError
	var ue *assembler.UnresolvedError
	switch {
	case errors.As(err, &ve):
		fmt.Fprintln(w, ve.Error())
	case errors.As(err, &ue):
		fmt.Fprintln(w, ue.Error())
	default:
		fmt.Fprintln(w, err.Error())
	}
	return 1
}

// padArgs copies args, prefixing single-character arguments with "./".
// arg reads the second byte of every argument and can't take one-letter file names.
func padArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if len(a) == 1 {
			a = "./" + a
		}
		out[i] = a
	}
	return out
}
