package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.asm")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	return path
}

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunListing(t *testing.T) {
	path := writeSource(t, "@start\nadd reg1 1\njneq reg1 5 $start\n")
	code, out, errOut := runArgs(path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	want := "#start\nreg1_to_reg1\n1\nreg0_to_reg2\nadd\nreg1_to_reg1\n5\nreg0_to_reg2\nsub\n0 # $start\njnz\n"
	if out != want {
		t.Errorf("listing:\n%s\nwant:\n%s", out, want)
	}
}

func TestRunParseError(t *testing.T) {
	path := writeSource(t, "nop\nadd reg1 xyz\n")
	code, out, _ := runArgs(path)
	if code == 0 {
		t.Errorf("expected non-zero exit code")
	}
	if out != "parse error on xyz\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.asm")
	code, out, _ := runArgs(path)
	if code != 0 {
		t.Errorf("exit code %d; want 0", code)
	}
	if !strings.Contains(out, "absent.asm") || strings.Count(out, "\n") != 1 {
		t.Errorf("stdout = %q; want one OS error line", out)
	}
}

func TestRunNoArguments(t *testing.T) {
	code, out, errOut := runArgs()
	if code != 0 || out != usageHint+"\n" || errOut != "" {
		t.Errorf("run() = %d, %q, %q", code, out, errOut)
	}

	// Options alone still leave the source missing.
	code, out, _ = runArgs("-v")
	if code != 0 || !strings.HasPrefix(out, "Usage: macroasm") {
		t.Errorf("run(-v) = %d, %q", code, out)
	}
}

func TestRunUnknownOption(t *testing.T) {
	code, _, errOut := runArgs("--bogus", "x.asm")
	if code != 2 || !strings.Contains(errOut, "bogus") {
		t.Errorf("run(--bogus) = %d, %q", code, errOut)
	}
}

func TestRunOutputFileAndLabels(t *testing.T) {
	path := writeSource(t, "@a\nnop\n@b\ngoto $a\n")
	dst := filepath.Join(t.TempDir(), "out.lst")
	code, out, errOut := runArgs("-l", "--output", dst, path)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, errOut)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "#a\nnop\n#b\n0 # $a\ngoto\n" {
		t.Errorf("output file = %q", data)
	}
	if errOut != "a=0\nb=1\n" {
		t.Errorf("label dump = %q", errOut)
	}
}

func TestRunStrict(t *testing.T) {
	path := writeSource(t, "goto $nowhere\n")

	code, out, _ := runArgs(path)
	if code != 0 || out != "$nowhere\ngoto\n" {
		t.Errorf("lenient run = %d, %q", code, out)
	}

	code, out, _ = runArgs("--strict", path)
	if code == 0 || out != "unresolved label nowhere\n" {
		t.Errorf("strict run = %d, %q", code, out)
	}
}

func TestRunStrictFromEnvironment(t *testing.T) {
	t.Setenv("MACROASM_STRICT", "yes")
	path := writeSource(t, "goto $nowhere\n")
	code, out, _ := runArgs(path)
	if code == 0 || out != "unresolved label nowhere\n" {
		t.Errorf("run = %d, %q", code, out)
	}
}

func TestRunVerbose(t *testing.T) {
	path := writeSource(t, "add 1 2\n")
	code, _, errOut := runArgs("-v", path)
	if code != 0 || !strings.Contains(errOut, "macroasm: expanded") {
		t.Errorf("verbose run = %d, %q", code, errOut)
	}
}

func TestPadArgs(t *testing.T) {
	in := []string{"a", "-v", "prog.asm"}
	got := padArgs(in)
	if got[0] != "./a" || got[1] != "-v" || got[2] != "prog.asm" {
		t.Errorf("padArgs = %q", got)
	}
	if in[0] != "a" {
		t.Errorf("padArgs modified its input")
	}
}
